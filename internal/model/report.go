package model

import "time"

// Report is what the file exporters render: the endpoints of one run plus
// document metadata
type Report struct {
	Title        string
	Description  string
	Version      string
	Schema       string
	AnalysisDate time.Time
	Endpoints    []Endpoint
	Failed       []string
}

// NewReport builds a report over the endpoints of a snapshot
func NewReport(title, description, version, schema string, endpoints []Endpoint, failed []string) *Report {
	return &Report{
		Title:        title,
		Description:  description,
		Version:      version,
		Schema:       schema,
		AnalysisDate: time.Now(),
		Endpoints:    endpoints,
		Failed:       failed,
	}
}

// ParameterCount returns the total number of parameters over all endpoints
func (r *Report) ParameterCount() int {
	n := 0
	for _, ep := range r.Endpoints {
		n += len(ep.Parameters)
	}
	return n
}

// MethodCounts counts endpoints per HTTP method
func (r *Report) MethodCounts() map[string]int {
	counts := make(map[string]int)
	for _, ep := range r.Endpoints {
		counts[ep.Method]++
	}
	return counts
}
