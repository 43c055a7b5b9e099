package html

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"spring-apidoc/internal/config"
	"spring-apidoc/internal/exporter/common"
	"spring-apidoc/internal/exporter/openapi"
	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/mock"
	"spring-apidoc/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// APIReportData is the template input
type APIReportData struct {
	Title           string
	Description     string
	Version         string
	Schema          string
	AnalysisDate    string
	TotalEndpoints  int
	TotalParameters int
	Folders         []FolderView
}

type FolderView struct {
	Name      string
	Endpoints []EndpointView
}

type EndpointView struct {
	model.Endpoint
	OperationID string
	Location    string
}

func (e *HTMLExporter) Export(report *model.Report, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath("html")
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	defer f.Close()

	if err := Render(f, report, cfg.Project.RootDir); err != nil {
		return err
	}

	logger.Info("HTML report generated: %s", outputFile)
	return nil
}

// Render writes the HTML page for report to w. Source locations are shown
// relative to root.
func Render(w io.Writer, report *model.Report, root string) error {
	data := APIReportData{
		Title:           report.Title,
		Description:     report.Description,
		Version:         report.Version,
		Schema:          report.Schema,
		AnalysisDate:    report.AnalysisDate.Format("2006-01-02 15:04:05"),
		TotalEndpoints:  len(report.Endpoints),
		TotalParameters: report.ParameterCount(),
	}
	if data.Title == "" {
		data.Title = openapi.DefaultTitle
	}
	if data.Description == "" {
		data.Description = openapi.DefaultDescription
	}
	if data.Version == "" {
		data.Version = openapi.DefaultVersion
	}

	for _, g := range common.GroupByFolder(report.Endpoints) {
		fv := FolderView{Name: g.Name}
		for _, ep := range g.Endpoints {
			fv.Endpoints = append(fv.Endpoints, EndpointView{
				Endpoint:    ep,
				OperationID: openapi.OperationID(ep.Method, ep.Path),
				Location:    common.RelativeLocation(ep.Location, root),
			})
		}
		data.Folders = append(data.Folders, fv)
	}

	tmpl, err := template.New("api-report").Funcs(template.FuncMap{
		"methodColor": getMethodColor,
		"methodBadge": getMethodBadge,
		"mockRule":    mock.RuleFor,
	}).Parse(APIReportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, data)
}

// getMethodColor returns CSS color class for HTTP method
func getMethodColor(method string) string {
	switch strings.ToUpper(method) {
	case "GET":
		return "method-get"
	case "POST":
		return "method-post"
	case "PUT":
		return "method-put"
	case "DELETE":
		return "method-delete"
	case "PATCH":
		return "method-patch"
	default:
		return "method-default"
	}
}

// getMethodBadge returns badge text for HTTP method
func getMethodBadge(method string) string {
	return strings.ToUpper(method)
}
