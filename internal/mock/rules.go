package mock

import (
	"strings"

	"spring-apidoc/internal/model"
)

// Rule is a Mock.js placeholder for one DTO field
type Rule struct {
	FieldName string
	FieldType string
	Rule      string
}

// RuleFor returns the placeholder for a Java field type. Matching ignores case.
func RuleFor(fieldType string) string {
	switch strings.ToLower(strings.TrimSpace(fieldType)) {
	case "string":
		return "@string"
	case "integer", "int":
		return "@integer(0,100)"
	case "boolean":
		return "@boolean"
	default:
		return "@string"
	}
}

// Rules builds one rule per field, in field order
func Rules(fields []model.Field) []Rule {
	rules := make([]Rule, 0, len(fields))
	for _, f := range fields {
		rules = append(rules, Rule{FieldName: f.Name, FieldType: f.Type, Rule: RuleFor(f.Type)})
	}
	return rules
}

// ForEndpoint collects the rules of every body parameter of an endpoint
func ForEndpoint(ep model.Endpoint) []Rule {
	var rules []Rule
	for _, p := range ep.Parameters {
		if p.IsBody() {
			rules = append(rules, Rules(p.Fields)...)
		}
	}
	return rules
}

// Format renders rules as "name: rule" lines for the reports
func Format(rules []Rule) string {
	lines := make([]string, 0, len(rules))
	for _, r := range rules {
		lines = append(lines, r.FieldName+": "+r.Rule)
	}
	return strings.Join(lines, "\n")
}
