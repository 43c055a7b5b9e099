package exporter

import (
	"strings"

	"spring-apidoc/internal/exporter/html"
	"spring-apidoc/internal/exporter/openapi"
	"spring-apidoc/internal/exporter/word"
)

// GetExporters returns a list of Exporters based on requested formats.
// Unknown formats are ignored; the caller decides what an empty result means.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		switch fmtStr {
		case "xlsx":
			fmtStr = "excel"
		case "docx":
			fmtStr = "word"
		case "openapi", "swagger":
			fmtStr = "json"
		case "yml":
			fmtStr = "yaml"
		}
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "excel":
			exporters = append(exporters, NewExcelExporter())
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "word":
			exporters = append(exporters, word.NewWordExporter())
		case "json":
			exporters = append(exporters, openapi.NewOpenAPIExporter())
		case "yaml":
			exporters = append(exporters, openapi.NewYAMLExporter())
		}
	}

	return exporters
}
