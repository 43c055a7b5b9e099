package openapi

import (
	"fmt"
	"os"

	"spring-apidoc/internal/config"
	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/model"
)

// OpenAPIExporter writes the emitted document next to the other reports
type OpenAPIExporter struct {
	yaml bool
}

// NewOpenAPIExporter writes <file_name>.json
func NewOpenAPIExporter() *OpenAPIExporter {
	return &OpenAPIExporter{}
}

// NewYAMLExporter writes <file_name>.yaml
func NewYAMLExporter() *OpenAPIExporter {
	return &OpenAPIExporter{yaml: true}
}

// EmitReport emits the document described by a report
func EmitReport(report *model.Report) (*Document, error) {
	info := Info{
		Title:       report.Title,
		Description: report.Description,
		Version:     report.Version,
	}
	return EmitWithInfo(report.Endpoints, info, Mode(report.Schema))
}

func (e *OpenAPIExporter) Export(report *model.Report, cfg *config.Config) error {
	doc, err := EmitReport(report)
	if err != nil {
		return err
	}

	ext := "json"
	marshal := MarshalJSON
	if e.yaml {
		ext = "yaml"
		marshal = MarshalYAML
	}

	data, err := marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize %s document: %w", doc.Mode, err)
	}

	outputPath := cfg.GetOutputPath(ext)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	logger.Info("%s document generated: %s", doc.Mode, outputPath)
	return nil
}
