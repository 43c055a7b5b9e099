package exporter

import (
	"spring-apidoc/internal/config"
	"spring-apidoc/internal/model"
)

// Exporter is the unified interface for all output formats
type Exporter interface {
	Export(report *model.Report, cfg *config.Config) error
}
