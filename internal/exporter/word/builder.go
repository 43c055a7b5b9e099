package word

import (
	"fmt"
	"os"
	"strings"

	"spring-apidoc/internal/config"
	"spring-apidoc/internal/exporter/common"
	"spring-apidoc/internal/exporter/openapi"
	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/mock"
	"spring-apidoc/internal/model"

	"github.com/nguyenthenguyen/docx"
)

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(report *model.Report, cfg *config.Config) error {
	// 1. Write the template to a temp file
	tmpFile, err := os.CreateTemp("", "spring-apidoc-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if err := writeTemplate(tmpFile); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	// 2. Replace summary placeholders
	groups := common.GroupByFolder(report.Endpoints)
	title := report.Title
	if title == "" {
		title = openapi.DefaultTitle
	}
	doc.Replace(phTitle, title, -1)
	doc.Replace(phDate, report.AnalysisDate.Format("2006-01-02 15:04:05"), -1)
	doc.Replace(phSchema, report.Schema, -1)
	doc.Replace(phTotalEndpoints, fmt.Sprintf("%d", len(report.Endpoints)), -1)
	doc.Replace(phTotalFolders, fmt.Sprintf("%d", len(groups)), -1)

	// 3. Endpoint content as plain text; the library handles XML encoding
	doc.Replace(phContent, buildContent(groups, cfg.Project.RootDir), -1)

	outFile := cfg.GetOutputPath("docx")
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	logger.Info("Word report generated: %s", outFile)
	return nil
}

func buildContent(groups []*common.FolderGroup, root string) string {
	var sb strings.Builder
	for i, g := range groups {
		sb.WriteString(fmt.Sprintf("%s (%d)\n", strings.ToUpper(g.Name), len(g.Endpoints)))
		sb.WriteString(strings.Repeat("=", 80) + "\n\n")

		for j, ep := range g.Endpoints {
			buildEndpointText(&sb, ep, root)
			if j < len(g.Endpoints)-1 {
				sb.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
			}
		}
		if i < len(groups)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// buildEndpointText builds plain text documentation for a single endpoint
func buildEndpointText(sb *strings.Builder, ep model.Endpoint, root string) {
	sb.WriteString(fmt.Sprintf("[%s] %s\n", ep.Method, ep.Path))
	sb.WriteString(fmt.Sprintf("Operation: %s\n", openapi.OperationID(ep.Method, ep.Path)))
	sb.WriteString(fmt.Sprintf("Source: %s\n", common.RelativeLocation(ep.Location, root)))
	if ep.Description != "" {
		sb.WriteString(fmt.Sprintf("Summary: %s\n", ep.Description))
	}
	sb.WriteString("\n")

	if len(ep.Parameters) > 0 {
		sb.WriteString("REQUEST PARAMETERS:\n")
		sb.WriteString(fmt.Sprintf("%-25s %-20s %-10s %-10s %s\n", "Name", "Type", "In", "Required", "Description"))
		sb.WriteString(strings.Repeat("-", 100) + "\n")

		for _, p := range ep.Parameters {
			required := "No"
			if p.Required {
				required = "Yes"
			}
			sb.WriteString(fmt.Sprintf("%-25s %-20s %-10s %-10s %s\n",
				truncate(p.Name, 25),
				truncate(p.Type, 20),
				truncate(string(p.Kind), 10),
				required,
				p.Description))

			for _, f := range p.Fields {
				desc := strings.TrimSpace(f.Description + " [mock " + mock.RuleFor(f.Type) + "]")
				sb.WriteString(fmt.Sprintf("%-25s %-20s %-10s %-10s %s\n",
					truncate("  └ "+f.Name, 25),
					truncate(f.Type, 20),
					"-",
					"-",
					desc))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("RESPONSE:\n")
	sb.WriteString(fmt.Sprintf("%-15s %-25s %s\n", "Status Code", "Type", "Description"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-15d %-25s %s\n", 200, truncate(ep.ResponseType, 25), "successful operation"))
}

// truncate truncates a string to a maximum number of runes
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
