package exporter

import (
	"fmt"
	"sort"

	"spring-apidoc/internal/config"
	"spring-apidoc/internal/exporter/common"
	"spring-apidoc/internal/exporter/openapi"
	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/mock"
	"spring-apidoc/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	overviewSheet  = "Overview"
	endpointsSheet = "Endpoints"
)

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates the Excel report
func (e *ExcelExporter) Export(report *model.Report, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath("xlsx")
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	// 1. Create Overview Sheet
	if err := e.writeOverview(f, styler, report); err != nil {
		return err
	}

	// 2. Create Endpoint Sheet
	if err := e.writeEndpoints(f, styler, report, cfg.Project.RootDir); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFile, err)
	}

	logger.Info("Excel report generated: %s", outputFile)
	return nil
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, report *model.Report) error {
	sheet := overviewSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	// Section A: Document summary
	row := 1
	e.writeRow(f, sheet, row, []string{"Metric", "Value"}, s.HeaderStyle)
	row++

	metrics := []struct {
		Key string
		Val interface{}
	}{
		{"Title", report.Title},
		{"Schema", report.Schema},
		{"Analysis Date", report.AnalysisDate.Format("2006-01-02 15:04:05")},
		{"Total Endpoints", len(report.Endpoints)},
		{"Total Parameters", report.ParameterCount()},
		{"Skipped Files", len(report.Failed)},
	}

	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		row++
	}

	row += 2 // Spacer

	// Section B: Endpoints per method
	e.writeRow(f, sheet, row, []string{"Method", "Endpoints"}, s.HeaderStyle)
	row++

	counts := report.MethodCounts()
	methods := make([]string, 0, len(counts))
	for m := range counts {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	for _, m := range methods {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), counts[m])
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), s.MethodStyle(m))
		row++
	}

	row += 2

	// Section C: Folder complexity
	e.writeRow(f, sheet, row, []string{"No", "Folder", "Endpoints", "Note"}, s.HeaderStyle)
	row++

	groups := common.GroupByFolder(report.Endpoints)
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Endpoints) > len(groups[j].Endpoints)
	})
	for i, g := range groups {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), g.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), len(g.Endpoints))
		if len(g.Endpoints) > 20 {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "Complex")
		}
		row++
	}

	f.SetColWidth(sheet, "A", "B", 30)
	return nil
}

// --- Endpoint Sheet Logic ---

var endpointHeaders = []string{"Folder", "Method", "Path", "Operation ID", "Parameters", "Response", "Description", "Mock", "Location"}

func (e *ExcelExporter) writeEndpoints(f *excelize.File, s *Styler, report *model.Report, root string) error {
	sheet := endpointsSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	e.writeRow(f, sheet, 1, endpointHeaders, s.HeaderStyle)
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	lastCol, _ := excelize.ColumnNumberToName(len(endpointHeaders))
	row := 2
	for _, g := range common.GroupByFolder(report.Endpoints) {
		// Folder header row
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("[%s] (%d)", g.Name, len(g.Endpoints)))
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), s.FolderStyle)
		row++

		for _, ep := range g.Endpoints {
			values := []interface{}{
				g.Name,
				ep.Method,
				ep.Path,
				openapi.OperationID(ep.Method, ep.Path),
				common.FormatParams(ep.Parameters),
				ep.ResponseType,
				ep.Description,
				mock.Format(mock.ForEndpoint(ep)),
				common.RelativeLocation(ep.Location, root),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), s.DefaultStyle)
			f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), s.MethodStyle(ep.Method))
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 20) // Folder
	f.SetColWidth(sheet, "B", "B", 10) // Method
	f.SetColWidth(sheet, "C", "D", 40) // Path, Operation ID
	f.SetColWidth(sheet, "E", "E", 45) // Parameters
	f.SetColWidth(sheet, "F", "G", 30) // Response, Description
	f.SetColWidth(sheet, "H", "I", 35) // Mock, Location

	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
