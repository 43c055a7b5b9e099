package exporter

import (
	"github.com/xuri/excelize/v2"

	"spring-apidoc/internal/model"
)

// Styler handles Excel styling
type Styler struct {
	File *excelize.File

	// Pre-defined styles
	HeaderStyle  int
	FolderStyle  int
	GetStyle     int
	PostStyle    int
	PutStyle     int
	DeleteStyle  int
	PatchStyle   int
	DefaultStyle int
}

// NewStyler creates a new Styler and explicitly registers styles
func NewStyler(f *excelize.File) (*Styler, error) {
	s := &Styler{File: f}
	var err error

	// Header Style: Bold, Gray Background, Center Aligned
	s.HeaderStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#000000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Folder Style: Blue Text (group header)
	s.FolderStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#0000FF"},
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Method styles share the badge colors of the HTML report
	for _, m := range []struct {
		target *int
		color  string
	}{
		{&s.GetStyle, "#61AFFE"},
		{&s.PostStyle, "#49CC90"},
		{&s.PutStyle, "#FCA130"},
		{&s.DeleteStyle, "#F93E3E"},
		{&s.PatchStyle, "#50E3C2"},
	} {
		*m.target, err = f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: m.color},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    createBorder(),
		})
		if err != nil {
			return nil, err
		}
	}

	// Default Style: multi-line cells for parameters and mock rules
	s.DefaultStyle, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// MethodStyle returns the style for an HTTP method cell
func (s *Styler) MethodStyle(method string) int {
	switch method {
	case model.MethodGet:
		return s.GetStyle
	case model.MethodPost:
		return s.PostStyle
	case model.MethodPut:
		return s.PutStyle
	case model.MethodDelete:
		return s.DeleteStyle
	case model.MethodPatch:
		return s.PatchStyle
	default:
		return s.DefaultStyle
	}
}

func createBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "D4D4D4", Style: 1},
		{Type: "top", Color: "D4D4D4", Style: 1},
		{Type: "bottom", Color: "D4D4D4", Style: 1},
		{Type: "right", Color: "D4D4D4", Style: 1},
	}
}
