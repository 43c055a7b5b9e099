package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-openapi/spec"
	"gopkg.in/yaml.v3"

	"spring-apidoc/internal/model"
)

// Mode selects the document schema version
type Mode string

const (
	ModeOpenAPI3 Mode = "openapi3"
	ModeSwagger2 Mode = "swagger2"
)

// Defaults used when Info fields are left empty
const (
	DefaultTitle       = "Spring API Documentation"
	DefaultDescription = "API documentation generated from Spring Controllers"
	DefaultVersion     = "1.0.0"
)

// Info is the document metadata
type Info struct {
	Title       string
	Description string
	Version     string
}

// Document is an emitted API description. Exactly one of OpenAPI3 and
// Swagger2 is set, according to Mode.
type Document struct {
	Mode     Mode
	OpenAPI3 *openapi3.T
	Swagger2 *spec.Swagger
}

// Emit builds a document for endpoints. It performs no I/O and gives the same
// output for the same input.
func Emit(endpoints []model.Endpoint, title string, mode Mode) (*Document, error) {
	return EmitWithInfo(endpoints, Info{Title: title}, mode)
}

// EmitWithInfo is Emit with full document metadata
func EmitWithInfo(endpoints []model.Endpoint, info Info, mode Mode) (*Document, error) {
	if info.Title == "" {
		info.Title = DefaultTitle
	}
	if info.Description == "" {
		info.Description = DefaultDescription
	}
	if info.Version == "" {
		info.Version = DefaultVersion
	}

	switch mode {
	case ModeOpenAPI3:
		return &Document{Mode: mode, OpenAPI3: buildOpenAPI3(endpoints, info)}, nil
	case ModeSwagger2:
		return &Document{Mode: mode, Swagger2: buildSwagger2(endpoints, info)}, nil
	default:
		return nil, fmt.Errorf("unsupported document schema %q", mode)
	}
}

// MarshalJSON encodes the underlying document tree
func (d *Document) MarshalJSON() ([]byte, error) {
	switch {
	case d.OpenAPI3 != nil:
		return marshalOpenAPI3(d.OpenAPI3)
	case d.Swagger2 != nil:
		return json.Marshal(d.Swagger2)
	default:
		return nil, fmt.Errorf("empty %s document", d.Mode)
	}
}

// marshalOpenAPI3 keeps an empty components.schemas object, which
// kin-openapi drops on its own
func marshalOpenAPI3(doc *openapi3.T) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	components, _ := tree["components"].(map[string]interface{})
	if components == nil {
		components = map[string]interface{}{}
		tree["components"] = components
	}
	if _, ok := components["schemas"]; !ok {
		components["schemas"] = map[string]interface{}{}
	}
	return json.Marshal(tree)
}

// MarshalJSON renders doc as indented JSON
func MarshalJSON(doc *Document) ([]byte, error) {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var tree interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to re-read %s document: %w", doc.Mode, err)
	}
	return json.MarshalIndent(tree, "", "  ")
}

// MarshalYAML renders doc as block-style YAML, keeping the JSON key order
func MarshalYAML(doc *Document) ([]byte, error) {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("failed to convert %s document to YAML: %w", doc.Mode, err)
	}
	blockStyle(&node)
	return yaml.Marshal(&node)
}

// blockStyle clears the flow and quoting styles inherited from JSON input
func blockStyle(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		if n.Tag == "!!str" {
			n.Style = 0
		}
	} else {
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}
