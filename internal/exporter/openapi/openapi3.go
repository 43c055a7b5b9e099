package openapi

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"spring-apidoc/internal/model"
)

const successDescription = "successful operation"

// buildOpenAPI3 maps endpoints onto an OpenAPI 3.0.1 tree. Body parameters
// stay in the parameter list with in=requestBody, which is what the Apifox
// importer accepts from the legacy generator.
func buildOpenAPI3(endpoints []model.Endpoint, info Info) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.1",
		Info: &openapi3.Info{
			Title:       info.Title,
			Description: info.Description,
			Version:     info.Version,
		},
		Servers:    openapi3.Servers{{URL: "/"}},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: openapi3.Schemas{}},
	}

	for _, ep := range endpoints {
		item := doc.Paths.Value(ep.Path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(ep.Path, item)
		}
		item.SetOperation(strings.ToUpper(ep.Method), operation3(ep))
	}
	return doc
}

func operation3(ep model.Endpoint) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Summary = ep.Description
	op.Description = ep.Description
	if ep.FolderTag != "" {
		op.Tags = []string{ep.FolderTag}
	}

	op.Parameters = openapi3.Parameters{}
	for _, p := range ep.Parameters {
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: parameter3(p)})
	}

	response := openapi3.NewResponse().
		WithDescription(successDescription).
		WithJSONSchema(typedSchema3(typeOr(ep.ResponseType, "object")))
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{Value: response}),
	)
	return op
}

func parameter3(p model.Parameter) *openapi3.Parameter {
	return &openapi3.Parameter{
		Name:        p.Name,
		In:          parameterIn3(p.Kind),
		Description: p.Description,
		Required:    p.Required,
		Schema:      openapi3.NewSchemaRef("", typedSchema3(typeOr(p.Type, "object"))),
	}
}

func parameterIn3(kind model.ParamKind) string {
	switch kind {
	case model.ParamKindBody:
		return "requestBody"
	case model.ParamKindPath:
		return openapi3.ParameterInPath
	default:
		return openapi3.ParameterInQuery
	}
}

func typedSchema3(schemaType string) *openapi3.Schema {
	return &openapi3.Schema{Type: &openapi3.Types{schemaType}}
}
