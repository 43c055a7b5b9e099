package openapi

import (
	"strings"

	"github.com/go-openapi/spec"

	"spring-apidoc/internal/model"
)

var operationIDReplacer = strings.NewReplacer("/", "_", "-", "_", "{", "_", "}", "_")

// buildSwagger2 maps endpoints onto a Swagger 2.0 tree with one definition
// per distinct body parameter name.
func buildSwagger2(endpoints []model.Endpoint, info Info) *spec.Swagger {
	doc := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:       info.Title,
					Description: info.Description,
					Version:     info.Version,
				},
			},
			BasePath:    "/",
			Schemes:     []string{"http", "https"},
			Paths:       &spec.Paths{Paths: map[string]spec.PathItem{}},
			Definitions: spec.Definitions{},
			SecurityDefinitions: spec.SecurityDefinitions{
				"api_key": spec.APIKeyAuth("Authorization", "header"),
			},
			Tags: []spec.Tag{},
		},
	}

	for _, folder := range model.DistinctFolders(endpoints) {
		if folder == "" {
			continue
		}
		doc.Tags = append(doc.Tags, spec.NewTag(folder, folder, nil))
	}

	for _, ep := range endpoints {
		item := doc.Paths.Paths[ep.Path]
		op := operation2(ep)
		switch strings.ToUpper(ep.Method) {
		case model.MethodGet:
			item.Get = op
		case model.MethodPost:
			item.Post = op
		case model.MethodPut:
			item.Put = op
		case model.MethodDelete:
			item.Delete = op
		case model.MethodPatch:
			item.Patch = op
		}
		doc.Paths.Paths[ep.Path] = item

		for _, p := range ep.Parameters {
			if !p.IsBody() {
				continue
			}
			if _, exists := doc.Definitions[p.Name]; exists {
				continue
			}
			doc.Definitions[p.Name] = definition(p.Fields)
		}
	}
	return doc
}

// OperationID derives a stable operation id from method and path,
// e.g. GET /api/users/{id} -> get_api_users__id_
func OperationID(method, path string) string {
	return strings.ToLower(method) + operationIDReplacer.Replace(path)
}

func operation2(ep model.Endpoint) *spec.Operation {
	op := spec.NewOperation(OperationID(ep.Method, ep.Path)).
		WithSummary(ep.Description).
		WithDescription(ep.Description)
	if ep.FolderTag != "" {
		op.WithTags(ep.FolderTag)
	}
	for _, p := range ep.Parameters {
		op.AddParam(parameter2(p))
	}
	op.RespondsWith(200, spec.NewResponse().
		WithDescription(successDescription).
		WithSchema(responseSchema2(ep.ResponseType)))
	return op
}

func parameter2(p model.Parameter) *spec.Parameter {
	if p.IsBody() {
		return spec.BodyParam("body", spec.RefSchema("#/definitions/"+p.Name))
	}

	var param *spec.Parameter
	if p.Kind == model.ParamKindPath {
		param = spec.PathParam(p.Name)
	} else {
		param = spec.QueryParam(p.Name)
	}
	// Swagger2 does not allow object-typed non-body parameters
	param.Typed(typeOr(p.Type, "string"), MapFormat(p.Type))
	param.Required = p.Required
	if p.Description != "" {
		param.WithDescription(p.Description)
	}
	return param
}

func responseSchema2(responseType string) *spec.Schema {
	responseType = strings.TrimSpace(responseType)
	if responseType == "" || responseType == "void" {
		return &spec.Schema{}
	}
	if elem, ok := elementType(responseType); ok {
		return spec.ArrayProperty(new(spec.Schema).Typed(typeOr(elem, "object"), MapFormat(elem)))
	}
	return new(spec.Schema).Typed(typeOr(responseType, "object"), MapFormat(responseType))
}

func definition(fields []model.Field) spec.Schema {
	def := new(spec.Schema).Typed("object", "")
	def.Properties = spec.SchemaProperties{}
	for _, f := range fields {
		prop := new(spec.Schema).Typed(typeOr(f.Type, "object"), MapFormat(f.Type))
		if f.Description != "" {
			prop.WithDescription(f.Description)
		}
		def.SetProperty(f.Name, *prop)
	}
	return *def
}
