package javaparser

import (
	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/model"
)

// TypeSource resolves a type name used inside a controller file to the fields
// of the DTO that defines it. ok is false when the type cannot be found, which
// is not an error.
type TypeSource interface {
	Fields(file *ControllerFile, typeName string) (fields []model.Field, ok bool)
}

// ResolveParameters extracts the request parameters of one method.
// The order is fixed: path variables, request params, request bodies, then the
// remaining declarations. A declaration captured by an earlier stage is skipped
// by the later ones. DTOs are resolved one level deep only.
func ResolveParameters(span MethodSpan, file *ControllerFile, types TypeSource) []model.Parameter {
	params := []model.Parameter{}
	captured := make([]bool, len(span.Params))

	bound := func(annotation string, kind model.ParamKind) {
		for i, decl := range span.Params {
			if captured[i] {
				continue
			}
			ann, ok := decl.Annotation(annotation)
			if !ok {
				continue
			}
			captured[i] = true

			name := ann.Literal("value", "name")
			if name == "" {
				name = decl.Name
			}
			params = append(params, model.Parameter{
				Name:     name,
				Kind:     kind,
				Type:     decl.Type,
				Required: !ann.IsFalse("required"),
			})
		}
	}

	// 1. Path variables
	bound("PathVariable", model.ParamKindPath)

	// 2. Query parameters
	bound("RequestParam", model.ParamKindQuery)

	// 3. Request bodies
	for i, decl := range span.Params {
		if captured[i] {
			continue
		}
		ann, ok := decl.Annotation("RequestBody")
		if !ok {
			continue
		}
		captured[i] = true

		fields, resolved := lookupFields(types, file, decl.Type)
		if !resolved {
			logger.Debug("[PARAMS] Unresolved body type %s in %s.%s", decl.Type, file.ClassName, span.Name)
			fields = []model.Field{}
		}
		params = append(params, model.Parameter{
			Name:     decl.Type,
			Kind:     model.ParamKindBody,
			Type:     "object",
			Required: !ann.IsFalse("required"),
			Fields:   fields,
		})
	}

	// 4. Unannotated declarations: flatten resolvable DTOs into query params
	for i, decl := range span.Params {
		if captured[i] {
			continue
		}
		if fields, ok := lookupFields(types, file, decl.Type); ok {
			for _, f := range fields {
				params = append(params, model.Parameter{
					Name:        f.Name,
					Kind:        model.ParamKindQuery,
					Type:        f.Type,
					Required:    true,
					Description: f.Description,
				})
			}
			continue
		}
		params = append(params, model.Parameter{
			Name:     decl.Name,
			Kind:     model.ParamKindQuery,
			Type:     decl.Type,
			Required: true,
		})
	}

	return params
}

func lookupFields(types TypeSource, file *ControllerFile, typeName string) ([]model.Field, bool) {
	if types == nil || typeName == "" {
		return nil, false
	}
	return types.Fields(file, typeName)
}
