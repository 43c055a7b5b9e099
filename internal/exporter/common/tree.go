package common

import (
	"fmt"
	"strings"

	"spring-apidoc/internal/model"
)

// FolderGroup is one folder of the report with its endpoints in scan order
type FolderGroup struct {
	Name      string
	Endpoints []model.Endpoint
}

// GroupByFolder splits endpoints by folder tag, keeping first-seen folder order
func GroupByFolder(endpoints []model.Endpoint) []*FolderGroup {
	var groups []*FolderGroup
	index := make(map[string]*FolderGroup)
	for _, ep := range endpoints {
		g, ok := index[ep.FolderTag]
		if !ok {
			g = &FolderGroup{Name: ep.FolderTag}
			index[ep.FolderTag] = g
			groups = append(groups, g)
		}
		g.Endpoints = append(g.Endpoints, ep)
	}
	return groups
}

// RequiredLabel renders the required flag the way the reports show it
func RequiredLabel(required bool) string {
	if required {
		return "required"
	}
	return "optional"
}

// FormatParam renders "name (kind, Type, required)"
func FormatParam(p model.Parameter) string {
	return fmt.Sprintf("%s (%s, %s, %s)", p.Name, p.Kind, p.Type, RequiredLabel(p.Required))
}

// FormatParams renders one parameter per line; body fields are indented below
func FormatParams(params []model.Parameter) string {
	var lines []string
	for _, p := range params {
		lines = append(lines, FormatParam(p))
		for _, f := range p.Fields {
			line := fmt.Sprintf("  .%s: %s", f.Name, f.Type)
			if f.Description != "" {
				line += " // " + f.Description
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// RelativeLocation renders file:line:column with 1-based numbers, relative
// to root when possible
func RelativeLocation(loc model.SourceLocation, root string) string {
	file := loc.File
	if root != "" {
		if rel, ok := strings.CutPrefix(file, strings.TrimRight(root, `/\`)); ok {
			file = strings.TrimLeft(rel, `/\`)
		}
	}
	return fmt.Sprintf("%s:%d:%d", file, loc.Line+1, loc.Column+1)
}
