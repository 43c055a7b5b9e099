package model

import "strings"

// ParamKind tells where a request parameter is bound
type ParamKind string

const (
	ParamKindPath  ParamKind = "path"
	ParamKindQuery ParamKind = "query"
	ParamKindBody  ParamKind = "body"
)

// HTTP methods recognised by the scanner
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
	MethodPatch  = "PATCH"
)

// Endpoint represents one REST endpoint extracted from a controller method
type Endpoint struct {
	// Assigned once per parse run; not derived from content
	ID string `json:"id"`

	// Full URL path, always starting with "/"
	Path string `json:"path"`

	// HTTP Method (GET, POST, PUT, DELETE, PATCH)
	Method string `json:"method"`

	// Comment found above the mapping annotation
	Description string `json:"description,omitempty"`

	// Parameters in scan order (path, query, body, then unannotated)
	Parameters []Parameter `json:"parameters"`

	// Declared return type token, e.g. "User" or "List<User>"
	ResponseType string `json:"responseType"`

	// Grouping label shared by every endpoint of one controller
	FolderTag string `json:"folderTag"`

	Location SourceLocation `json:"location"`
}

// Parameter represents a parameter in the API request
type Parameter struct {
	Name        string    `json:"name"`
	Kind        ParamKind `json:"kind"`
	Type        string    `json:"type"`
	Required    bool      `json:"required"`
	Description string    `json:"description,omitempty"`

	// DTO fields, only for body parameters
	Fields []Field `json:"fields,omitempty"`
}

// Field is one private field of a resolved DTO, in declaration order
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// SourceLocation points back at the mapping annotation.
// Line and Column are 0-based.
type SourceLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// IsBody reports whether the parameter is bound to the request body
func (p Parameter) IsBody() bool {
	return p.Kind == ParamKindBody
}

// Summary returns a one-line label like "GET /api/users/{id}"
func (e Endpoint) Summary() string {
	return e.Method + " " + e.Path
}

// Matches reports whether the endpoint matches a case-insensitive search text.
// Path, method, description and folder tag are searched.
func (e Endpoint) Matches(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return true
	}
	for _, candidate := range []string{e.Path, e.Method, e.Description, e.FolderTag} {
		if strings.Contains(strings.ToLower(candidate), text) {
			return true
		}
	}
	return false
}
