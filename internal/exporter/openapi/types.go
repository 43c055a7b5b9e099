package openapi

import "strings"

// Java type -> JSON schema type. Anything missing is unmapped.
var typeTable = map[string]string{
	"String":        "string",
	"Integer":       "integer",
	"int":           "integer",
	"Long":          "integer",
	"long":          "integer",
	"Boolean":       "boolean",
	"boolean":       "boolean",
	"Double":        "number",
	"double":        "number",
	"Float":         "number",
	"float":         "number",
	"BigDecimal":    "number",
	"Date":          "string",
	"LocalDate":     "string",
	"LocalDateTime": "string",
}

// Formats are emitted in Swagger2 documents only
var formatTable = map[string]string{
	"Integer":       "int32",
	"int":           "int32",
	"Long":          "int64",
	"long":          "int64",
	"Double":        "double",
	"double":        "double",
	"Float":         "float",
	"float":         "float",
	"LocalDate":     "date",
	"Date":          "date-time",
	"LocalDateTime": "date-time",
}

var collectionTypes = []string{"List", "Set", "Collection"}

// MapType returns the schema type of a Java type; ok is false when the type
// is not in the primitive table
func MapType(javaType string) (schemaType string, ok bool) {
	schemaType, ok = typeTable[strings.TrimSpace(javaType)]
	return schemaType, ok
}

// MapFormat returns the Swagger2 format of a Java type, or ""
func MapFormat(javaType string) string {
	return formatTable[strings.TrimSpace(javaType)]
}

// typeOr maps a Java type, using fallback for unmapped types
func typeOr(javaType, fallback string) string {
	if t, ok := MapType(javaType); ok {
		return t
	}
	return fallback
}

// elementType unwraps List<T>, Set<T> and Collection<T> to T
func elementType(javaType string) (string, bool) {
	javaType = strings.TrimSpace(javaType)
	for _, c := range collectionTypes {
		if strings.HasPrefix(javaType, c+"<") && strings.HasSuffix(javaType, ">") {
			return strings.TrimSpace(javaType[len(c)+1 : len(javaType)-1]), true
		}
	}
	return "", false
}
