package linker

import (
	"strings"

	"spring-apidoc/internal/javaparser"
	"spring-apidoc/internal/model"
)

// Types that never resolve to a DTO in the source tree
var builtinTypes = map[string]bool{
	"String": true, "Object": true, "Integer": true, "Long": true, "Short": true,
	"Byte": true, "Boolean": true, "Double": true, "Float": true, "Character": true,
	"BigDecimal": true, "BigInteger": true, "Date": true, "LocalDate": true,
	"LocalDateTime": true, "LocalTime": true, "Instant": true,
	"int": true, "long": true, "short": true, "byte": true, "boolean": true,
	"double": true, "float": true, "char": true, "void": true,
	"List": true, "Set": true, "Map": true, "Collection": true, "Optional": true,
	"MultipartFile": true, "HttpServletRequest": true, "HttpServletResponse": true,
}

// Linker connects type names used in controllers to their defining files
type Linker struct {
	pool *TypePool
}

// NewLinker creates a new linker over a populated pool
func NewLinker(pool *TypePool) *Linker {
	return &Linker{pool: pool}
}

// Qualify maps a type token from a controller to a qualified name in the pool.
// Lookup order: explicit import, same package, wildcard imports, then the
// first class in the pool with the same simple name.
func (l *Linker) Qualify(file *javaparser.ControllerFile, typeName string) (string, bool) {
	base := baseTypeName(typeName)
	if base == "" {
		return "", false
	}

	if strings.Contains(base, ".") {
		if l.pool.Has(base) {
			return base, true
		}
		base = base[strings.LastIndex(base, ".")+1:]
	}
	if builtinTypes[base] {
		return "", false
	}

	if file != nil {
		for _, imp := range file.Imports {
			if strings.HasSuffix(imp, "."+base) && l.pool.Has(imp) {
				return imp, true
			}
		}

		candidate := base
		if file.Package != "" {
			candidate = file.Package + "." + base
		}
		if l.pool.Has(candidate) {
			return candidate, true
		}

		for _, imp := range file.Imports {
			if prefix, ok := strings.CutSuffix(imp, ".*"); ok && l.pool.Has(prefix+"."+base) {
				return prefix + "." + base, true
			}
		}
	}

	if names := l.pool.SimpleMap[base]; len(names) > 0 {
		return names[0], true
	}
	return "", false
}

// Fields implements javaparser.TypeSource
func (l *Linker) Fields(file *javaparser.ControllerFile, typeName string) ([]model.Field, bool) {
	qualified, ok := l.Qualify(file, typeName)
	if !ok {
		return nil, false
	}
	return l.pool.FieldsOf(qualified)
}

// baseTypeName strips generic arguments and array/varargs suffixes:
// "List<UserDTO>" -> "List", "UserDTO[]" -> "UserDTO"
func baseTypeName(typeName string) string {
	name := strings.TrimSpace(typeName)
	if idx := strings.Index(name, "<"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSuffix(name, "...")
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
	}
	return strings.TrimSpace(name)
}
