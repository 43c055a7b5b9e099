package linker

import (
	"path"
	"sort"
	"strings"
	"sync"

	"spring-apidoc/internal/javaparser"
	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/model"
)

// ReadFunc loads the decoded text of a source file
type ReadFunc func(path string) (string, error)

// TypePool is the per-run symbol table: qualified class name -> defining file.
// Field lists are parsed on first use and memoised. A TypePool is safe for
// concurrent readers once all files have been added.
type TypePool struct {
	read ReadFunc

	// FileMap: qualified name -> file path
	FileMap map[string]string

	// SimpleMap: simple class name -> qualified names, sorted
	SimpleMap map[string][]string

	mu         sync.Mutex
	fieldCache map[string]fieldEntry
}

type fieldEntry struct {
	fields []model.Field
	ok     bool
}

// NewTypePool creates an empty pool reading files through read
func NewTypePool(read ReadFunc) *TypePool {
	return &TypePool{
		read:       read,
		FileMap:    make(map[string]string),
		SimpleMap:  make(map[string][]string),
		fieldCache: make(map[string]fieldEntry),
	}
}

// AddFile registers a .java file found under sourceRoot.
// When two files map to the same qualified name the first one wins.
func (pool *TypePool) AddFile(filePath, sourceRoot string) (string, bool) {
	qualified, ok := QualifiedNameFromPath(filePath, sourceRoot)
	if !ok {
		return "", false
	}
	if _, exists := pool.FileMap[qualified]; exists {
		logger.Debug("[POOL] Duplicate type %s ignored: %s", qualified, filePath)
		return qualified, false
	}
	pool.FileMap[qualified] = filePath

	simple := qualified[strings.LastIndex(qualified, ".")+1:]
	names := append(pool.SimpleMap[simple], qualified)
	sort.Strings(names)
	pool.SimpleMap[simple] = names
	return qualified, true
}

// Len returns the number of known types
func (pool *TypePool) Len() int {
	return len(pool.FileMap)
}

// Has reports whether a qualified name is defined in the source tree
func (pool *TypePool) Has(qualified string) bool {
	_, ok := pool.FileMap[qualified]
	return ok
}

// ResolveType returns the source text defining a qualified name.
// ok is false when the type is not part of the source tree or cannot be read.
func (pool *TypePool) ResolveType(qualified string) (string, bool) {
	filePath, ok := pool.FileMap[qualified]
	if !ok {
		return "", false
	}
	content, err := pool.read(filePath)
	if err != nil {
		logger.Warn("Failed to read type %s from %s: %v", qualified, filePath, err)
		return "", false
	}
	return content, true
}

// FieldsOf returns a copy of the private fields declared by a qualified type
func (pool *TypePool) FieldsOf(qualified string) ([]model.Field, bool) {
	pool.mu.Lock()
	entry, cached := pool.fieldCache[qualified]
	pool.mu.Unlock()

	if !cached {
		content, ok := pool.ResolveType(qualified)
		entry = fieldEntry{ok: ok}
		if ok {
			entry.fields = javaparser.ParseFields(content)
		}
		pool.mu.Lock()
		pool.fieldCache[qualified] = entry
		pool.mu.Unlock()
	}

	if !entry.ok {
		return nil, false
	}
	fields := make([]model.Field, len(entry.fields))
	copy(fields, entry.fields)
	return fields, true
}

// QualifiedNameFromPath maps ".../src/main/java/com/acme/UserDTO.java" to
// "com.acme.UserDTO"
func QualifiedNameFromPath(filePath, sourceRoot string) (string, bool) {
	p := strings.ReplaceAll(filePath, "\\", "/")
	if !strings.HasSuffix(p, ".java") {
		return "", false
	}
	root := strings.Trim(strings.ReplaceAll(sourceRoot, "\\", "/"), "/") + "/"

	idx := strings.LastIndex(p, "/"+root)
	switch {
	case idx >= 0:
		p = p[idx+len(root)+1:]
	case strings.HasPrefix(p, root):
		p = p[len(root):]
	default:
		return "", false
	}

	p = strings.TrimSuffix(path.Clean(p), ".java")
	if p == "" || p == "." {
		return "", false
	}
	return strings.ReplaceAll(p, "/", "."), true
}
