package analyzer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"spring-apidoc/internal/config"
	"spring-apidoc/internal/logger"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ScanDirectory walks the project root and returns every .java file,
// skipping directories matched by analysis.exclude_dirs.
// Paths are returned in lexical order.
func ScanDirectory(fsys afero.Fs, cfg *config.Config) ([]string, error) {
	root := cfg.Project.RootDir
	var files []string

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if info.Name() == ".git" || info.Name() == ".svn" {
				return filepath.SkipDir
			}
			if relPath != "." && cfg.ShouldExclude(relPath+"/") {
				logger.Debug("[SCAN] Skipping excluded directory: %s", relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if IsJavaFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// ListControllerFiles returns the controller sources under the conventional
// source root, in discovery (lexical) order. No matches is not an error.
func ListControllerFiles(fsys afero.Fs, cfg *config.Config) ([]string, error) {
	files, err := ScanDirectory(fsys, cfg)
	if err != nil {
		return nil, err
	}
	return FilterControllers(files, cfg), nil
}

// FilterControllers keeps the files that live under the source root and follow
// the controller naming convention
func FilterControllers(files []string, cfg *config.Config) []string {
	controllers := []string{}
	for _, path := range files {
		if InSourceRoot(path, cfg.Project.SourceRoot) && cfg.IsControllerFile(path) {
			controllers = append(controllers, path)
		}
	}
	return controllers
}

// InSourceRoot reports whether path contains the source root as a directory run
func InSourceRoot(path, sourceRoot string) bool {
	p := "/" + strings.Trim(filepath.ToSlash(path), "/")
	root := "/" + strings.Trim(filepath.ToSlash(sourceRoot), "/") + "/"
	return strings.Contains(p, root)
}

// ReadFile reads a source file and returns UTF-8 text.
// Invalid UTF-8 is decoded with the first encoding hint that yields clean text;
// EUC-KR is the fallback when no hint applies. Comments are preserved.
func ReadFile(fsys afero.Fs, path string, encodings []string) (string, error) {
	rawBytes, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	rawBytes = bytes.TrimPrefix(rawBytes, utf8BOM)

	if utf8.Valid(rawBytes) {
		return string(rawBytes), nil
	}

	var fallback string
	for _, name := range encodings {
		enc := lookupEncoding(name)
		if enc == nil {
			continue
		}
		decoded, _, err := transform.Bytes(enc.NewDecoder(), rawBytes)
		if err != nil {
			continue
		}
		text := string(decoded)
		if !strings.ContainsRune(text, utf8.RuneError) {
			logger.Debug("[READ] %s decoded as %s", path, name)
			return text, nil
		}
		if fallback == "" {
			fallback = text
		}
	}
	if fallback != "" {
		return fallback, nil
	}

	decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), rawBytes)
	if err != nil {
		return string(rawBytes), fmt.Errorf("encoding detection failed for %s: %w", path, err)
	}
	return string(decoded), nil
}

// lookupEncoding maps an encoding hint such as "gb18030" or "ms949" to a
// decoder. UTF-8 hints return nil since valid UTF-8 is handled earlier.
func lookupEncoding(name string) encoding.Encoding {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf-8", "utf8":
		return nil
	case "ms949", "cp949":
		return korean.EUCKR
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		logger.Debug("[READ] Unknown encoding hint %q", name)
		return nil
	}
	return enc
}

// IsJavaFile checks if a file is a Java source file
func IsJavaFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".java")
}
