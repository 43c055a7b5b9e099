package analyzer

import (
	"path/filepath"
	"strings"
)

// JoinPaths combines a class-level root path and a method-level path.
// Every non-empty segment gets a leading "/"; an all-empty result is "/".
// Examples:
//   - ("/api/users", "{id}") -> "/api/users/{id}"
//   - ("api", "")            -> "/api"
//   - ("", "")               -> "/"
func JoinPaths(segments ...string) string {
	var b strings.Builder
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if !strings.HasPrefix(seg, "/") {
			b.WriteByte('/')
		}
		b.WriteString(seg)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// FolderFromFile derives a folder tag from a file name:
// "UserController.java" -> "User"
func FolderFromFile(path, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if trimmed := strings.TrimSuffix(base, suffix); trimmed != "" {
		return trimmed
	}
	return base
}
