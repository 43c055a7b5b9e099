package linker

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"spring-apidoc/internal/model"
)

// memSource serves file contents from a map and counts reads
type memSource struct {
	files map[string]string
	reads atomic.Int32
}

func (m *memSource) read(path string) (string, error) {
	m.reads.Add(1)
	content, ok := m.files[path]
	if !ok {
		return "", errors.New("no such file")
	}
	return content, nil
}

func TestQualifiedNameFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
		ok       bool
	}{
		{"/proj/src/main/java/com/acme/dto/UserDTO.java", "com.acme.dto.UserDTO", true},
		{"src/main/java/UserDTO.java", "UserDTO", true},
		{`C:\proj\src\main\java\com\acme\Order.java`, "com.acme.Order", true},
		{"/proj/src/main/java/nested/src/main/java/x/Y.java", "x.Y", true},
		{"/proj/src/test/java/com/acme/UserTest.java", "", false},
		{"/proj/src/main/java/com/acme/readme.md", "", false},
	}

	for _, tt := range tests {
		got, ok := QualifiedNameFromPath(tt.path, "src/main/java")
		if got != tt.expected || ok != tt.ok {
			t.Errorf("QualifiedNameFromPath(%s) = (%q,%v), expected (%q,%v)", tt.path, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestTypePoolAddFile(t *testing.T) {
	pool := NewTypePool((&memSource{}).read)

	if _, ok := pool.AddFile("/a/src/main/java/com/acme/User.java", "src/main/java"); !ok {
		t.Fatal("First registration should succeed")
	}
	if _, ok := pool.AddFile("/b/src/main/java/com/acme/User.java", "src/main/java"); ok {
		t.Error("Duplicate qualified name should be ignored")
	}
	pool.AddFile("/a/src/main/java/com/other/User.java", "src/main/java")
	pool.AddFile("/a/src/main/java/com/acme/Order.java", "src/main/java")
	pool.AddFile("/a/docs/Ignored.java", "src/main/java")

	if pool.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", pool.Len())
	}
	if pool.FileMap["com.acme.User"] != "/a/src/main/java/com/acme/User.java" {
		t.Errorf("First file should win, got %s", pool.FileMap["com.acme.User"])
	}
	if !reflect.DeepEqual(pool.SimpleMap["User"], []string{"com.acme.User", "com.other.User"}) {
		t.Errorf("SimpleMap[User] = %v", pool.SimpleMap["User"])
	}
}

func TestTypePoolResolveType(t *testing.T) {
	src := &memSource{files: map[string]string{
		"/p/src/main/java/com/acme/User.java": "class User {}",
	}}
	pool := NewTypePool(src.read)
	pool.AddFile("/p/src/main/java/com/acme/User.java", "src/main/java")
	pool.AddFile("/p/src/main/java/com/acme/Gone.java", "src/main/java")

	if content, ok := pool.ResolveType("com.acme.User"); !ok || content != "class User {}" {
		t.Errorf("ResolveType(User) = (%q,%v)", content, ok)
	}
	if _, ok := pool.ResolveType("com.acme.Missing"); ok {
		t.Error("Unknown type should not resolve")
	}
	if _, ok := pool.ResolveType("com.acme.Gone"); ok {
		t.Error("Unreadable type should not resolve")
	}
}

func TestTypePoolFieldsOfIsMemoised(t *testing.T) {
	src := &memSource{files: map[string]string{
		"/p/src/main/java/com/acme/UserDTO.java": `class UserDTO {
    // Name
    private String name;
    private Integer age;
}`,
	}}
	pool := NewTypePool(src.read)
	pool.AddFile("/p/src/main/java/com/acme/UserDTO.java", "src/main/java")

	expected := []model.Field{
		{Name: "name", Type: "String", Description: "Name"},
		{Name: "age", Type: "Integer"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fields, ok := pool.FieldsOf("com.acme.UserDTO")
			if !ok || !reflect.DeepEqual(fields, expected) {
				t.Errorf("FieldsOf() = (%+v,%v)", fields, ok)
			}
		}()
	}
	wg.Wait()

	// Callers get copies
	fields, _ := pool.FieldsOf("com.acme.UserDTO")
	fields[0].Name = "mutated"
	again, _ := pool.FieldsOf("com.acme.UserDTO")
	if again[0].Name != "name" {
		t.Error("FieldsOf() must return a copy")
	}

	if reads := src.reads.Load(); reads > 16 {
		t.Errorf("Expected memoised reads, got %d", reads)
	}
	before := src.reads.Load()
	pool.FieldsOf("com.acme.UserDTO")
	if src.reads.Load() != before {
		t.Error("Cached type should not be read again")
	}
}
