package javaparser

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"spring-apidoc/internal/model"
)

const userController = `package com.example.web;

import com.example.dto.User;
import org.springframework.web.bind.annotation.*;

@RestController
@RequestMapping("/api/users")
public class UserController {

    @GetMapping("/{id}")
    public User get(@PathVariable String id) {
        return null;
    }
}
`

func mustParse(t *testing.T, src string) *ControllerFile {
	t.Helper()
	cf, err := ParseControllerFile(src, Options{})
	if err != nil {
		t.Fatalf("ParseControllerFile failed: %v", err)
	}
	return cf
}

func TestParseControllerFileBasics(t *testing.T) {
	cf := mustParse(t, userController)

	if cf.Package != "com.example.web" {
		t.Errorf("Package = %q", cf.Package)
	}
	if cf.ClassName != "UserController" {
		t.Errorf("ClassName = %q", cf.ClassName)
	}
	if cf.QualifiedName() != "com.example.web.UserController" {
		t.Errorf("QualifiedName() = %q", cf.QualifiedName())
	}
	if !reflect.DeepEqual(cf.Imports, []string{"com.example.dto.User", "org.springframework.web.bind.annotation.*"}) {
		t.Errorf("Imports = %v", cf.Imports)
	}
	if cf.RootPath != "/api/users" {
		t.Errorf("RootPath = %q", cf.RootPath)
	}
	if cf.FolderTag != "User" {
		t.Errorf("FolderTag = %q", cf.FolderTag)
	}
	if len(cf.Methods) != 1 {
		t.Fatalf("Expected 1 method, got %d", len(cf.Methods))
	}

	m := cf.Methods[0]
	if m.Verb != model.MethodGet || m.Path != "/{id}" || m.Name != "get" || m.ReturnType != "User" {
		t.Errorf("Method = %+v", m)
	}
	if m.Line != 9 || m.Column != 4 {
		t.Errorf("Location = (%d,%d), expected (9,4)", m.Line, m.Column)
	}
	if len(m.Params) != 1 || m.Params[0].Type != "String" || m.Params[0].Name != "id" {
		t.Errorf("Params = %+v", m.Params)
	}
	if m.Params[0].Raw != "@PathVariable String id" {
		t.Errorf("Raw = %q", m.Params[0].Raw)
	}
}

func TestParseVerbs(t *testing.T) {
	src := `@RequestMapping("/r")
class VerbController {
    @GetMapping("/g") public void g() {}
    @PostMapping("/p") public void p() {}
    @PutMapping("/u") public void u() {}
    @DeleteMapping("/d") public void d() {}
    @PatchMapping("/a") public void a() {}
    @RequestMapping("/any") public void any() {}
    @RequestMapping(value = "/post", method = RequestMethod.POST) public void post() {}
    @RequestMapping(path = "/multi", method = {RequestMethod.PUT, RequestMethod.GET}) public void multi() {}
    @org.springframework.web.bind.annotation.DeleteMapping("/q") public void q() {}
}`
	cf := mustParse(t, src)

	expected := []struct{ verb, path string }{
		{"GET", "/g"}, {"POST", "/p"}, {"PUT", "/u"}, {"DELETE", "/d"}, {"PATCH", "/a"},
		{"GET", "/any"}, {"POST", "/post"}, {"PUT", "/multi"}, {"DELETE", "/q"},
	}
	if len(cf.Methods) != len(expected) {
		t.Fatalf("Expected %d methods, got %d", len(expected), len(cf.Methods))
	}
	for i, e := range expected {
		if cf.Methods[i].Verb != e.verb || cf.Methods[i].Path != e.path {
			t.Errorf("method %d = %s %s, expected %s %s", i, cf.Methods[i].Verb, cf.Methods[i].Path, e.verb, e.path)
		}
	}
}

func TestParsePathForms(t *testing.T) {
	src := `@RestController
class PathController {
    @GetMapping public void none() {}
    @GetMapping() public void empty() {}
    @GetMapping(value = "/v") public void value() {}
    @GetMapping(path = "/p", produces = "application/json") public void path() {}
    @GetMapping({"/first", "/second"}) public void array() {}
    @GetMapping(produces = "text/plain") public void producesOnly() {}
}`
	cf := mustParse(t, src)

	expected := []string{"", "", "/v", "/p", "/first", ""}
	if len(cf.Methods) != len(expected) {
		t.Fatalf("Expected %d methods, got %d", len(expected), len(cf.Methods))
	}
	for i, e := range expected {
		if cf.Methods[i].Path != e {
			t.Errorf("method %s path = %q, expected %q", cf.Methods[i].Name, cf.Methods[i].Path, e)
		}
	}
	if cf.RootPath != "" {
		t.Errorf("RootPath = %q, expected empty", cf.RootPath)
	}
}

func TestParseIgnoresMappingsInCommentsAndStrings(t *testing.T) {
	src := `@RequestMapping("/x")
class XController {
    // @GetMapping("/commented")
    /* @PostMapping("/blocked") */
    @GetMapping("/real")
    public String real() {
        String s = "@DeleteMapping(\"/string\") {";
        return s;
    }
}`
	cf := mustParse(t, src)
	if len(cf.Methods) != 1 || cf.Methods[0].Path != "/real" {
		t.Fatalf("Methods = %+v", cf.Methods)
	}
	// the nearest line comment wins over the block comment
	if cf.Methods[0].Comment != `@GetMapping("/commented")` {
		t.Errorf("Comment = %q", cf.Methods[0].Comment)
	}
}

func TestParseComments(t *testing.T) {
	src := `@RestController
@RequestMapping("/c")
class CommentController {
    private final Service service;

    /**
     * List all
     * entries
     */
    @GetMapping("/a")
    public void a() {}

    // Single line
    /** ignored block */
    @GetMapping("/b")
    public void b() {}

    @GetMapping("/c")
    public void c() {}

    /* Plain block */
    @Deprecated
    @GetMapping(value = "/d", params = {"x=(1)"})
    public void d() {}
}`
	cf := mustParse(t, src)

	expected := []string{"List all entries", "Single line", "", "Plain block"}
	if len(cf.Methods) != len(expected) {
		t.Fatalf("Expected %d methods, got %d", len(expected), len(cf.Methods))
	}
	for i, e := range expected {
		if cf.Methods[i].Comment != e {
			t.Errorf("method %s comment = %q, expected %q", cf.Methods[i].Name, cf.Methods[i].Comment, e)
		}
	}
}

func TestParseReturnTypes(t *testing.T) {
	src := `class TypeController {
    @GetMapping("/a") public ResponseEntity<List<User>> a() { return null; }
    @GetMapping("/b") public Map<String, Object> b() { return null; }
    @GetMapping("/c") public User[] c() { return null; }
    @GetMapping("/d") public void d() {}
    @GetMapping("/e") public <T> Result<T> e() { return null; }
    @GetMapping("/f") String f();
    @GetMapping("/g") public static final int g() { return 0; }
}`
	cf := mustParse(t, src)

	expected := []string{"ResponseEntity<List<User>>", "Map<String, Object>", "User[]", "void", "Result<T>", "String", "int"}
	if len(cf.Methods) != len(expected) {
		t.Fatalf("Expected %d methods, got %d", len(expected), len(cf.Methods))
	}
	for i, e := range expected {
		if cf.Methods[i].ReturnType != e {
			t.Errorf("method %s return type = %q, expected %q", cf.Methods[i].Name, cf.Methods[i].ReturnType, e)
		}
	}
}

func TestParseParamDecls(t *testing.T) {
	src := `class ParamController {
    @PostMapping("/p")
    public void p(@PathVariable("id") final Long id,
                  @RequestParam(value = "tags", required = false) List<String> tags,
                  Map<String, List<Long>> index,
                  @RequestBody @Valid UserDTO body,
                  HttpServletRequest request) {}
}`
	cf := mustParse(t, src)
	if len(cf.Methods) != 1 {
		t.Fatalf("Expected 1 method, got %d", len(cf.Methods))
	}

	params := cf.Methods[0].Params
	expected := []struct{ typ, name string }{
		{"Long", "id"},
		{"List<String>", "tags"},
		{"Map<String, List<Long>>", "index"},
		{"UserDTO", "body"},
		{"HttpServletRequest", "request"},
	}
	if len(params) != len(expected) {
		t.Fatalf("Expected %d params, got %d: %+v", len(expected), len(params), params)
	}
	for i, e := range expected {
		if params[i].Type != e.typ || params[i].Name != e.name {
			t.Errorf("param %d = (%q,%q), expected (%q,%q)", i, params[i].Type, params[i].Name, e.typ, e.name)
		}
	}
	if _, ok := params[3].Annotation("RequestBody"); !ok {
		t.Error("body param should carry @RequestBody")
	}
	if _, ok := params[3].Annotation("Valid"); !ok {
		t.Error("body param should carry @Valid")
	}
}

func TestParseFolderTag(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		opts     Options
		expected string
	}{
		{"explicit line tag", "// @apiFolder Account Admin\nclass AccountController {}", Options{}, "Account Admin"},
		{"explicit block tag", "/**\n * Accounts\n * @apiFolder Billing\n */\nclass AccountController {}", Options{}, "Billing"},
		{"class name", "class AccountController {}", Options{}, "Account"},
		{"custom suffix", "class AccountApi {}", Options{ControllerSuffix: "Api"}, "Account"},
		{"no suffix", "class Account {}", Options{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cf, err := ParseControllerFile(tt.src, tt.opts)
			if err != nil {
				t.Fatalf("ParseControllerFile failed: %v", err)
			}
			if cf.FolderTag != tt.expected {
				t.Errorf("FolderTag = %q, expected %q", cf.FolderTag, tt.expected)
			}
		})
	}
}

func TestParseRootMappingIsPositional(t *testing.T) {
	// The first generic mapping in the file is the root, wherever it is
	src := `@RestController
class LateController {
    @GetMapping("/a") public void a() {}
    @RequestMapping("/late") public void late() {}
    @RequestMapping("/other") public void other() {}
}`
	cf := mustParse(t, src)
	if cf.RootPath != "/late" {
		t.Errorf("RootPath = %q, expected /late", cf.RootPath)
	}
	if len(cf.Methods) != 2 || cf.Methods[1].Path != "/other" {
		t.Errorf("Methods = %+v", cf.Methods)
	}
}

func TestParseIsIndependentPerCall(t *testing.T) {
	// No root-mapping state may leak between files
	first := mustParse(t, `@RequestMapping("/one") class OneController { @RequestMapping("/m") void m() {} }`)
	second := mustParse(t, `@RequestMapping("/two") class TwoController { @RequestMapping("/m") void m() {} }`)

	if first.RootPath != "/one" || second.RootPath != "/two" {
		t.Errorf("RootPath = %q, %q", first.RootPath, second.RootPath)
	}
	if len(first.Methods) != 1 || len(second.Methods) != 1 {
		t.Errorf("Methods = %d, %d", len(first.Methods), len(second.Methods))
	}
}

func TestParseUnterminatedSource(t *testing.T) {
	src := `@RequestMapping("/x")
class BrokenController {
    @GetMapping("/a")
    public void a(@PathVariable String id`
	cf, err := ParseControllerFile(src, Options{})
	if err != nil {
		t.Fatalf("Truncated source should still scan: %v", err)
	}
	if len(cf.Methods) != 1 || cf.Methods[0].Name != "a" {
		t.Errorf("Methods = %+v", cf.Methods)
	}
}

func TestParseSampleControllers(t *testing.T) {
	dir := "../../testdata/sample/src/main/java/com/example/controller"
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}

	total := 0
	for _, entry := range entries {
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", entry.Name(), err)
		}
		cf := mustParse(t, string(content))
		total += len(cf.Methods)
		t.Logf("✅ %s: root=%q folder=%q methods=%d", cf.ClassName, cf.RootPath, cf.FolderTag, len(cf.Methods))
	}
	if total != 7 {
		t.Errorf("Expected 7 methods across the sample controllers, got %d", total)
	}
}
