package html

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spring-apidoc/internal/config"
	"spring-apidoc/internal/model"
)

func testReport() *model.Report {
	return model.NewReport("User API", "", "2.1.0", config.SchemaOpenAPI3, []model.Endpoint{
		{
			ID: "1", Method: "GET", Path: "/api/users/{id}", Description: "Get user",
			ResponseType: "User", FolderTag: "Users",
			Parameters: []model.Parameter{
				{Name: "id", Kind: model.ParamKindPath, Type: "Long", Required: true},
			},
			Location: model.SourceLocation{File: "/work/src/UserController.java", Line: 19, Column: 4},
		},
		{
			ID: "2", Method: "POST", Path: "/api/users", ResponseType: "void", FolderTag: "Users",
			Parameters: []model.Parameter{
				{Name: "UserDTO", Kind: model.ParamKindBody, Type: "object", Required: false, Fields: []model.Field{
					{Name: "age", Type: "Integer", Description: "Age <years>"},
				}},
			},
		},
		{ID: "3", Method: "DELETE", Path: "/orders/{id}", ResponseType: "void", FolderTag: "Order"},
	}, nil)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testReport(), "/work"); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	checks := []string{
		"<title>User API - ",
		`<h2 class="folder-title">Users <span class="folder-count">(2)</span></h2>`,
		`<h2 class="folder-title">Order <span class="folder-count">(1)</span></h2>`,
		`<span class="method-badge method-get">GET</span>`,
		`<span class="method-badge method-delete">DELETE</span>`,
		`id="get_api_users__id_"`,
		"src/UserController.java:20:5",
		`<span class="required-badge">REQUIRED</span>`,
		`<span class="optional-badge">Optional</span>`,
		`<td class="mock-rule">@integer(0,100)</td>`,
		"Age &lt;years&gt;",
		"spring-apidoc</strong> 2.1.0",
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Errorf("Output missing %q", c)
		}
	}

	if strings.Index(out, "folder-title\">Users") > strings.Index(out, "folder-title\">Order") {
		t.Error("Folders should keep first-seen order")
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	report := model.NewReport("", "", "", config.SchemaSwagger2, nil, nil)
	if err := Render(&buf, report, ""); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No API endpoints found") {
		t.Error("Expected the empty-state message")
	}
}

func TestHTMLExport(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Dir: t.TempDir(), FileName: "api"}}
	if err := NewHTMLExporter().Export(testReport(), cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "api.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<!DOCTYPE html>")) {
		t.Error("Output is not an HTML document")
	}
}
