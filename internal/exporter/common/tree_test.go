package common

import (
	"testing"

	"spring-apidoc/internal/model"
)

func TestGroupByFolder(t *testing.T) {
	endpoints := []model.Endpoint{
		{ID: "1", FolderTag: "Users"},
		{ID: "2", FolderTag: "Order"},
		{ID: "3", FolderTag: "Users"},
	}

	groups := GroupByFolder(endpoints)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Users" || len(groups[0].Endpoints) != 2 || groups[0].Endpoints[1].ID != "3" {
		t.Errorf("Unexpected first group: %+v", groups[0])
	}
	if groups[1].Name != "Order" || len(groups[1].Endpoints) != 1 {
		t.Errorf("Unexpected second group: %+v", groups[1])
	}

	if got := GroupByFolder(nil); len(got) != 0 {
		t.Errorf("Expected no groups, got %d", len(got))
	}
}

func TestFormatParams(t *testing.T) {
	params := []model.Parameter{
		{Name: "id", Kind: model.ParamKindPath, Type: "Long", Required: true},
		{Name: "UserDTO", Kind: model.ParamKindBody, Type: "object", Required: false, Fields: []model.Field{
			{Name: "name", Type: "String", Description: "Login name"},
			{Name: "age", Type: "Integer"},
		}},
	}

	expected := "id (path, Long, required)\n" +
		"UserDTO (body, object, optional)\n" +
		"  .name: String // Login name\n" +
		"  .age: Integer"
	if got := FormatParams(params); got != expected {
		t.Errorf("FormatParams() =\n%s\nexpected\n%s", got, expected)
	}
	if got := FormatParams(nil); got != "" {
		t.Errorf("FormatParams(nil) = %q", got)
	}
}

func TestRelativeLocation(t *testing.T) {
	loc := model.SourceLocation{File: "/work/app/src/UserController.java", Line: 19, Column: 4}

	tests := []struct {
		root     string
		expected string
	}{
		{"/work/app", "src/UserController.java:20:5"},
		{"/work/app/", "src/UserController.java:20:5"},
		{"", "/work/app/src/UserController.java:20:5"},
		{"/elsewhere", "/work/app/src/UserController.java:20:5"},
	}
	for _, tt := range tests {
		if got := RelativeLocation(loc, tt.root); got != tt.expected {
			t.Errorf("RelativeLocation(%q) = %q, expected %q", tt.root, got, tt.expected)
		}
	}
}
