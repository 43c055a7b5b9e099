package javaparser

import "spring-apidoc/internal/model"

var fieldModifiers = map[string]bool{
	"final":     true,
	"transient": true,
	"volatile":  true,
}

// ParseFields extracts every `private Type name;` declaration of a DTO in
// declaration order, each paired with the comment written above it.
// Static fields and fields with initializers do not have the DTO shape and are skipped.
func ParseFields(content string) []model.Field {
	tokens := Lex(content)
	fields := []model.Field{}

	for i := 0; i < len(tokens); i++ {
		if tokens[i].Kind != TokenIdent || tokens[i].Text != "private" {
			continue
		}
		field, next, ok := fieldAt(content, tokens, i)
		if ok {
			field.Description = precedingComment(tokens, i, ";", "{", "}")
			fields = append(fields, field)
		}
		i = next
	}
	return fields
}

// fieldAt parses a declaration starting at the `private` token. It returns the
// index to resume scanning from.
func fieldAt(src string, tokens []Token, i int) (model.Field, int, bool) {
	var decl []Token
	angle := 0

	for j := i + 1; j < len(tokens); j++ {
		tok := tokens[j]
		switch {
		case tok.IsComment():
			continue
		case tok.Is("@"):
			if ann, ok := parseAnnotationAt(src, tokens, j); ok {
				j = ann.end - 1
				continue
			}
		case tok.Kind == TokenIdent && tok.Text == "static":
			return model.Field{}, j, false
		case tok.Kind == TokenIdent && fieldModifiers[tok.Text] && len(decl) == 0:
			continue
		case tok.Is("<"):
			angle++
		case tok.Is(">"):
			angle--
		case tok.Is(";") && angle == 0:
			if len(decl) < 2 || decl[len(decl)-1].Kind != TokenIdent {
				return model.Field{}, j, false
			}
			return model.Field{
				Name: decl[len(decl)-1].Text,
				Type: typeText(decl[:len(decl)-1]),
			}, j, true
		case tok.Is("=") || tok.Is("(") || tok.Is("{") || tok.Is("}"):
			return model.Field{}, j, false
		}
		decl = append(decl, tok)
	}
	return model.Field{}, len(tokens), false
}
