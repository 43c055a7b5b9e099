package javaparser

import "strings"

// Annotation represents a Java annotation with its argument tokens
type Annotation struct {
	Name string  // e.g., "RequestMapping", "PathVariable"
	Args []Token // tokens between the parentheses, comments removed
	Raw  string  // Original annotation text

	start int // token index of '@'
	end   int // token index just past the annotation
}

// annotationArg is one element of an annotation argument list:
// either `key = value` or a positional value (Key == "")
type annotationArg struct {
	Key   string
	Value []Token
}

// parseAnnotationAt parses the annotation starting at tokens[i] ('@').
// Qualified names keep only their last segment.
func parseAnnotationAt(src string, tokens []Token, i int) (Annotation, bool) {
	if i >= len(tokens) || !tokens[i].Is("@") {
		return Annotation{}, false
	}
	j := nextCode(tokens, i+1)
	if j >= len(tokens) || tokens[j].Kind != TokenIdent || tokens[j].Text == "interface" {
		return Annotation{}, false
	}

	name := tokens[j].Text
	j++
	for {
		dot := nextCode(tokens, j)
		if dot >= len(tokens) || !tokens[dot].Is(".") {
			break
		}
		seg := nextCode(tokens, dot+1)
		if seg >= len(tokens) || tokens[seg].Kind != TokenIdent {
			break
		}
		name = tokens[seg].Text
		j = seg + 1
	}

	ann := Annotation{Name: name, start: i, end: j}

	open := nextCode(tokens, j)
	if open < len(tokens) && tokens[open].Is("(") {
		closeIdx := matchForward(tokens, open, "(", ")")
		for _, tok := range tokens[open+1 : min(closeIdx, len(tokens))] {
			if !tok.IsComment() {
				ann.Args = append(ann.Args, tok)
			}
		}
		ann.end = min(closeIdx+1, len(tokens))
	}

	ann.Raw = src[tokens[ann.start].Offset:tokens[ann.end-1].End]
	return ann, true
}

// nextCode returns the index of the next non-comment token at or after i
func nextCode(tokens []Token, i int) int {
	for i < len(tokens) && tokens[i].IsComment() {
		i++
	}
	return i
}

// arguments splits the argument list at top-level commas
func (a Annotation) arguments() []annotationArg {
	var args []annotationArg
	var current []Token
	depth := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		arg := annotationArg{Value: current}
		if len(current) >= 2 && current[0].Kind == TokenIdent && current[1].Is("=") {
			arg.Key = current[0].Text
			arg.Value = current[2:]
		}
		args = append(args, arg)
		current = nil
	}

	for _, tok := range a.Args {
		switch {
		case tok.Is("(") || tok.Is("{") || tok.Is("["):
			depth++
		case tok.Is(")") || tok.Is("}") || tok.Is("]"):
			depth--
		case tok.Is(",") && depth == 0:
			flush()
			continue
		}
		current = append(current, tok)
	}
	flush()
	return args
}

// firstLiteral returns the first string literal of a value (arrays included)
func firstLiteral(value []Token) (string, bool) {
	for _, tok := range value {
		if tok.Kind == TokenString {
			return tok.Value(), true
		}
	}
	return "", false
}

// Literal returns the annotation's primary string value: a positional literal
// or one given under any of keys. Returns "" when none is present.
func (a Annotation) Literal(keys ...string) string {
	for i, arg := range a.arguments() {
		if arg.Key == "" && i == 0 {
			if lit, ok := firstLiteral(arg.Value); ok {
				return lit
			}
			continue
		}
		for _, key := range keys {
			if arg.Key == key {
				if lit, ok := firstLiteral(arg.Value); ok {
					return lit
				}
			}
		}
	}
	return ""
}

// Attr returns the value tokens of a keyed argument
func (a Annotation) Attr(key string) ([]Token, bool) {
	for _, arg := range a.arguments() {
		if arg.Key == key {
			return arg.Value, true
		}
	}
	return nil, false
}

// IsFalse reports whether the keyed argument is the literal false,
// e.g. required = false
func (a Annotation) IsFalse(key string) bool {
	value, ok := a.Attr(key)
	if !ok || len(value) == 0 {
		return false
	}
	return strings.EqualFold(value[0].Text, "false")
}

// IsMapping checks whether the annotation declares a route
func (a Annotation) IsMapping() bool {
	_, ok := mappingVerbs[a.Name]
	return ok
}
