package javaparser

import (
	"fmt"
	"strings"

	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/model"
)

// DefaultControllerSuffix is stripped from class names to build folder tags
const DefaultControllerSuffix = "Controller"

// Route annotations and the verb each one implies.
// RequestMapping is the generic form; its verb comes from `method = ...`.
var mappingVerbs = map[string]string{
	"GetMapping":     model.MethodGet,
	"PostMapping":    model.MethodPost,
	"PutMapping":     model.MethodPut,
	"DeleteMapping":  model.MethodDelete,
	"PatchMapping":   model.MethodPatch,
	"RequestMapping": "",
}

var methodModifiers = map[string]bool{
	"public":       true,
	"protected":    true,
	"private":      true,
	"static":       true,
	"final":        true,
	"abstract":     true,
	"synchronized": true,
	"native":       true,
	"default":      true,
	"strictfp":     true,
}

// ParamDecl is one declaration from a method's parameter list
type ParamDecl struct {
	Annotations []Annotation
	Type        string // e.g., "String", "List<Long>"
	Name        string // identifier
	Raw         string // original declaration text
}

// Annotation returns the declaration's annotation with the given name
func (p ParamDecl) Annotation(name string) (Annotation, bool) {
	for _, ann := range p.Annotations {
		if ann.Name == name {
			return ann, true
		}
	}
	return Annotation{}, false
}

// MethodSpan is the text from a route annotation through the method's opening brace
type MethodSpan struct {
	Mapping    Annotation
	Verb       string
	Path       string // method-level path, "" when the annotation has no literal
	Comment    string
	ReturnType string
	Name       string
	Params     []ParamDecl
	Text       string
	Offset     int
	Line       int // 0-based
	Column     int // 0-based
}

// ControllerFile is the scan result of one controller source file
type ControllerFile struct {
	Package   string   // e.g., "com.company.web"
	ClassName string   // e.g., "UserController"
	Imports   []string // Import statements
	FolderTag string
	RootPath  string
	Methods   []MethodSpan
}

// Options tune the scanner
type Options struct {
	ControllerSuffix string
}

// scanContext carries the state of one file scan. It is created per call and
// never shared, so files can be scanned in parallel.
type scanContext struct {
	src      string
	tokens   []Token
	lines    *lineIndex
	rootSeen bool
	opts     Options
}

// ParseControllerFile scans one controller source file
func ParseControllerFile(content string, opts Options) (*ControllerFile, error) {
	if opts.ControllerSuffix == "" {
		opts.ControllerSuffix = DefaultControllerSuffix
	}

	ctx := &scanContext{
		src:    content,
		tokens: Lex(content),
		lines:  newLineIndex(content),
		opts:   opts,
	}

	cf := &ControllerFile{
		Package: ctx.packageName(),
		Imports: ctx.imports(),
		Methods: []MethodSpan{},
	}
	cf.ClassName = ctx.className()
	cf.FolderTag = folderTagFrom(ctx.tokens)
	if cf.FolderTag == "" && strings.HasSuffix(cf.ClassName, opts.ControllerSuffix) {
		cf.FolderTag = strings.TrimSuffix(cf.ClassName, opts.ControllerSuffix)
	}

	for i := 0; i < len(ctx.tokens); i++ {
		if !ctx.tokens[i].Is("@") {
			continue
		}
		ann, ok := parseAnnotationAt(ctx.src, ctx.tokens, i)
		if !ok {
			continue
		}
		i = ann.end - 1

		if !ann.IsMapping() {
			continue
		}

		// The first generic mapping in the file is the class-level root
		if ann.Name == "RequestMapping" && !ctx.rootSeen {
			ctx.rootSeen = true
			cf.RootPath = ann.Literal("value", "path")
			continue
		}

		span, err := ctx.methodSpan(ann)
		if err != nil {
			return nil, err
		}
		cf.Methods = append(cf.Methods, span)
	}

	logger.Debug("[PARSER] %s: root=%q folder=%q methods=%d", cf.ClassName, cf.RootPath, cf.FolderTag, len(cf.Methods))
	return cf, nil
}

// QualifiedName returns package + "." + class name
func (cf *ControllerFile) QualifiedName() string {
	if cf.Package == "" {
		return cf.ClassName
	}
	return cf.Package + "." + cf.ClassName
}

// packageName extracts the package declaration
func (ctx *scanContext) packageName() string {
	for i, tok := range ctx.tokens {
		if tok.Kind == TokenIdent && tok.Text == "package" {
			name, _ := ctx.qualifiedUntilSemicolon(i + 1)
			return name
		}
		if !tok.IsComment() && !tok.Is("@") && tok.Kind != TokenIdent {
			break
		}
	}
	return ""
}

// imports extracts all import statements
func (ctx *scanContext) imports() []string {
	imports := []string{}
	for i, tok := range ctx.tokens {
		if tok.Kind != TokenIdent {
			continue
		}
		if tok.Text == "class" || tok.Text == "interface" {
			break
		}
		if tok.Text != "import" {
			continue
		}
		start := nextCode(ctx.tokens, i+1)
		if start < len(ctx.tokens) && ctx.tokens[start].Is("static") {
			start++
		}
		if name, ok := ctx.qualifiedUntilSemicolon(start); ok {
			imports = append(imports, name)
		}
	}
	return imports
}

// qualifiedUntilSemicolon joins tokens up to the next ';'
func (ctx *scanContext) qualifiedUntilSemicolon(i int) (string, bool) {
	var sb strings.Builder
	for ; i < len(ctx.tokens); i++ {
		tok := ctx.tokens[i]
		if tok.IsComment() {
			continue
		}
		if tok.Is(";") {
			return sb.String(), sb.Len() > 0
		}
		sb.WriteString(tok.Text)
	}
	return "", false
}

// className extracts the name of the first class declaration
func (ctx *scanContext) className() string {
	for i, tok := range ctx.tokens {
		if tok.Kind != TokenIdent || (tok.Text != "class" && tok.Text != "interface") {
			continue
		}
		// Foo.class literals are not declarations
		if i > 0 && ctx.tokens[i-1].Is(".") {
			continue
		}
		j := nextCode(ctx.tokens, i+1)
		if j < len(ctx.tokens) && ctx.tokens[j].Kind == TokenIdent {
			return ctx.tokens[j].Text
		}
	}
	return ""
}

// methodSpan follows a route annotation to the method it decorates
func (ctx *scanContext) methodSpan(ann Annotation) (span MethodSpan, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed declaration after %s at offset %d: %v", ann.Raw, ctx.tokens[ann.start].Offset, r)
		}
	}()

	tokens := ctx.tokens
	start := tokens[ann.start]
	line, column := ctx.lines.Position(start.Offset)

	span = MethodSpan{
		Mapping:    ann,
		Verb:       mappingVerb(ann),
		Path:       ann.Literal("value", "path"),
		Comment:    precedingComment(tokens, ann.start, "}", "{", ";"),
		ReturnType: "void",
		Offset:     start.Offset,
		Line:       line,
		Column:     column,
	}

	// Collect the declaration header up to the parameter list
	var header []Token
	k := ann.end
	end := len(tokens)
	for k < len(tokens) {
		tok := tokens[k]
		if tok.IsComment() {
			k++
			continue
		}
		if tok.Is("@") {
			if other, ok := parseAnnotationAt(ctx.src, tokens, k); ok {
				k = other.end
				continue
			}
		}
		if tok.Is("{") || tok.Is(";") {
			end = k
			break
		}
		if tok.Is("(") {
			closeIdx := matchForward(tokens, k, "(", ")")
			span.Params = ctx.paramDecls(k+1, closeIdx)
			end = ctx.bodyStart(closeIdx + 1)
			break
		}
		header = append(header, tok)
		k++
	}

	span.Name, span.ReturnType = splitHeader(header)

	spanEnd := len(ctx.src)
	if end < len(tokens) {
		spanEnd = tokens[end].End
	}
	span.Text = ctx.src[start.Offset:spanEnd]
	return span, nil
}

// bodyStart returns the index of the '{' or ';' ending a method signature
func (ctx *scanContext) bodyStart(k int) int {
	for ; k < len(ctx.tokens); k++ {
		if ctx.tokens[k].Is("{") || ctx.tokens[k].Is(";") {
			return k
		}
	}
	return len(ctx.tokens)
}

// splitHeader separates the method name from its return type.
// Modifiers and leading type parameters (<T>) are dropped.
func splitHeader(header []Token) (name, returnType string) {
	var rest []Token
	for i := 0; i < len(header); i++ {
		tok := header[i]
		if tok.Kind == TokenIdent && methodModifiers[tok.Text] {
			continue
		}
		if tok.Is("<") && len(rest) == 0 {
			i = matchForward(header, i, "<", ">")
			continue
		}
		rest = append(rest, tok)
	}

	if len(rest) == 0 {
		return "", "void"
	}
	last := rest[len(rest)-1]
	if last.Kind != TokenIdent {
		return "", typeText(rest)
	}
	returnType = typeText(rest[:len(rest)-1])
	if returnType == "" {
		returnType = "void"
	}
	return last.Text, returnType
}

// paramDecls splits tokens[from:to] at top-level commas into declarations
func (ctx *scanContext) paramDecls(from, to int) []ParamDecl {
	decls := []ParamDecl{}
	if to > len(ctx.tokens) {
		to = len(ctx.tokens)
	}

	declStart := from
	paren, angle := 0, 0
	for i := from; i <= to; i++ {
		if i < to {
			tok := ctx.tokens[i]
			switch {
			case tok.Is("(") || tok.Is("{") || tok.Is("["):
				paren++
			case tok.Is(")") || tok.Is("}") || tok.Is("]"):
				paren--
			case tok.Is("<") && paren == 0:
				angle++
			case tok.Is(">") && paren == 0:
				angle--
			}
			if !tok.Is(",") || paren != 0 || angle != 0 {
				continue
			}
		}
		if decl, ok := ctx.paramDecl(declStart, i); ok {
			decls = append(decls, decl)
		}
		declStart = i + 1
	}
	return decls
}

// paramDecl parses one declaration: annotations, modifiers, type, identifier
func (ctx *scanContext) paramDecl(from, to int) (ParamDecl, bool) {
	decl := ParamDecl{}
	var rest []Token

	for j := from; j < to; j++ {
		tok := ctx.tokens[j]
		if tok.IsComment() {
			continue
		}
		if tok.Is("@") {
			if ann, ok := parseAnnotationAt(ctx.src, ctx.tokens, j); ok && ann.end <= to {
				decl.Annotations = append(decl.Annotations, ann)
				j = ann.end - 1
				continue
			}
		}
		if tok.Is("final") {
			continue
		}
		rest = append(rest, tok)
	}

	if len(rest) == 0 {
		return decl, false
	}

	first := nextCode(ctx.tokens, from)
	decl.Raw = strings.TrimSpace(ctx.src[ctx.tokens[first].Offset:ctx.tokens[to-1].End])

	last := rest[len(rest)-1]
	if last.Kind == TokenIdent && len(rest) > 1 {
		decl.Name = last.Text
		decl.Type = typeText(rest[:len(rest)-1])
	} else {
		decl.Type = typeText(rest)
	}
	return decl, true
}

// mappingVerb derives the HTTP verb of a route annotation
func mappingVerb(ann Annotation) string {
	if verb := mappingVerbs[ann.Name]; verb != "" {
		return verb
	}
	value, ok := ann.Attr("method")
	if !ok {
		return model.MethodGet
	}
	for _, tok := range value {
		if tok.Kind != TokenIdent {
			continue
		}
		switch upper := strings.ToUpper(tok.Text); upper {
		case model.MethodGet, model.MethodPost, model.MethodPut, model.MethodDelete, model.MethodPatch:
			return upper
		}
	}
	return model.MethodGet
}
