package javaparser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a lexical token
type TokenKind int

const (
	TokenIdent TokenKind = iota
	TokenNumber
	TokenString
	TokenChar
	TokenLineComment
	TokenBlockComment
	TokenPunct
)

// Token is one lexical unit of Java source.
// Offset and End are byte offsets into the lexed text.
type Token struct {
	Kind   TokenKind
	Text   string // raw text as it appears in the source
	Offset int
	End    int
}

// IsComment reports whether the token is a line or block comment
func (t Token) IsComment() bool {
	return t.Kind == TokenLineComment || t.Kind == TokenBlockComment
}

// Is reports whether the token is the given punctuation or identifier
func (t Token) Is(text string) bool {
	return (t.Kind == TokenPunct || t.Kind == TokenIdent) && t.Text == text
}

// Value returns the unquoted content of a string literal
func (t Token) Value() string {
	if t.Kind != TokenString {
		return t.Text
	}
	s := t.Text
	if strings.HasPrefix(s, `"""`) {
		return strings.TrimSuffix(strings.TrimPrefix(s, `"""`), `"""`)
	}
	return trimQuotes(s)
}

// Lex splits Java source into tokens. Whitespace is dropped; comments are kept
// as tokens so callers can attach them to declarations. Braces and parentheses
// inside string literals and comments never surface as punctuation.
func Lex(src string) []Token {
	tokens := make([]Token, 0, len(src)/4)
	i := 0
	n := len(src)

	for i < n {
		c := src[i]

		// Whitespace
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' {
			i++
			continue
		}

		start := i

		// Comments
		if c == '/' && i+1 < n {
			if src[i+1] == '/' {
				end := strings.IndexByte(src[i:], '\n')
				if end == -1 {
					i = n
				} else {
					i += end
				}
				tokens = append(tokens, Token{Kind: TokenLineComment, Text: strings.TrimRight(src[start:i], "\r"), Offset: start, End: i})
				continue
			}
			if src[i+1] == '*' {
				end := strings.Index(src[i+2:], "*/")
				if end == -1 {
					i = n
				} else {
					i += 2 + end + 2
				}
				tokens = append(tokens, Token{Kind: TokenBlockComment, Text: src[start:i], Offset: start, End: i})
				continue
			}
		}

		// Text blocks and string literals
		if c == '"' {
			if strings.HasPrefix(src[i:], `"""`) {
				end := strings.Index(src[i+3:], `"""`)
				if end == -1 {
					i = n
				} else {
					i += 3 + end + 3
				}
			} else {
				i = skipQuoted(src, i, '"')
			}
			tokens = append(tokens, Token{Kind: TokenString, Text: src[start:i], Offset: start, End: i})
			continue
		}

		if c == '\'' {
			i = skipQuoted(src, i, '\'')
			tokens = append(tokens, Token{Kind: TokenChar, Text: src[start:i], Offset: start, End: i})
			continue
		}

		r, size := utf8.DecodeRuneInString(src[i:])

		// Identifiers (Java allows letters from any script, '_' and '$')
		if isIdentStart(r) {
			i += size
			for i < n {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !isIdentPart(r) {
					break
				}
				i += size
			}
			tokens = append(tokens, Token{Kind: TokenIdent, Text: src[start:i], Offset: start, End: i})
			continue
		}

		if c >= '0' && c <= '9' {
			i++
			for i < n && (isIdentPart(rune(src[i])) || src[i] == '.') {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Text: src[start:i], Offset: start, End: i})
			continue
		}

		i += size
		tokens = append(tokens, Token{Kind: TokenPunct, Text: src[start:i], Offset: start, End: i})
	}

	return tokens
}

// skipQuoted returns the offset just past the closing quote, honouring escapes.
// An unterminated literal stops at the end of the line.
func skipQuoted(src string, i int, quote byte) int {
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			return i
		}
		i++
	}
	return len(src)
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// lineIndex converts byte offsets to 0-based line/column pairs
type lineIndex struct {
	src    string
	starts []int
}

func newLineIndex(src string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{src: src, starts: starts}
}

// Position returns the 0-based line and column (in runes) of offset
func (li *lineIndex) Position(offset int) (line, column int) {
	line = sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	column = utf8.RuneCountInString(li.src[li.starts[line]:offset])
	return line, column
}

// matchForward returns the index of the token closing the group opened at
// tokens[open], or len(tokens) when the group is never closed.
func matchForward(tokens []Token, open int, openText, closeText string) int {
	depth := 0
	for i := open; i < len(tokens); i++ {
		if tokens[i].IsComment() {
			continue
		}
		switch {
		case tokens[i].Is(openText):
			depth++
		case tokens[i].Is(closeText):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(tokens)
}

// matchBackward returns the index of the token opening the group closed at
// tokens[closeIdx], or -1 when the group is never opened.
func matchBackward(tokens []Token, closeIdx int, openText, closeText string) int {
	depth := 0
	for i := closeIdx; i >= 0; i-- {
		if tokens[i].IsComment() {
			continue
		}
		switch {
		case tokens[i].Is(closeText):
			depth++
		case tokens[i].Is(openText):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// typeText rebuilds a type expression from tokens, e.g. "Map<String, List<Long>>"
func typeText(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.IsComment() {
			continue
		}
		sb.WriteString(tok.Text)
		if tok.Is(",") {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// trimQuotes removes surrounding quotes from a string
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
