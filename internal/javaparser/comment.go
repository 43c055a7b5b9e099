package javaparser

import (
	"regexp"
	"strings"
)

var folderTagRegex = regexp.MustCompile(`@apiFolder(.*)`)

// precedingComment extracts the comment attached to the declaration starting at
// tokens[idx]. The search region runs backward to the nearest boundary token
// (one of boundaries) that is not nested inside an annotation argument list.
// Within the region a single-line comment wins over a block comment.
func precedingComment(tokens []Token, idx int, boundaries ...string) string {
	var lineComment, blockComment string

	for i := idx - 1; i >= 0; i-- {
		tok := tokens[i]
		if tok.Kind == TokenLineComment {
			// nearest line comment wins
			if lineComment == "" {
				lineComment = lineCommentText(tok.Text)
			}
			continue
		}
		if tok.Kind == TokenBlockComment {
			if blockComment == "" {
				blockComment = blockCommentText(tok.Text)
			}
			continue
		}
		if tok.Is(")") {
			// skip annotation arguments wholesale
			if open := matchBackward(tokens, i, "(", ")"); open >= 0 {
				i = open
			}
			continue
		}
		if isBoundary(tok, boundaries) {
			break
		}
	}

	if lineComment != "" {
		return lineComment
	}
	return blockComment
}

func isBoundary(tok Token, boundaries []string) bool {
	if tok.Kind != TokenPunct {
		return false
	}
	for _, b := range boundaries {
		if tok.Text == b {
			return true
		}
	}
	return false
}

// lineCommentText strips the leading slashes of a // comment
func lineCommentText(raw string) string {
	return strings.TrimSpace(strings.TrimLeft(raw, "/"))
}

// blockCommentText strips /* */ markers and the leading '*' of every line,
// then joins non-empty lines with a single space
func blockCommentText(raw string) string {
	body := strings.TrimPrefix(raw, "/*")
	body = strings.TrimSuffix(body, "*/")

	var parts []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "*"))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// folderTagFrom extracts an explicit "@apiFolder <name>" tag from comments
func folderTagFrom(tokens []Token) string {
	for _, tok := range tokens {
		if !tok.IsComment() {
			continue
		}
		m := folderTagRegex.FindStringSubmatch(tok.Text)
		if m == nil {
			continue
		}
		tag := strings.TrimSuffix(strings.TrimSpace(m[1]), "*/")
		tag = strings.Join(strings.Fields(strings.ReplaceAll(tag, "*", " ")), " ")
		if tag != "" {
			return tag
		}
	}
	return ""
}
