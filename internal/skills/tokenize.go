package skills

import (
	"strings"
	"unicode"
)

// Tokenize splits text into matching tokens. Whitespace and "/" separate
// tokens; punctuation around a word becomes its own token while characters
// inside a word are kept, so "Node.js", "C++", "C#" and "CI-CD" stay whole.
func Tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.FieldsFunc(text, isSeparator) {
		tokens = appendField(tokens, field)
	}
	return tokens
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '/'
}

func appendField(tokens []string, field string) []string {
	runes := []rune(field)
	start, end := 0, len(runes)

	for start < end && isLeadingPunct(runes, start) {
		start++
	}
	for end > start && isTrailingPunct(runes[end-1]) {
		end--
	}

	for _, r := range runes[:start] {
		tokens = append(tokens, string(r))
	}
	if start < end {
		tokens = append(tokens, string(runes[start:end]))
	}
	for _, r := range runes[end:] {
		tokens = append(tokens, string(r))
	}
	return tokens
}

// isLeadingPunct keeps a dot that starts a word (".NET").
func isLeadingPunct(runes []rune, i int) bool {
	r := runes[i]
	if isWordRune(r) {
		return false
	}
	if r == '.' && i+1 < len(runes) && isWordRune(runes[i+1]) {
		return false
	}
	return true
}

// isTrailingPunct keeps the '+' and '#' of names like C++ and F#.
func isTrailingPunct(r rune) bool {
	return !isWordRune(r) && r != '+' && r != '#'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
