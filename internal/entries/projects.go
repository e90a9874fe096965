// Package entries splits a résumé section into discrete project or internship entries.
package entries

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minParagraphLength   = 20
	minLineEntryLength   = 15
	minWholeSectionChars = 50
	dedupePrefixRunes    = 100
	maxTitleRunes        = 60
)

// titleMarkerRegex matches leading bullets or list numbering such as "• ", "- ", "1. ", "2) ".
var titleMarkerRegex = regexp.MustCompile(`^(?:[*\-•·▪►]+|\d{1,2}[.)])\s*`)

// inlineTitleSeparator is the colon of "Name: details". A colon without
// following whitespace, as in "https://", does not separate.
var inlineTitleSeparator = regexp.MustCompile(`:\s+`)

// titleLabels are inline labels whose value is the real title ("Project: Chat App").
var titleLabels = map[string]bool{
	"project":       true,
	"project title": true,
	"project name":  true,
	"title":         true,
	"system":        true,
}

// SplitProjects splits a projects section into entries. Blank-line paragraphs
// are preferred; when they yield at most one entry the section is re-split line
// by line using ProjectRules.
func SplitProjects(section string) []string {
	text := normalizeNewlines(section)

	var raw []string
	for _, p := range strings.Split(text, "\n\n") {
		if utf8.RuneCountInString(strings.TrimSpace(p)) > minParagraphLength {
			raw = append(raw, strings.TrimSpace(p))
		}
	}

	if len(raw) <= 1 {
		if byLine := splitByRules(text, ProjectRules); len(byLine) > 1 {
			raw = byLine
		}
	}

	if len(raw) == 0 && utf8.RuneCountInString(section) > minWholeSectionChars {
		raw = []string{section}
	}

	return dedupe(raw)
}

// splitByRules groups non-blank lines into entries, opening a new entry at
// every line (other than the first) that some rule matches.
func splitByRules(text string, rules []Rule) []string {
	var result []string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		isNew := len(result) > 0 || len(current) > 0
		if isNew {
			isNew = ClassifyLine(rules, LineContext{Line: trimmed, OpenLines: len(current)}) != ""
		}

		if isNew && len(current) > 0 {
			result = append(result, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		result = append(result, strings.Join(current, "\n"))
	}

	kept := result[:0]
	for _, e := range result {
		if utf8.RuneCountInString(strings.TrimSpace(e)) > minLineEntryLength {
			kept = append(kept, e)
		}
	}
	return kept
}

// dedupe drops entries whose first 100 case-folded characters repeat an earlier entry.
func dedupe(entries []string) []string {
	seen := make(map[string]bool, len(entries))
	unique := make([]string, 0, len(entries))
	for _, e := range entries {
		key := TruncateRunes(strings.ToLower(strings.TrimSpace(e)), dedupePrefixRunes)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, e)
	}
	return unique
}

// ParseProjectTitle derives a display title and a description from an entry.
// The title is the first line without list markers or a trailing colon; an
// inline "Name: details" line contributes its head as the title and its tail to
// the description. Titles longer than 60 characters are cut with an ellipsis.
func ParseProjectTitle(entry string) (title, description string) {
	lines := strings.Split(normalizeNewlines(entry), "\n")
	first := titleMarkerRegex.ReplaceAllString(strings.TrimSpace(lines[0]), "")
	first = strings.TrimSpace(strings.Trim(first, ":"))

	var rest []string
	for _, l := range lines[1:] {
		if l = strings.TrimSpace(l); l != "" {
			rest = append(rest, l)
		}
	}

	title = first
	if loc := inlineTitleSeparator.FindStringIndex(first); loc != nil {
		head, tail := strings.TrimSpace(first[:loc[0]]), strings.TrimSpace(first[loc[1]:])
		switch {
		case titleLabels[strings.ToLower(head)] && tail != "":
			title = tail
		case head != "" && tail != "":
			title = head
			rest = append([]string{tail}, rest...)
		}
	}

	if len(rest) > 0 {
		description = strings.Join(rest, " ")
	} else {
		description = strings.TrimSpace(entry)
	}

	if r := []rune(title); len(r) > maxTitleRunes {
		title = string(r[:maxTitleRunes]) + "..."
	}
	return title, description
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// TruncateRunes returns the first n runes of s.
func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
