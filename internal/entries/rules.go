package entries

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineContext is what a split rule sees when deciding whether a line opens a new entry.
type LineContext struct {
	// Line is the trimmed, non-blank line under consideration.
	Line string
	// OpenLines is the number of lines in the entry currently being accumulated.
	OpenLines int
}

// Rule is a named predicate that votes for starting a new entry at a line.
type Rule struct {
	Name  string
	Match func(LineContext) bool
}

// Rule names, in evaluation order.
const (
	RulePipeSeparator  = "pipe-separator"
	RuleKeywordPrefix  = "keyword-prefix"
	RuleTitleLine      = "title-line"
	RuleNumberedHeader = "numbered-header"
)

const (
	maxTitleLineLength    = 80
	maxNumberedLineLength = 60
	minLinesBeforeTitle   = 2
)

var projectKeywordPrefixes = []string{"project", "title:", "system:"}

var projectBulletPrefixes = []string{"•", "-", "*", "1.", "2.", "3."}

// ProjectRules is the ordered rule list used when a projects section has no
// paragraph breaks. The first rule that matches decides; a line matched by no
// rule continues the current entry.
var ProjectRules = []Rule{
	{Name: RulePipeSeparator, Match: hasPipeSeparator},
	{Name: RuleKeywordPrefix, Match: hasProjectKeywordPrefix},
	{Name: RuleTitleLine, Match: isTitleLine},
	{Name: RuleNumberedHeader, Match: isNumberedHeader},
}

// ClassifyLine returns the name of the first rule in rules that matches ctx, or "".
func ClassifyLine(rules []Rule, ctx LineContext) string {
	for _, r := range rules {
		if r.Match(ctx) {
			return r.Name
		}
	}
	return ""
}

func hasPipeSeparator(ctx LineContext) bool {
	return strings.Contains(ctx.Line, " | ")
}

func hasProjectKeywordPrefix(ctx LineContext) bool {
	lower := strings.ToLower(ctx.Line)
	for _, k := range projectKeywordPrefixes {
		if strings.HasPrefix(lower, k) {
			return true
		}
	}
	return false
}

// isTitleLine matches short capitalized non-bullet lines, but only when the
// open entry already has a body or nothing is open yet.
func isTitleLine(ctx LineContext) bool {
	if utf8.RuneCountInString(ctx.Line) >= maxTitleLineLength || !startsUpper(ctx.Line) || isProjectBullet(ctx.Line) {
		return false
	}
	return ctx.OpenLines >= minLinesBeforeTitle || ctx.OpenLines == 0
}

// isNumberedHeader matches "1. Name" style headers regardless of bullet detection.
func isNumberedHeader(ctx LineContext) bool {
	if utf8.RuneCountInString(ctx.Line) >= maxNumberedLineLength {
		return false
	}
	first, _ := utf8.DecodeRuneInString(ctx.Line)
	if !unicode.IsDigit(first) {
		return false
	}
	head := ctx.Line
	if len(head) > 3 {
		head = head[:3]
	}
	return strings.Contains(head, ".")
}

func isProjectBullet(line string) bool {
	for _, p := range projectBulletPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
