package entries

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	minInternshipEntryLength = 20
	minInternshipBlockLength = 30
	maxOpenInternshipLines   = 2
	maxBareRoleLength        = 50

	// DefaultInternRole and DefaultCompany are used when the header line cannot be parsed.
	DefaultInternRole = "Intern / Trainee"
	DefaultCompany    = "Unknown Company"
)

const monthPattern = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

var (
	yearRegex  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	monthRegex = regexp.MustCompile(`(?i)\b` + monthPattern + `\b`)

	// yearTailRegex matches a trailing date run that contains a year, such as
	// ", June 2022 - Aug 2022" or " (2021)".
	yearTailRegex = regexp.MustCompile(`(?i)[\s(,\-–—]*(?:\b` + monthPattern + `\b\.?\s*)?\b(?:19|20)\d{2}\b.*$`)
	// monthTailRegex matches a trailing month range without years, such as
	// " (June - August)" or ", May to Present".
	monthTailRegex = regexp.MustCompile(`(?i)[\s(,\-–—]*\b` + monthPattern + `\b\.?(?:\s*(?:-|–|—|to)\s*(?:\b` + monthPattern + `\b\.?|present|current))?[\s)]*$`)
)

var internshipBulletPrefixes = []string{"•", "-", "*", "1.", ">"}

// roleSeparators are tried in order when splitting "Role at Company" header lines.
var roleSeparators = []string{" at ", " in ", " | ", ",", "@"}

var trainingKeywords = []string{
	"in-plant", "training", "workshop", "course", "vocational", "seminar", "certification",
}

// SplitInternships splits an internships section into entries. A non-bullet
// line opens a new entry when it carries a date, or when the open entry has
// already grown past two lines.
func SplitInternships(section string) []string {
	var entries []string
	var current []string

	for _, line := range strings.Split(normalizeNewlines(section), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		header := len(current) > 0 && !isInternshipBullet(trimmed) &&
			(HasDate(trimmed) || len(current) > maxOpenInternshipLines)

		if header {
			entries = append(entries, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, "\n"))
	}

	kept := entries[:0]
	for _, e := range entries {
		if utf8.RuneCountInString(e) > minInternshipEntryLength {
			kept = append(kept, e)
		}
	}

	if len(kept) == 0 && utf8.RuneCountInString(section) > minInternshipBlockLength {
		return []string{section}
	}
	return kept
}

// HasDate reports whether a line mentions a year between 1900 and 2099 or a month name.
func HasDate(line string) bool {
	return yearRegex.MatchString(line) || monthRegex.MatchString(line)
}

// ParseRoleCompany splits an entry header line into role and company.
func ParseRoleCompany(firstLine string) (role, company string) {
	firstLine = strings.TrimSpace(firstLine)
	role, company = DefaultInternRole, DefaultCompany

	for _, sep := range roleSeparators {
		if !strings.Contains(firstLine, sep) {
			continue
		}
		parts := strings.Split(firstLine, sep)
		role = strings.TrimSpace(parts[0])
		if c := stripDates(strings.TrimSpace(parts[1])); c != "" {
			company = c
		}
		return role, company
	}

	if utf8.RuneCountInString(firstLine) < maxBareRoleLength {
		role = firstLine
	}
	return role, company
}

// ClassifyInternship returns types.EntryTypeTraining when the entry reads like a
// training programme, otherwise types.EntryTypeInternship.
func ClassifyInternship(entry string) string {
	lower := strings.ToLower(entry)
	for _, k := range trainingKeywords {
		if strings.Contains(lower, k) {
			return types.EntryTypeTraining
		}
	}
	return types.EntryTypeInternship
}

// stripDates removes a date run that ends the company segment and trims the
// leftover punctuation, so "Acme (June 2022 - Aug 2022)" becomes "Acme" while
// "May Technologies" is kept whole.
func stripDates(company string) string {
	cut := len(company)
	if loc := yearTailRegex.FindStringIndex(company); loc != nil {
		cut = loc[0]
	}
	if loc := monthTailRegex.FindStringIndex(company); loc != nil && loc[0] < cut {
		cut = loc[0]
	}
	return strings.Trim(company[:cut], " ()-–—,")
}

func isInternshipBullet(line string) bool {
	for _, p := range internshipBulletPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
