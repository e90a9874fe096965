// Package sections splits raw résumé text into named sections using header-keyword heuristics.
package sections

import (
	"strings"
	"unicode/utf8"
)

const (
	// headerTrimChars are stripped from both ends of a line before it is compared to a header.
	headerTrimChars = ":-|•* #"

	// maxHeaderLength rejects end-marker candidates that read like sentences,
	// e.g. "Experience with Python and distributed systems".
	maxHeaderLength = 40

	// multiWordSlack is how much longer than a multi-word end header a line may be.
	multiWordSlack = 10

	// maxSingleWordHeaderWords bounds lines that start with a single-word end header.
	maxSingleWordHeaderWords = 3
)

// Kind describes how to find one section: the headers that open it, the
// headers of other sections that close it, and how many extra characters a
// start line may carry after its header (e.g. a trailing qualifier).
type Kind struct {
	Name         string
	Headers      []string
	OtherHeaders []string
	StartSlack   int
}

// ExtractProjects returns the body of the projects section, or "" if none.
func ExtractProjects(text string) string {
	return ExtractSection(text, Projects)
}

// ExtractInternships returns the body of the internships section, or "" if none.
func ExtractInternships(text string) string {
	return ExtractSection(text, Internships)
}

// ExtractSection returns the lines between the first start marker of kind
// (exclusive) and the next end marker (exclusive) or the end of the document.
// Blank lines at both ends are dropped. Returns "" when no start marker exists.
func ExtractSection(text string, kind Kind) string {
	lines := strings.Split(text, "\n")

	start, end := -1, len(lines)
	for i, line := range lines {
		clean := cleanHeaderLine(line)
		if clean == "" {
			continue
		}

		if start == -1 {
			if IsStartMarker(clean, kind) {
				start = i + 1
			}
			continue
		}

		if IsEndMarker(clean, kind.OtherHeaders) {
			end = i
			break
		}
	}

	if start == -1 {
		return ""
	}

	body := lines[start:end]
	for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
		body = body[1:]
	}
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}

	return strings.TrimSpace(strings.Join(body, "\n"))
}

// IsStartMarker reports whether a cleaned line opens the section described by kind.
func IsStartMarker(clean string, kind Kind) bool {
	for _, h := range kind.Headers {
		if clean == h {
			return true
		}
	}
	for _, h := range kind.Headers {
		if strings.HasPrefix(clean, h) && utf8.RuneCountInString(clean) <= utf8.RuneCountInString(h)+kind.StartSlack {
			return true
		}
	}
	return false
}

// IsEndMarker reports whether a cleaned line is the header of another section.
func IsEndMarker(clean string, otherHeaders []string) bool {
	if utf8.RuneCountInString(clean) > maxHeaderLength {
		return false
	}

	for _, h := range otherHeaders {
		if clean == h {
			return true
		}
		if !strings.HasPrefix(clean, h) {
			continue
		}

		remainder := strings.Trim(clean[len(h):], " :-|")
		if remainder == "" {
			return true
		}

		if strings.Contains(h, " ") {
			if utf8.RuneCountInString(clean) < utf8.RuneCountInString(h)+multiWordSlack {
				return true
			}
		} else if len(strings.Fields(clean)) <= maxSingleWordHeaderWords {
			return true
		}
	}
	return false
}

// cleanHeaderLine lower-cases a line and strips whitespace and header punctuation from both ends.
func cleanHeaderLine(line string) string {
	clean := strings.ToLower(strings.TrimSpace(line))
	return strings.Trim(clean, headerTrimChars)
}
