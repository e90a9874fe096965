package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// NoEducation is reported when no education line is recognized.
	NoEducation = "Education information not clearly specified"

	summaryMatches        = 3
	broadSkillCount       = 12
	minSkillCount         = 10
	maxFocusSkills        = 5
	certificationCheck    = 3
	maxRecommendations    = 7
	maxEducationLines     = 3
	maxEducationLineBytes = 150
	educationSeparator    = "<br>"
)

var certifications = map[string]string{
	"aws":              "Get AWS Certified Solutions Architect certification",
	"azure":            "Consider Microsoft Azure Fundamentals certification",
	"machine learning": "Pursue Google ML Engineer or AWS ML Specialty certification",
	"kubernetes":       "Earn Certified Kubernetes Administrator (CKA) certification",
	"python":           "Get Python Institute PCEP or PCAP certification",
}

var devopsSkills = skills.NewSet("docker", "kubernetes", "ci/cd")

var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "degree",
	"computer science", "engineering", "mba", "b.tech", "m.tech",
	"university", "college", "institute", "graduation",
}

// Summary writes the one-paragraph overview of an analysis.
func Summary(userSkills []string, top []types.MatchResult) string {
	n := len(userSkills)
	if len(top) == 0 {
		return fmt.Sprintf("Your resume demonstrates %d identified skills. Upload a more detailed resume for better job matching.", n)
	}

	best := top[:min(len(top), summaryMatches)]
	var sum float64
	for _, m := range best {
		sum += m.Score
	}
	avg := sum / float64(len(best))

	closing := "Consider expanding your skillset for broader opportunities."
	if n >= broadSkillCount {
		closing = "Your comprehensive skill portfolio is a significant strength."
	}

	return fmt.Sprintf(
		"Your resume demonstrates strong technical expertise with %d identified skills. "+
			"You are an excellent match for %s roles with a %.0f%% compatibility score. "+
			"Your diverse skillset positions you well for %d different career paths with an average match rate of %.0f%%. %s",
		n, top[0].JobTitle, top[0].Score, len(best), avg, closing)
}

// Recommendations lists up to seven improvement suggestions, skill gaps of the
// best three matches first.
func Recommendations(top []types.MatchResult, userSkills []string) []string {
	var recs []string

	missing := missingSkills(top[:min(len(top), summaryMatches)])
	if len(missing) > 0 {
		focus := missing[:min(len(missing), maxFocusSkills)]
		recs = append(recs, fmt.Sprintf("Focus on learning: %s to improve your job match", strings.Join(focus, ", ")))
	}

	for _, s := range missing[:min(len(missing), certificationCheck)] {
		if cert, ok := certifications[strings.ToLower(s)]; ok {
			recs = append(recs, cert)
		}
	}

	if len(userSkills) < minSkillCount {
		recs = append(recs, "Expand your technical skillset - aim for 12-15 diverse skills")
	}

	hasGit, hasDevops := false, false
	for _, s := range userSkills {
		if strings.Contains(strings.ToLower(s), "git") {
			hasGit = true
		}
		if devopsSkills.Contains(s) {
			hasDevops = true
		}
	}
	if !hasGit {
		recs = append(recs, "Add version control (Git/GitHub) to your resume")
	}
	if !hasDevops {
		recs = append(recs, "Learn DevOps fundamentals (Docker, CI/CD) for better opportunities")
	}

	recs = append(recs,
		"Include quantifiable achievements in your projects",
		"Keep your resume updated with latest projects and technologies",
	)

	return recs[:min(len(recs), maxRecommendations)]
}

// missingSkills collects the missing skills of matches in order, without duplicates.
func missingSkills(matches []types.MatchResult) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range matches {
		for _, s := range m.MissingSkills {
			k := skills.Fold(s)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, s)
		}
	}
	return out
}

// Education returns up to three distinct lines that mention an education
// keyword, joined with "<br>".
func Education(text string) string {
	var found []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(line) >= maxEducationLineBytes || seen[trimmed] {
			continue
		}
		lower := strings.ToLower(line)
		for _, k := range educationKeywords {
			if strings.Contains(lower, k) {
				seen[trimmed] = true
				found = append(found, trimmed)
				break
			}
		}
		if len(found) == maxEducationLines {
			break
		}
	}

	if len(found) == 0 {
		return NoEducation
	}
	return strings.Join(found, educationSeparator)
}
