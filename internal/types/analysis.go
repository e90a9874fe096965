// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the compatibility of the analyzed résumé with one role.
type MatchResult struct {
	JobTitle      string   `json:"job_title"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Description   string   `json:"description"`
	IsTarget      bool     `json:"is_target,omitempty"`
	// VectorScore is the TF-IDF cosine similarity (0-100) when the vector
	// model is available. It is informational; Score stays authoritative.
	VectorScore *float64 `json:"vector_score,omitempty"`
}

// Tier is a coarse quality bucket for a project.
type Tier string

// Project tiers, best first.
const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// ProjectAnalysis is the per-project feedback derived from the projects section.
type ProjectAnalysis struct {
	Name          string   `json:"name"`
	Summary       string   `json:"summary"`
	Description   string   `json:"description"`
	Advantages    []string `json:"advantages"`
	Disadvantages []string `json:"disadvantages"`
	Relevance     []string `json:"relevance"`
	TechStack     []string `json:"tech_stack"`
	Role          string   `json:"role"`
	Score         int      `json:"score"`
	Tier          Tier     `json:"tier"`
}

// Internship entry types.
const (
	EntryTypeInternship = "Internship"
	EntryTypeTraining   = "Training"
)

// InternshipAnalysis is the per-entry breakdown of the internships/training section.
type InternshipAnalysis struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Summary    string   `json:"summary"`
	SkillsUsed []string `json:"skills_used"`
	FullText   string   `json:"full_text"`
	Type       string   `json:"type"`
}

// AnalysisResult is the full output of one résumé analysis.
type AnalysisResult struct {
	Skills             []string             `json:"skills"`
	CategorizedSkills  map[string][]string  `json:"categorizedSkills"`
	JobMatches         []MatchResult        `json:"jobMatches"`
	Education          string               `json:"education"`
	ProjectAnalysis    []ProjectAnalysis    `json:"projectAnalysis"`
	InternshipAnalysis []InternshipAnalysis `json:"internshipAnalysis"`
	Summary            string               `json:"summary"`
	Recommendations    []string             `json:"recommendations"`
}
