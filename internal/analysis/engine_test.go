package analysis

import (
	"sync"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/ranking"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Skills: Python, React, Node.js, SQL, Docker, Git

Projects:
1. E-commerce App: Built using React and Node.js.
2. AI Chatbot: Used Python and TensorFlow.

Internships
Software Intern at Acme Corp (June 2022 - Aug 2022)
• Built REST APIs with Node.js and SQL

Education
B.Tech in Computer Science, XYZ University
`

func testContext() *Context {
	tax := &types.Taxonomy{Categories: []types.Category{
		{Name: "Languages", Skills: []string{"Python", "JavaScript", "SQL"}},
		{Name: "Web", Skills: []string{"React", "Node.js"}},
		{Name: "DevOps", Skills: []string{"Docker", "Git"}},
		{Name: "AI", Skills: []string{"TensorFlow"}},
	}}
	cat := types.NewRoleCatalog([]types.RoleDefinition{
		{Name: "Frontend Developer", RequiredSkills: []string{"React", "JavaScript", "CSS"}},
		{Name: "Backend Developer", RequiredSkills: []string{"Node.js", "SQL", "Docker"}},
		{Name: "ML Engineer", RequiredSkills: []string{"Python", "TensorFlow"}},
		{Name: "Software Engineer", RequiredSkills: []string{"Python", "Git", "Docker", "Java"}},
		{Name: "Data Analyst", RequiredSkills: []string{"Excel", "Tableau"}},
		{Name: "DevOps Engineer", RequiredSkills: []string{"Docker", "Kubernetes"}},
	})
	return NewContext(tax, cat, nil, nil)
}

func matchTitles(matches []types.MatchResult) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.JobTitle
	}
	return out
}

func TestEngine_Analyze(t *testing.T) {
	e := NewEngine(testContext())

	got := e.Analyze(sampleResume, "")

	assert.Equal(t, []string{"Python", "React", "Node.js", "SQL", "Docker", "Git", "TensorFlow"}, got.Skills)
	assert.Equal(t, []string{"Python", "SQL"}, got.CategorizedSkills["Languages"])

	assert.Equal(t, []string{
		"Backend Developer",
		"ML Engineer",
		"Software Engineer",
		"DevOps Engineer",
		"Frontend Developer",
	}, matchTitles(got.JobMatches))
	assert.Equal(t, 67.5, got.JobMatches[2].Score)

	require.Len(t, got.ProjectAnalysis, 2)
	assert.Equal(t, "E-commerce App", got.ProjectAnalysis[0].Name)
	assert.Equal(t, "AI Chatbot", got.ProjectAnalysis[1].Name)

	require.Len(t, got.InternshipAnalysis, 1)
	assert.Equal(t, "Software Intern", got.InternshipAnalysis[0].Role)
	assert.Equal(t, "Acme Corp", got.InternshipAnalysis[0].Company)
	assert.Equal(t, []string{"Node.js", "SQL"}, got.InternshipAnalysis[0].SkillsUsed)

	assert.Equal(t, "B.Tech in Computer Science, XYZ University", got.Education)
	assert.Contains(t, got.Summary, "excellent match for Backend Developer roles with a 100%")
	assert.NotEmpty(t, got.Recommendations)
}

func TestEngine_TargetRoleIsPromoted(t *testing.T) {
	e := NewEngine(testContext())

	got := e.Analyze(sampleResume, "  data analyst ")

	require.NotEmpty(t, got.JobMatches)
	assert.Equal(t, "Data Analyst", got.JobMatches[0].JobTitle)
	assert.True(t, got.JobMatches[0].IsTarget)
	assert.Equal(t, []string{
		"Data Analyst",
		"Backend Developer",
		"ML Engineer",
		"Software Engineer",
		"DevOps Engineer",
	}, matchTitles(got.JobMatches))
}

func TestEngine_TopMatchesOption(t *testing.T) {
	e := NewEngine(testContext(), WithTopMatches(2))
	assert.Len(t, e.Analyze(sampleResume, "").JobMatches, 2)

	all := NewEngine(testContext(), WithTopMatches(0))
	assert.Len(t, all.Analyze(sampleResume, "").JobMatches, 6)
}

func TestEngine_EmptyAndShortInput(t *testing.T) {
	e := NewEngine(testContext())

	for _, text := range []string{"", "   ", "Python developer with React"} {
		got := e.Analyze(text, "Backend Developer")
		assert.Empty(t, got.Skills)
		assert.Empty(t, got.JobMatches)
		assert.Empty(t, got.ProjectAnalysis)
		assert.Empty(t, got.InternshipAnalysis)
		assert.NotNil(t, got.Skills)
		assert.NotNil(t, got.JobMatches)
	}
}

func TestEngine_EmptyContext(t *testing.T) {
	e := NewEngine(nil)

	got := e.Analyze(sampleResume, "")
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.JobMatches)
	assert.Len(t, got.ProjectAnalysis, 2)
}

func TestEngine_Idempotent(t *testing.T) {
	e := NewEngine(testContext())
	assert.Equal(t, e.Analyze(sampleResume, "ml"), e.Analyze(sampleResume, "ml"))
}

func TestEngine_ConcurrentUse(t *testing.T) {
	cat := testContext().Catalog
	ctx := NewContext(testContext().Taxonomy, cat, ranking.FitVectorModel(cat), nil)
	e := NewEngine(ctx)
	want := e.Analyze(sampleResume, "")

	var wg sync.WaitGroup
	results := make([]*types.AnalysisResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Analyze(sampleResume, "")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
	assert.Equal(t, ranking.StateVectorEnabled, ctx.Scorer.State())
}
