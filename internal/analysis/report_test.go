package analysis

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	assert.Equal(t,
		"Your resume demonstrates 0 identified skills. Upload a more detailed resume for better job matching.",
		Summary(nil, nil))

	top := []types.MatchResult{
		{JobTitle: "Backend Developer", Score: 90},
		{JobTitle: "DevOps Engineer", Score: 50},
		{JobTitle: "Data Analyst", Score: 40},
		{JobTitle: "Programmer", Score: 10},
	}
	userSkills := make([]string, 12)

	got := Summary(userSkills, top)
	assert.Equal(t,
		"Your resume demonstrates strong technical expertise with 12 identified skills. "+
			"You are an excellent match for Backend Developer roles with a 90% compatibility score. "+
			"Your diverse skillset positions you well for 3 different career paths with an average match rate of 60%. "+
			"Your comprehensive skill portfolio is a significant strength.",
		got)

	got = Summary(userSkills[:4], top[:1])
	assert.Contains(t, got, "for 1 different career paths")
	assert.True(t, strings.HasSuffix(got, "Consider expanding your skillset for broader opportunities."))
}

func TestRecommendations(t *testing.T) {
	top := []types.MatchResult{
		{JobTitle: "Cloud Engineer", MissingSkills: []string{"AWS", "Python", "SQL"}},
		{JobTitle: "Platform Engineer", MissingSkills: []string{"SQL", "Kubernetes"}},
		{JobTitle: "Ignored", MissingSkills: nil},
		{JobTitle: "Fourth", MissingSkills: []string{"Azure"}},
	}

	got := Recommendations(top, []string{"Java"})
	require.Len(t, got, 7)
	assert.Equal(t, []string{
		"Focus on learning: AWS, Python, SQL, Kubernetes to improve your job match",
		"Get AWS Certified Solutions Architect certification",
		"Get Python Institute PCEP or PCAP certification",
		"Expand your technical skillset - aim for 12-15 diverse skills",
		"Add version control (Git/GitHub) to your resume",
		"Learn DevOps fundamentals (Docker, CI/CD) for better opportunities",
		"Include quantifiable achievements in your projects",
	}, got)
}

func TestRecommendations_WellRoundedProfile(t *testing.T) {
	userSkills := []string{"Go", "Git", "Docker", "SQL", "Python", "React", "AWS", "Linux", "Redis", "Kafka"}

	got := Recommendations(nil, userSkills)
	assert.Equal(t, []string{
		"Include quantifiable achievements in your projects",
		"Keep your resume updated with latest projects and technologies",
	}, got)
}

func TestEducation(t *testing.T) {
	text := "Jane Doe\n" +
		"B.Tech in Computer Science, XYZ University\n" +
		"Skills: Go\n" +
		"Master of Science\n" +
		"B.Tech in Computer Science, XYZ University\n" +
		"PhD candidate\n" +
		"MBA"

	assert.Equal(t,
		"B.Tech in Computer Science, XYZ University<br>Master of Science<br>PhD candidate",
		Education(text))
}

func TestEducation_IgnoresLongLines(t *testing.T) {
	long := "Studied at a university " + strings.Repeat("x", 150)
	assert.Equal(t, NoEducation, Education(long))
	assert.Equal(t, NoEducation, Education("Go developer\nLikes hiking"))
	assert.Equal(t, NoEducation, Education(""))
}
