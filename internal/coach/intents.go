package coach

import "strings"

var (
	greetingWords = []string{"hi", "hello", "hey", "start", "greetings"}

	// roleAliases is tried in order after exact role names.
	roleAliases = []struct {
		alias string
		role  string
	}{
		{"frontend", "Frontend Developer"},
		{"front end", "Frontend Developer"},
		{"backend", "Backend Developer"},
		{"back end", "Backend Developer"},
		{"fullstack", "Full Stack Developer"},
		{"full stack", "Full Stack Developer"},
		{"data scientist", "Data Scientist"},
		{"ml", "Machine Learning Engineer"},
		{"machine learning", "Machine Learning Engineer"},
		{"devops", "DevOps Engineer"},
	}

	contextReferences = []string{"this", "that", "the job", "my role", "target", "for me"}
	interviewKeys     = []string{"interview", "question", "ask me", "quiz"}
	salaryKeys        = []string{"salary", "pay", "compensat", "earn", "money"}
	roadmapKeys       = []string{"roadmap", "learn", "study", "path", "become a"}
	skillKeys         = []string{"skill", "stack", "know", "technology"}
	describeKeys      = []string{"what is", "tell me about", "describe", "role"}
	projectKeys       = []string{"project", "work", "experience", "portfolio", "what did i do"}
	summaryKeys       = []string{"summary", "summarize"}
)

// containsAny reports whether lower contains any of keys as a substring.
func containsAny(lower string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// words splits lower into runs of letters and digits.
func words(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 0x7f)
	})
}

// containsPhrase reports whether phrase occurs in msgWords as whole words.
func containsPhrase(msgWords []string, phrase string) bool {
	target := words(strings.ToLower(phrase))
	if len(target) == 0 || len(target) > len(msgWords) {
		return false
	}
outer:
	for i := 0; i+len(target) <= len(msgWords); i++ {
		for j, w := range target {
			if msgWords[i+j] != w {
				continue outer
			}
		}
		return true
	}
	return false
}

func containsAnyWord(msgWords []string, candidates []string) bool {
	for _, c := range candidates {
		if containsPhrase(msgWords, c) {
			return true
		}
	}
	return false
}
