// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KnowledgeBase is the offline content the career coach answers from.
type KnowledgeBase struct {
	Personality BotPersonality `json:"bot_personality"`
	Advice      GeneralAdvice  `json:"general_advice"`
	// Roles keeps document order; role detection tries them in this order.
	Roles []RoleGuide `json:"-"`
}

// BotPersonality holds canned greetings and fallbacks.
type BotPersonality struct {
	Greetings []string `json:"greetings"`
	Fallback  []string `json:"fallback"`
}

// GeneralAdvice holds role-independent tips.
type GeneralAdvice struct {
	InterviewPrep []string `json:"interview_prep"`
	Resume        []string `json:"resume"`
	Negotiation   []string `json:"negotiation"`
}

// RoleGuide is the coach's knowledge about one role.
type RoleGuide struct {
	Name               string   `json:"-"`
	Description        string   `json:"description"`
	KeySkills          []string `json:"key_skills"`
	SalaryRange        string   `json:"salary_range"`
	Roadmap            []string `json:"roadmap"`
	InterviewQuestions []string `json:"interview_questions"`
}

// Role returns the guide with exactly the given name.
func (kb *KnowledgeBase) Role(name string) (RoleGuide, bool) {
	if kb == nil {
		return RoleGuide{}, false
	}
	for _, r := range kb.Roles {
		if r.Name == name {
			return r, true
		}
	}
	return RoleGuide{}, false
}
