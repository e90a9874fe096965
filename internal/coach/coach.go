// Package coach implements the offline career coach: a keyword-intent
// responder over the career knowledge base and the user's last analysis.
package coach

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/types"
	"go.uber.org/zap"
)

const (
	maxInterviewQuestions = 3
	maxGeneralTips        = 3
	maxProjects           = 3

	defaultGreeting = "Hello! I'm your Offline Career Coach. How can I help you today?"
	defaultFallback = "I'm not sure about that."
)

// Coach answers chat messages. It is safe for concurrent use.
type Coach struct {
	kb      *types.KnowledgeBase
	catalog *types.RoleCatalog
	now    func() time.Time
	logger *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Coach.
type Option func(*Coach)

// WithRand sets the random source used to pick greetings, fallbacks and questions.
func WithRand(r *rand.Rand) Option {
	return func(c *Coach) { c.rng = r }
}

// WithCatalog lets the coach answer skill and description questions for
// catalog roles that have no knowledge-base guide.
func WithCatalog(cat *types.RoleCatalog) Option {
	return func(c *Coach) { c.catalog = cat }
}

// WithClock sets the clock used to timestamp replies.
func WithClock(now func() time.Time) Option {
	return func(c *Coach) { c.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Coach) { c.logger = l }
}

// New creates a coach over kb. A nil kb behaves like an empty knowledge base.
func New(kb *types.KnowledgeBase, opts ...Option) *Coach {
	if kb == nil {
		kb = &types.KnowledgeBase{}
	}
	c := &Coach{
		kb:  kb,
		now: time.Now,
		rng: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logger.Component(c.logger, "coach")
	return c
}

// Respond answers message, using analysis (which may be nil) as context.
func (c *Coach) Respond(message string, analysis *types.AnalysisResult) types.ChatResponse {
	reply := c.Reply(message, analysis)
	return types.NewChatResponse(reply, c.now())
}

// Reply returns the text answer to message.
func (c *Coach) Reply(message string, analysis *types.AnalysisResult) string {
	lower := strings.ToLower(message)
	msgWords := words(lower)
	topRole := topRoleOf(analysis)

	if containsAnyWord(msgWords, greetingWords) {
		return c.pick(c.kb.Personality.Greetings, defaultGreeting)
	}

	role, hasRole := c.detectRole(lower, msgWords, topRole)
	c.logger.Debug("chat message classified",
		zap.String("role", role.Name),
		zap.String("context_role", topRole),
		zap.String("message", logger.TruncateForLog(message, 80)))

	if containsAny(lower, interviewKeys) {
		if hasRole && len(role.InterviewQuestions) > 0 {
			return c.interviewReply(role)
		}
		if !hasRole && strings.Contains(lower, "interview") {
			return generalInterviewReply(c.kb.Advice.InterviewPrep)
		}
	}

	if containsAny(lower, salaryKeys) {
		if hasRole {
			salary := role.SalaryRange
			if salary == "" {
				salary = "Variable"
			}
			return fmt.Sprintf("The typical salary range for a **%s** is:\n\n💰 **%s**\n\n*Note: This varies by location and experience level.*", role.Name, salary)
		}
		return "I can share salary insights! Please mention a role, e.g., **'Salary for Data Scientist'**."
	}

	if containsAny(lower, roadmapKeys) {
		if hasRole {
			return fmt.Sprintf("Here is a recommended learning path for **%s**:\n\n%s", role.Name, strings.Join(role.Roadmap, "\n"))
		}
		return "I can guide your learning! Ask me like: **'Roadmap for Backend Developer'**."
	}

	if containsAny(lower, skillKeys) {
		if hasRole {
			return fmt.Sprintf("Key skills required for **%s** include:\n\n✅ %s", role.Name, strings.Join(role.KeySkills, ", "))
		}
		if topRole != "" {
			return fmt.Sprintf("Based on your analysis, you should focus on skills for **%s**. Ask me 'skills for %s' to see the list!", topRole, topRole)
		}
	}

	if hasRole && containsAny(lower, describeKeys) {
		return fmt.Sprintf("**%s**: %s", role.Name, role.Description)
	}

	if containsAny(lower, projectKeys) {
		if analysis != nil && len(analysis.ProjectAnalysis) > 0 {
			return projectReply(analysis.ProjectAnalysis)
		}
		if topRole != "" {
			return fmt.Sprintf("I don't have your project details yet. Upload your resume and I can analyze how your work fits **%s** roles!", topRole)
		}
	}

	if containsAny(lower, summaryKeys) {
		if analysis != nil && analysis.Summary != "" {
			return "📋 **Resume Summary:**\n\n" + analysis.Summary
		}
		return "Please upload your resume first, and I'll generate a comprehensive summary for you."
	}

	if strings.Contains(lower, "resume") {
		return "📝 **Resume Tips:**\n" + bulletList(c.kb.Advice.Resume)
	}
	if strings.Contains(lower, "negotiat") {
		return "🤝 **Negotiation Tips:**\n" + bulletList(c.kb.Advice.Negotiation)
	}

	if hasRole {
		return fmt.Sprintf("I'm listening! You can ask me about **interview questions**, **salary**, or **learning path** for %s.", role.Name)
	}
	if topRole != "" {
		return fmt.Sprintf("I'm not sure specifically, but for **%s** roles, I can help with skills or interview prep. Try asking 'interview for %s'!", topRole, topRole)
	}
	return c.pick(c.kb.Personality.Fallback, defaultFallback)
}

// detectRole finds the role a message is about: a knowledge-base role name,
// then an alias, then a catalog role name, then (for messages referring to "this job" and the like) the
// knowledge-base role contained in the top match of the analysis.
func (c *Coach) detectRole(lower string, msgWords []string, topRole string) (types.RoleGuide, bool) {
	for _, r := range c.kb.Roles {
		if containsPhrase(msgWords, r.Name) {
			return r, true
		}
	}

	for _, a := range roleAliases {
		if containsPhrase(msgWords, a.alias) {
			if r, ok := c.lookupRole(a.role); ok {
				return r, true
			}
			return types.RoleGuide{Name: a.role}, true
		}
	}

	for _, name := range c.catalog.Names() {
		if containsPhrase(msgWords, name) {
			if r, ok := c.lookupRole(name); ok {
				return r, true
			}
		}
	}

	if topRole != "" && containsAny(lower, contextReferences) {
		top := strings.ToLower(topRole)
		for _, r := range c.kb.Roles {
			if strings.Contains(top, strings.ToLower(r.Name)) {
				return r, true
			}
		}
	}
	return types.RoleGuide{}, false
}

// lookupRole returns the knowledge-base guide for name, or a guide derived
// from the catalog definition.
func (c *Coach) lookupRole(name string) (types.RoleGuide, bool) {
	if r, ok := c.kb.Role(name); ok {
		return r, true
	}
	def, ok := c.catalog.Get(name)
	if !ok {
		return types.RoleGuide{}, false
	}
	return types.RoleGuide{
		Name:        def.Name,
		Description: def.Description,
		KeySkills:   def.RequiredSkills,
	}, true
}

func (c *Coach) interviewReply(role types.RoleGuide) string {
	questions := c.sample(role.InterviewQuestions, maxInterviewQuestions)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are some common interview questions for **%s** roles:\n\n", role.Name)
	for _, q := range questions {
		sb.WriteString("• " + q + "\n")
	}
	sb.WriteString("\n💡 *Tip: Use the STAR method to answer behavioral questions!*")
	return sb.String()
}

func generalInterviewReply(tips []string) string {
	return "For general interview prep, keep these in mind:\n\n" +
		bulletList(tips[:min(maxGeneralTips, len(tips))]) +
		"\n\n*Specify a job role (e.g., 'interview questions for DevOps') for more details!*"
}

func projectReply(projects []types.ProjectAnalysis) string {
	var sb strings.Builder
	sb.WriteString("Here is an analysis of your projects:\n\n")
	for _, p := range projects[:min(maxProjects, len(projects))] {
		fmt.Fprintf(&sb, "📂 **%s** (%s)\n", p.Name, p.Role)
		if len(p.Advantages) > 0 {
			fmt.Fprintf(&sb, "✅ **Strengths:** %s\n", strings.Join(p.Advantages[:min(2, len(p.Advantages))], ", "))
		}
		if len(p.Disadvantages) > 0 {
			fmt.Fprintf(&sb, "⚠️ **Improve:** %s\n", p.Disadvantages[0])
		}
		sb.WriteString("\n")
	}
	sb.WriteString("💡 *Tip: Ensure you highlight the impact (metrics) of these projects in your interviews!*")
	return sb.String()
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

func topRoleOf(analysis *types.AnalysisResult) string {
	if analysis == nil || len(analysis.JobMatches) == 0 {
		return ""
	}
	return analysis.JobMatches[0].JobTitle
}

// pick returns a random element of options, or def when there are none.
func (c *Coach) pick(options []string, def string) string {
	if len(options) == 0 {
		return def
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return options[c.rng.IntN(len(options))]
}

// sample returns up to n distinct elements of items in random order.
func (c *Coach) sample(items []string, n int) []string {
	n = min(n, len(items))
	c.mu.Lock()
	perm := c.rng.Perm(len(items))
	c.mu.Unlock()

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = items[perm[i]]
	}
	return out
}
