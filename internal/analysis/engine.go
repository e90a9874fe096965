package analysis

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/ranking"
	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultTopMatches is the number of role matches kept in a result.
const DefaultTopMatches = 5

// Engine runs analyses against a shared Context.
type Engine struct {
	ctx    *Context
	topN   int
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTopMatches sets how many role matches a result keeps. n <= 0 keeps all.
func WithTopMatches(n int) Option {
	return func(e *Engine) { e.topN = n }
}

// WithLogger sets the engine logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine returns an engine over ctx. A nil ctx behaves as an empty context.
func NewEngine(ctx *Context, opts ...Option) *Engine {
	if ctx == nil {
		ctx = NewContext(nil, nil, nil, nil)
	}
	e := &Engine{ctx: ctx, topN: DefaultTopMatches}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logger.Component(e.logger, "engine")
	return e
}

// Context returns the shared artifacts of the engine.
func (e *Engine) Context() *Context {
	return e.ctx
}

// Analyze extracts skills, ranks roles and reviews the projects and
// internships of a résumé. Text shorter than types.MinResumeLength after
// trimming yields an empty result.
func (e *Engine) Analyze(text, targetRole string) *types.AnalysisResult {
	text = ingestion.CleanText(text)
	if len(strings.TrimSpace(text)) < types.MinResumeLength {
		return emptyResult()
	}

	extraction := e.ctx.Matcher.Extract(text)
	userSkills := extraction.Flat

	matches := e.ctx.Scorer.Match(userSkills, strings.TrimSpace(targetRole))
	top := ranking.Top(matches, e.topN)

	result := &types.AnalysisResult{
		Skills:             userSkills,
		CategorizedSkills:  extraction.Categorized,
		JobMatches:         top,
		Education:          Education(text),
		ProjectAnalysis:    AnalyzeProjects(sections.ExtractProjects(text), userSkills, e.ctx.Catalog),
		InternshipAnalysis: AnalyzeInternships(sections.ExtractInternships(text), userSkills),
		Summary:            Summary(userSkills, top),
		Recommendations:    Recommendations(top, userSkills),
	}

	e.logger.Debug("analysis complete",
		zap.Int("skills", len(result.Skills)),
		zap.Int("matches", len(result.JobMatches)),
		zap.Int("projects", len(result.ProjectAnalysis)),
		zap.Int("internships", len(result.InternshipAnalysis)))

	return result
}

func emptyResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		Skills:             []string{},
		CategorizedSkills:  map[string][]string{},
		JobMatches:         []types.MatchResult{},
		Education:          NoEducation,
		ProjectAnalysis:    []types.ProjectAnalysis{},
		InternshipAnalysis: []types.InternshipAnalysis{},
		Summary:            Summary(nil, nil),
		Recommendations:    []string{},
	}
}
