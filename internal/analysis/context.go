package analysis

import (
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/ranking"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Context holds the artifacts shared by every analysis. It is built once at
// startup and only read afterwards, so one Context may serve concurrent
// requests.
type Context struct {
	Taxonomy *types.Taxonomy
	Catalog  *types.RoleCatalog
	Matcher  *skills.Matcher
	Scorer   *ranking.Scorer
}

// NewContext compiles the matcher and scorer for the given artifacts. Any of
// them may be nil: a nil taxonomy or catalog behaves as empty and a nil model
// leaves the scorer rule-only.
func NewContext(tax *types.Taxonomy, cat *types.RoleCatalog, model *ranking.VectorModel, log *zap.Logger) *Context {
	if tax == nil {
		tax = &types.Taxonomy{}
	}
	if cat == nil {
		cat = types.NewRoleCatalog(nil)
	}
	return &Context{
		Taxonomy: tax,
		Catalog:  cat,
		Matcher:  skills.NewMatcher(tax),
		Scorer:   ranking.NewScorer(cat, model, log),
	}
}

// Sources names the artifact files. Empty taxonomy and catalog paths select
// the embedded defaults; an empty model path means no vector model.
type Sources struct {
	TaxonomyPath string
	CatalogPath  string
	ModelPath    string
}

// LoadContext loads the artifacts named by src. Load failures are logged and
// the affected artifact degrades to empty (or, for the model, to absent).
func LoadContext(src Sources, log *zap.Logger) *Context {
	log = logger.Component(log, "context")

	tax, err := catalog.LoadTaxonomy(src.TaxonomyPath)
	if err != nil {
		log.Error("loading skill taxonomy, continuing with an empty taxonomy",
			zap.String(logger.FieldPath, src.TaxonomyPath), zap.Error(err))
		tax = nil
	}

	cat, err := catalog.LoadRoleCatalog(src.CatalogPath)
	if err != nil {
		log.Error("loading role catalog, continuing with an empty catalog",
			zap.String(logger.FieldPath, src.CatalogPath), zap.Error(err))
		cat = nil
	}

	model, err := catalog.LoadModel(src.ModelPath)
	if err != nil {
		log.Warn("loading vector model, using rule-based matching only",
			zap.String(logger.FieldPath, src.ModelPath), zap.Error(err))
		model = nil
	}

	ctx := NewContext(tax, cat, model, log)
	log.Info("analysis context ready",
		zap.Int("categories", ctx.Taxonomy.Len()),
		zap.Int("skills", ctx.Matcher.Len()),
		zap.Int("roles", ctx.Catalog.Len()),
		zap.Stringer("scorer", ctx.Scorer.State()))
	return ctx
}
