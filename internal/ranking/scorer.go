package ranking

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// State is the scorer mode. The only transition is VectorEnabled to RuleOnly.
type State int32

const (
	// StateVectorEnabled attempts vector similarity before rule-based scoring.
	StateVectorEnabled State = iota
	// StateRuleOnly uses rule-based scoring alone for the rest of the process.
	StateRuleOnly
)

func (s State) String() string {
	switch s {
	case StateVectorEnabled:
		return "vector_enabled"
	case StateRuleOnly:
		return "rule_only"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Scorer ranks the catalog against a skill list. The rule-based ranking is
// always computed and decides the order; when a vector model is available its
// similarity is attached to each match as VectorScore. The first vector
// failure switches the scorer to StateRuleOnly permanently.
type Scorer struct {
	catalog *types.RoleCatalog
	model   *VectorModel
	logger  *zap.Logger
	state   atomic.Int32
}

// NewScorer returns a scorer over catalog. A nil model starts in StateRuleOnly.
func NewScorer(catalog *types.RoleCatalog, model *VectorModel, log *zap.Logger) *Scorer {
	s := &Scorer{
		catalog: catalog,
		model:   model,
		logger:  logger.Component(log, "scorer"),
	}
	if model == nil {
		s.state.Store(int32(StateRuleOnly))
	}
	return s
}

// State returns the current mode.
func (s *Scorer) State() State {
	return State(s.state.Load())
}

// Disable moves the scorer to StateRuleOnly. It reports whether this call made
// the transition.
func (s *Scorer) Disable(cause error) bool {
	if !s.state.CompareAndSwap(int32(StateVectorEnabled), int32(StateRuleOnly)) {
		return false
	}
	s.logger.Warn("vector scoring disabled, using rule-based matching", zap.Error(cause))
	return true
}

// Match ranks all roles for userSkills and promotes targetRole, if any, to the front.
func (s *Scorer) Match(userSkills []string, targetRole string) []types.MatchResult {
	matches := RankRoles(s.catalog, skills.NewSet(userSkills...))

	if s.State() == StateVectorEnabled && len(userSkills) > 0 {
		scores, err := s.vectorScores(userSkills)
		if err != nil {
			s.Disable(err)
		} else {
			for i := range matches {
				if v, ok := scores[matches[i].JobTitle]; ok {
					matches[i].VectorScore = &v
				}
			}
		}
	}

	return PrioritizeTarget(matches, targetRole)
}

// vectorScores returns the similarity, as a percentage, of every catalog role.
func (s *Scorer) vectorScores(userSkills []string) (scores map[string]float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ModelError{Message: fmt.Sprintf("similarity panicked: %v", r)}
		}
	}()

	sims, err := s.model.Similarities(strings.Join(userSkills, " "))
	if err != nil {
		return nil, err
	}

	byName := make(map[string]float64, len(sims))
	for i, name := range s.model.RoleNames {
		byName[name] = roundTenth(sims[i] * 100)
	}

	for _, name := range s.catalog.Names() {
		if _, ok := byName[name]; !ok {
			return nil, &ModelError{Message: fmt.Sprintf("model does not cover role %q", name)}
		}
	}
	return byName, nil
}
