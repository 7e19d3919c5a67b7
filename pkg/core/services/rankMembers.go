package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Projetos-PJ/Modelo-PCP/internal/config"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/scoring"
)

// RosterStore provides roster snapshots to the services.
type RosterStore interface {
	Members(ctx context.Context, nucleo string) ([]model.Member, error)
}

// RankMembersParams is the request-scoped evaluation context: each choice of
// núcleo, portfolio, start date and weights is a fresh evaluation.
type RankMembersParams struct {
	Nucleo            string
	Portfolio         string
	InicioNovoProjeto time.Time
	Weights           scoring.Weights

	// Analistas restricts the displayed cohort; empty means everyone.
	Analistas []string
}

// RankMembersResult contains the ranked cohort plus the synthetic
// núcleo-average reference row.
type RankMembersResult struct {
	EvaluationID string
	Nucleo       string
	Portfolio    string

	// Weights actually applied, after renormalization.
	Weights scoring.Weights

	// WeightsAdjusted is true when the supplied pair did not sum to 1.0 and
	// was renormalized; callers surface this as a warning.
	WeightsAdjusted bool

	Rows  []scoring.ScoredMember
	Media scoring.ScoredMember
}

// RankMembers scores every member of a núcleo against a new-project context
// and returns them ranked by Nota Final. An empty cohort is a valid result,
// not an error.
func RankMembers(
	ctx context.Context,
	store RosterStore,
	cfg *config.Config,
	logger *zap.Logger,
	params RankMembersParams,
) (*RankMembersResult, error) {
	logger.Debug("Starting rankMembers",
		zap.String("nucleo", params.Nucleo),
		zap.String("portfolio", params.Portfolio),
		zap.Time("inicio_novo_projeto", params.InicioNovoProjeto))

	if err := params.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}

	weights, adjusted := params.Weights.Normalize()
	if adjusted {
		logger.Warn("Weights do not sum to 1.0, renormalizing",
			zap.Float64("peso_disponibilidade", weights.Disponibilidade),
			zap.Float64("peso_afinidade", weights.Afinidade))
	}

	members, err := store.Members(ctx, params.Nucleo)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	logger.Debug("Loaded roster snapshot", zap.Int("members", len(members)))

	if params.Portfolio != "" && !isKnownPortfolio(cfg, params.Nucleo, params.Portfolio) {
		// Affinity degrades to the neutral default for unknown portfolios.
		logger.Warn("Portfolio not configured for núcleo",
			zap.String("nucleo", params.Nucleo),
			zap.String("portfolio", params.Portfolio))
	}

	scored := scoring.Rank(members, scoring.EvaluationParams{
		InicioNovoProjeto: params.InicioNovoProjeto,
		Portfolio:         params.Portfolio,
		Weights:           weights,
		Policy:            cfg.Policy(),
	})

	rows := filterAnalistas(scored, params.Analistas)

	result := &RankMembersResult{
		EvaluationID:    uuid.NewString(),
		Nucleo:          params.Nucleo,
		Portfolio:       params.Portfolio,
		Weights:         weights,
		WeightsAdjusted: adjusted,
		Rows:            rows,
		Media:           scoring.NucleoAverage(rows),
	}

	logger.Info("Ranking evaluation complete",
		zap.String("evaluation_id", result.EvaluationID),
		zap.String("nucleo", params.Nucleo),
		zap.Int("members_ranked", len(rows)))

	return result, nil
}

func isKnownPortfolio(cfg *config.Config, nucleo, portfolio string) bool {
	for _, p := range cfg.PortfoliosFor(nucleo) {
		if p == portfolio {
			return true
		}
	}
	return false
}

// filterAnalistas restricts the scored cohort to the selected analysts,
// preserving rank order. An empty selection keeps everyone.
func filterAnalistas(scored []scoring.ScoredMember, analistas []string) []scoring.ScoredMember {
	if len(analistas) == 0 {
		return scored
	}

	selected := make(map[string]bool, len(analistas))
	for _, a := range analistas {
		selected[a] = true
	}

	filtered := make([]scoring.ScoredMember, 0, len(analistas))
	for _, s := range scored {
		if selected[s.Member.Membro] {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
