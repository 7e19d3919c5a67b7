package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Projetos-PJ/Modelo-PCP/internal/config"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/scoring"
	"github.com/Projetos-PJ/Modelo-PCP/pkg/utils/texto"
)

// ListMembersParams filters the consolidated roster view. Zero values mean
// "no filter".
type ListMembersParams struct {
	Nucleo string
	Cargo  string
	Membro string

	// Alocacoes is a bucket label ("Desalocado" ... "4+ Alocações").
	Alocacoes string

	// Now anchors the end-date-aware counting policy; zero means time.Now().
	Now time.Time
}

// MemberAllocation is one consolidated-view row: a member plus their
// allocation count and display bucket.
type MemberAllocation struct {
	Member    model.Member
	Alocacoes int
	Bucket    string
}

// ListMembersResult contains the filtered consolidated roster.
type ListMembersResult struct {
	Nucleo string
	Rows   []MemberAllocation
}

// ListMembers builds the consolidated base view of a núcleo: every member
// with their allocation count, optionally filtered by cargo, member name and
// allocation bucket. An empty result is a notice for the caller, not an error.
func ListMembers(
	ctx context.Context,
	store RosterStore,
	cfg *config.Config,
	logger *zap.Logger,
	params ListMembersParams,
) (*ListMembersResult, error) {
	logger.Debug("Starting listMembers",
		zap.String("nucleo", params.Nucleo),
		zap.String("cargo", params.Cargo),
		zap.String("membro", params.Membro),
		zap.String("alocacoes", params.Alocacoes))

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	var bucketCount int
	var bucketOpenEnded bool
	if params.Alocacoes != "" {
		var ok bool
		bucketCount, bucketOpenEnded, ok = scoring.BucketToCount(params.Alocacoes)
		if !ok {
			return nil, fmt.Errorf("unknown allocation bucket %q", params.Alocacoes)
		}
	}

	members, err := store.Members(ctx, params.Nucleo)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	policy := cfg.Policy()
	rows := make([]MemberAllocation, 0, len(members))
	for _, m := range members {
		if params.Membro != "" && m.Membro != params.Membro {
			continue
		}
		if params.Cargo != "" && !texto.Igual(m.CargoNucleo, params.Cargo) {
			continue
		}

		count := scoring.Allocations(&m, now, policy)
		if params.Alocacoes != "" {
			// The "4+" bucket matches anything at the clamp; others are exact.
			if bucketOpenEnded && count < scoring.MaxAlocacoes {
				continue
			}
			if !bucketOpenEnded && count != bucketCount {
				continue
			}
		}

		rows = append(rows, MemberAllocation{
			Member:    m,
			Alocacoes: count,
			Bucket:    scoring.AllocationBucket(count),
		})
	}

	logger.Info("Consolidated view built",
		zap.String("nucleo", params.Nucleo),
		zap.Int("members", len(rows)))

	return &ListMembersResult{
		Nucleo: params.Nucleo,
		Rows:   rows,
	}, nil
}
