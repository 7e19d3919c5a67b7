// Package roster caches per-núcleo roster snapshots behind a TTL window so
// repeated evaluations don't refetch the spreadsheet.
package roster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Projetos-PJ/Modelo-PCP/pkg/core/model"
)

// Source fetches the live roster of one núcleo from the external spreadsheet.
type Source interface {
	FetchMembers(ctx context.Context, nucleo string) ([]model.Member, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, nucleo string) ([]model.Member, error)

func (f SourceFunc) FetchMembers(ctx context.Context, nucleo string) ([]model.Member, error) {
	return f(ctx, nucleo)
}

type entry struct {
	members   []model.Member
	fetchedAt time.Time
}

// Store serves roster snapshots, refreshing each núcleo from the source when
// its cached copy is older than the TTL.
type Store struct {
	source Source
	ttl    time.Duration
	logger *zap.Logger

	mu    sync.Mutex
	cache map[string]entry

	// now is swappable for tests
	now func() time.Time
}

// NewStore creates a roster store with the given cache window.
func NewStore(source Source, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		source: source,
		ttl:    ttl,
		logger: logger,
		cache:  make(map[string]entry),
		now:    time.Now,
	}
}

// Members returns the roster snapshot of a núcleo. The returned slice is a
// copy: evaluations attach ephemeral columns and must never write back into
// the shared snapshot.
func (s *Store) Members(ctx context.Context, nucleo string) ([]model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, ok := s.cache[nucleo]
	if ok && s.now().Sub(cached.fetchedAt) < s.ttl {
		s.logger.Debug("Roster cache hit",
			zap.String("nucleo", nucleo),
			zap.Time("fetched_at", cached.fetchedAt))
		return copyMembers(cached.members), nil
	}

	s.logger.Debug("Roster cache miss, fetching from source", zap.String("nucleo", nucleo))
	members, err := s.source.FetchMembers(ctx, nucleo)
	if err != nil {
		// Serve a stale snapshot rather than failing when the source is down.
		if ok {
			s.logger.Warn("Roster refresh failed, serving stale snapshot",
				zap.String("nucleo", nucleo),
				zap.Error(err))
			return copyMembers(cached.members), nil
		}
		return nil, fmt.Errorf("failed to fetch roster for %s: %w", nucleo, err)
	}

	s.cache[nucleo] = entry{members: members, fetchedAt: s.now()}
	s.logger.Info("Roster snapshot refreshed",
		zap.String("nucleo", nucleo),
		zap.Int("members", len(members)))

	return copyMembers(members), nil
}

// Invalidate drops the cached snapshot of a núcleo, forcing the next read to
// hit the source.
func (s *Store) Invalidate(nucleo string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, nucleo)
}

func copyMembers(members []model.Member) []model.Member {
	out := make([]model.Member, len(members))
	copy(out, members)
	// The struct copy shares the satisfaction map; clone it so callers never
	// write into the cached snapshot.
	for i := range out {
		if out[i].SatisfacaoPortfolio == nil {
			continue
		}
		cloned := make(map[string]model.OptFloat, len(out[i].SatisfacaoPortfolio))
		for k, v := range out[i].SatisfacaoPortfolio {
			cloned[k] = v
		}
		out[i].SatisfacaoPortfolio = cloned
	}
	return out
}
