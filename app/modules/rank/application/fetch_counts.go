package rankservice

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	"github.com/osu-rank-club/rankbot/app/shared/sharedtypes"
)

// fetchCounts gathers the regime's rank counts for one player, one threshold
// per request, fanned out concurrently. Individual counts are cached under
// regime:osuID:threshold so a re-submission inside the TTL costs no upstream
// calls; failures are never cached.
func (s *RankService) fetchCounts(ctx context.Context, regime rankdomain.Regime, osuID sharedtypes.OsuID, username string) ([]int, error) {
	provider, ok := s.counters[regime]
	if !ok {
		return nil, fmt.Errorf("no rank count provider for regime %s", regime)
	}

	thresholds := regime.Thresholds()
	counts := make([]int, len(thresholds))

	g, ctx := errgroup.WithContext(ctx)
	for i, threshold := range thresholds {
		key := countCacheKey(regime, osuID, threshold)
		if cached, ok := s.countsCache.Get(ctx, key); ok {
			counts[i] = cached
			continue
		}
		g.Go(func() error {
			count, err := provider.CountAtRank(ctx, username, threshold)
			if err != nil {
				return fmt.Errorf("rank count at threshold %d: %w", threshold, err)
			}
			counts[i] = count
			s.countsCache.Set(ctx, key, count)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func countCacheKey(regime rankdomain.Regime, osuID sharedtypes.OsuID, threshold int) string {
	return fmt.Sprintf("%s:%d:%d", regime, osuID, threshold)
}
