package season

import "github.com/jakesingi/ncaamb-four-factors/internal/stats"

// Aggregate sums a team's per-game lines into season totals. Only addition is
// involved, so the result is invariant under any reordering of games.
func Aggregate(team string, games []*stats.TeamGameStats) *stats.TeamSeasonTotals {
	totals := &stats.TeamSeasonTotals{Team: team}
	for _, g := range games {
		totals.Add(g)
	}
	return totals
}
