package season

import "github.com/jakesingi/ncaamb-four-factors/internal/stats"

// CountWins tallies games where the team outscored its opponent. Scores come
// from the already-parsed game lines, so no second fetch is needed. An equal
// score is a TieGameError.
func CountWins(team string, games []*stats.TeamGameStats) (*stats.WinRecord, error) {
	record := &stats.WinRecord{Team: team}
	for _, g := range games {
		if g.Points == g.OppPoints {
			return nil, &TieGameError{Team: team, GameID: g.GameID, Score: g.Points}
		}
		if g.Points > g.OppPoints {
			record.Wins++
		}
	}
	return record, nil
}
