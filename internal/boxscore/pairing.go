package boxscore

import "github.com/jakesingi/ncaamb-four-factors/internal/stats"

// PairOpponents sets each line's Opp* fields from the other line's base
// fields. The two lines must come from the same game table. The operation is
// symmetric: swapping a and b produces the mirrored result.
func PairOpponents(a, b *stats.TeamGameStats) {
	copyOpponent(a, b)
	copyOpponent(b, a)
}

func copyOpponent(dst, src *stats.TeamGameStats) {
	dst.OppPoints = src.Points
	dst.OppFieldGoalsMade = src.FieldGoalsMade
	dst.OppFieldGoalsAttempted = src.FieldGoalsAttempted
	dst.OppThreePointersMade = src.ThreePointersMade
	dst.OppThreePointersAttempted = src.ThreePointersAttempted
	dst.OppFreeThrowsMade = src.FreeThrowsMade
	dst.OppFreeThrowsAttempted = src.FreeThrowsAttempted
	dst.OppTurnovers = src.Turnovers
	dst.OppOffensiveRebounds = src.OffensiveRebounds
	dst.OppDefensiveRebounds = src.DefensiveRebounds
}
