package boxscore

import (
	"testing"

	"github.com/jakesingi/ncaamb-four-factors/internal/stats"
)

func gameLine(team string, seed int) *stats.TeamGameStats {
	return &stats.TeamGameStats{
		Team:                   team,
		GameID:                 "g1",
		Points:                 70 + seed,
		FieldGoalsMade:         20 + seed,
		FieldGoalsAttempted:    50 + seed,
		ThreePointersMade:      5 + seed,
		ThreePointersAttempted: 15 + seed,
		FreeThrowsMade:         10 + seed,
		FreeThrowsAttempted:    14 + seed,
		Turnovers:              8 + seed,
		OffensiveRebounds:      7 + seed,
		DefensiveRebounds:      22 + seed,
	}
}

func assertMirrored(t *testing.T, line, opp *stats.TeamGameStats) {
	t.Helper()
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"OppPoints", line.OppPoints, opp.Points},
		{"OppFieldGoalsMade", line.OppFieldGoalsMade, opp.FieldGoalsMade},
		{"OppFieldGoalsAttempted", line.OppFieldGoalsAttempted, opp.FieldGoalsAttempted},
		{"OppThreePointersMade", line.OppThreePointersMade, opp.ThreePointersMade},
		{"OppThreePointersAttempted", line.OppThreePointersAttempted, opp.ThreePointersAttempted},
		{"OppFreeThrowsMade", line.OppFreeThrowsMade, opp.FreeThrowsMade},
		{"OppFreeThrowsAttempted", line.OppFreeThrowsAttempted, opp.FreeThrowsAttempted},
		{"OppTurnovers", line.OppTurnovers, opp.Turnovers},
		{"OppOffensiveRebounds", line.OppOffensiveRebounds, opp.OffensiveRebounds},
		{"OppDefensiveRebounds", line.OppDefensiveRebounds, opp.DefensiveRebounds},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: %s = %d, want %d", line.Team, c.name, c.got, c.want)
		}
	}
}

func TestPairOpponents(t *testing.T) {
	a := gameLine("california", 0)
	b := gameLine("pacific", 3)

	PairOpponents(a, b)

	assertMirrored(t, a, b)
	assertMirrored(t, b, a)
}

// Pairing must not depend on which record comes first.
func TestPairOpponentsSymmetric(t *testing.T) {
	a1, b1 := gameLine("california", 0), gameLine("pacific", 3)
	a2, b2 := gameLine("california", 0), gameLine("pacific", 3)

	PairOpponents(a1, b1)
	PairOpponents(b2, a2)

	if *a1 != *a2 {
		t.Errorf("pairing order changed california's record:\n%+v\n%+v", a1, a2)
	}
	if *b1 != *b2 {
		t.Errorf("pairing order changed pacific's record:\n%+v\n%+v", b1, b2)
	}
}
