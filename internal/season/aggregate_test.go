package season

import (
	"testing"

	"github.com/jakesingi/ncaamb-four-factors/internal/stats"
)

func testLine(gameID string, seed int) *stats.TeamGameStats {
	return &stats.TeamGameStats{
		Team:                   "california",
		GameID:                 gameID,
		Points:                 60 + seed,
		FieldGoalsMade:         20 + seed,
		FieldGoalsAttempted:    55 + seed,
		ThreePointersMade:      6 + seed,
		ThreePointersAttempted: 18 + seed,
		FreeThrowsMade:         14 + seed,
		FreeThrowsAttempted:    19 + seed,
		Turnovers:              12 + seed,
		OffensiveRebounds:      10 + seed,
		DefensiveRebounds:      23 + seed,

		OppPoints:                 58 + seed,
		OppFieldGoalsMade:         21 + seed,
		OppFieldGoalsAttempted:    54 + seed,
		OppThreePointersMade:      4 + seed,
		OppThreePointersAttempted: 13 + seed,
		OppFreeThrowsMade:         12 + seed,
		OppFreeThrowsAttempted:    16 + seed,
		OppTurnovers:              14 + seed,
		OppOffensiveRebounds:      8 + seed,
		OppDefensiveRebounds:      25 + seed,
	}
}

func TestAggregate(t *testing.T) {
	games := []*stats.TeamGameStats{testLine("g1", 0), testLine("g2", 5), testLine("g3", 2)}

	totals := Aggregate("california", games)

	if totals.Team != "california" {
		t.Errorf("Team = %q, want california", totals.Team)
	}
	if totals.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", totals.GamesPlayed)
	}
	if want := 20 + 25 + 22; totals.FieldGoalsMade != want {
		t.Errorf("FieldGoalsMade = %d, want %d", totals.FieldGoalsMade, want)
	}
	if want := 58 + 63 + 60; totals.OppPoints != want {
		t.Errorf("OppPoints = %d, want %d", totals.OppPoints, want)
	}
}

// Summation uses only addition, so every permutation of the game list must
// produce identical totals.
func TestAggregateOrderInvariant(t *testing.T) {
	games := []*stats.TeamGameStats{testLine("g1", 0), testLine("g2", 5), testLine("g3", 2), testLine("g4", 9)}

	want := *Aggregate("california", games)

	permutations := [][]int{
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}
	for _, perm := range permutations {
		shuffled := make([]*stats.TeamGameStats, len(games))
		for i, j := range perm {
			shuffled[i] = games[j]
		}
		if got := *Aggregate("california", shuffled); got != want {
			t.Errorf("ordering %v changed totals:\n got %+v\nwant %+v", perm, got, want)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate("california", nil)
	if totals.GamesPlayed != 0 || totals.FieldGoalsAttempted != 0 {
		t.Errorf("empty aggregate = %+v, want zero totals", totals)
	}
}
