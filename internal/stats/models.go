package stats

// TeamGameStats holds one team's normalized box score line for a single game.
// The Opp* fields mirror the other participant's base fields and are populated
// by the pairing step, not by the parser.
type TeamGameStats struct {
	Team   string `json:"team"`
	GameID string `json:"game_id"`

	Points                 int `json:"points"`
	FieldGoalsMade         int `json:"field_goals_made"`
	FieldGoalsAttempted    int `json:"field_goals_attempted"`
	ThreePointersMade      int `json:"three_pointers_made"`
	ThreePointersAttempted int `json:"three_pointers_attempted"`
	FreeThrowsMade         int `json:"free_throws_made"`
	FreeThrowsAttempted    int `json:"free_throws_attempted"`
	Turnovers              int `json:"turnovers"`
	OffensiveRebounds      int `json:"offensive_rebounds"`
	DefensiveRebounds      int `json:"defensive_rebounds"`

	OppPoints                 int `json:"opp_points"`
	OppFieldGoalsMade         int `json:"opp_field_goals_made"`
	OppFieldGoalsAttempted    int `json:"opp_field_goals_attempted"`
	OppThreePointersMade      int `json:"opp_three_pointers_made"`
	OppThreePointersAttempted int `json:"opp_three_pointers_attempted"`
	OppFreeThrowsMade         int `json:"opp_free_throws_made"`
	OppFreeThrowsAttempted    int `json:"opp_free_throws_attempted"`
	OppTurnovers              int `json:"opp_turnovers"`
	OppOffensiveRebounds      int `json:"opp_offensive_rebounds"`
	OppDefensiveRebounds      int `json:"opp_defensive_rebounds"`
}

// TeamSeasonTotals is the field-wise sum of a team's TeamGameStats across its
// assigned games.
type TeamSeasonTotals struct {
	Team        string `json:"team"`
	GamesPlayed int    `json:"games_played"`

	Points                 int `json:"points"`
	FieldGoalsMade         int `json:"field_goals_made"`
	FieldGoalsAttempted    int `json:"field_goals_attempted"`
	ThreePointersMade      int `json:"three_pointers_made"`
	ThreePointersAttempted int `json:"three_pointers_attempted"`
	FreeThrowsMade         int `json:"free_throws_made"`
	FreeThrowsAttempted    int `json:"free_throws_attempted"`
	Turnovers              int `json:"turnovers"`
	OffensiveRebounds      int `json:"offensive_rebounds"`
	DefensiveRebounds      int `json:"defensive_rebounds"`

	OppPoints                 int `json:"opp_points"`
	OppFieldGoalsMade         int `json:"opp_field_goals_made"`
	OppFieldGoalsAttempted    int `json:"opp_field_goals_attempted"`
	OppThreePointersMade      int `json:"opp_three_pointers_made"`
	OppThreePointersAttempted int `json:"opp_three_pointers_attempted"`
	OppFreeThrowsMade         int `json:"opp_free_throws_made"`
	OppFreeThrowsAttempted    int `json:"opp_free_throws_attempted"`
	OppTurnovers              int `json:"opp_turnovers"`
	OppOffensiveRebounds      int `json:"opp_offensive_rebounds"`
	OppDefensiveRebounds      int `json:"opp_defensive_rebounds"`
}

// Add accumulates one game line into the totals. Only the named numeric fields
// are summed so that identifier columns can never leak into an aggregate.
func (t *TeamSeasonTotals) Add(g *TeamGameStats) {
	t.GamesPlayed++

	t.Points += g.Points
	t.FieldGoalsMade += g.FieldGoalsMade
	t.FieldGoalsAttempted += g.FieldGoalsAttempted
	t.ThreePointersMade += g.ThreePointersMade
	t.ThreePointersAttempted += g.ThreePointersAttempted
	t.FreeThrowsMade += g.FreeThrowsMade
	t.FreeThrowsAttempted += g.FreeThrowsAttempted
	t.Turnovers += g.Turnovers
	t.OffensiveRebounds += g.OffensiveRebounds
	t.DefensiveRebounds += g.DefensiveRebounds

	t.OppPoints += g.OppPoints
	t.OppFieldGoalsMade += g.OppFieldGoalsMade
	t.OppFieldGoalsAttempted += g.OppFieldGoalsAttempted
	t.OppThreePointersMade += g.OppThreePointersMade
	t.OppThreePointersAttempted += g.OppThreePointersAttempted
	t.OppFreeThrowsMade += g.OppFreeThrowsMade
	t.OppFreeThrowsAttempted += g.OppFreeThrowsAttempted
	t.OppTurnovers += g.OppTurnovers
	t.OppOffensiveRebounds += g.OppOffensiveRebounds
	t.OppDefensiveRebounds += g.OppDefensiveRebounds
}

// FourFactors holds the eight derived season ratios for one team, the four
// offensive factors and their defensive counterparts.
type FourFactors struct {
	EffectiveFGPct    float64 `json:"effective_fg_pct"`
	TurnoverPct       float64 `json:"turnover_pct"`
	OffReboundPct     float64 `json:"off_rebound_pct"`
	FreeThrowRate     float64 `json:"free_throw_rate"`
	OppEffectiveFGPct float64 `json:"opp_effective_fg_pct"`
	OppTurnoverPct    float64 `json:"opp_turnover_pct"`
	DefReboundPct     float64 `json:"def_rebound_pct"`
	OppFreeThrowRate  float64 `json:"opp_free_throw_rate"`
}

// WinRecord is a team's win count over its assigned games.
type WinRecord struct {
	Team string `json:"team"`
	Wins int    `json:"wins"`
}
