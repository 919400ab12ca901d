package season

import "github.com/jakesingi/ncaamb-four-factors/internal/stats"

// Possession estimate coefficient for free throw attempts, the standard Four
// Factors weight.
const ftaPossessionWeight = 0.44

// ComputeFourFactors derives the eight season ratios from aggregated totals:
//
//	EFG  = (FGM + 0.5*3PM) / FGA
//	TPP  = TO / (FGA - OR + TO + 0.44*FTA)
//	ORP  = OR / (OR + opp DR)
//	FTR  = FTA / FGA
//
// and the same four from the opponent's side. Any zero denominator yields an
// UndefinedFactorError instead of an Inf or NaN.
func ComputeFourFactors(t *stats.TeamSeasonTotals) (*stats.FourFactors, error) {
	if t.FieldGoalsAttempted == 0 {
		return nil, &UndefinedFactorError{Team: t.Team, Factor: "effective FG%", Denominator: "FGA"}
	}
	if t.OppFieldGoalsAttempted == 0 {
		return nil, &UndefinedFactorError{Team: t.Team, Factor: "opponent effective FG%", Denominator: "opponent FGA"}
	}

	offPossessions := float64(t.FieldGoalsAttempted-t.OffensiveRebounds+t.Turnovers) +
		ftaPossessionWeight*float64(t.FreeThrowsAttempted)
	if offPossessions == 0 {
		return nil, &UndefinedFactorError{Team: t.Team, Factor: "turnover%", Denominator: "estimated possessions"}
	}
	defPossessions := float64(t.OppFieldGoalsAttempted-t.OppOffensiveRebounds+t.OppTurnovers) +
		ftaPossessionWeight*float64(t.OppFreeThrowsAttempted)
	if defPossessions == 0 {
		return nil, &UndefinedFactorError{Team: t.Team, Factor: "opponent turnover%", Denominator: "opponent estimated possessions"}
	}

	orbChances := t.OffensiveRebounds + t.OppDefensiveRebounds
	if orbChances == 0 {
		return nil, &UndefinedFactorError{Team: t.Team, Factor: "offensive rebound%", Denominator: "OR + opponent DR"}
	}
	drbChances := t.DefensiveRebounds + t.OppOffensiveRebounds
	if drbChances == 0 {
		return nil, &UndefinedFactorError{Team: t.Team, Factor: "defensive rebound%", Denominator: "DR + opponent OR"}
	}

	return &stats.FourFactors{
		EffectiveFGPct: (float64(t.FieldGoalsMade) + 0.5*float64(t.ThreePointersMade)) /
			float64(t.FieldGoalsAttempted),
		TurnoverPct:   float64(t.Turnovers) / offPossessions,
		OffReboundPct: float64(t.OffensiveRebounds) / float64(orbChances),
		FreeThrowRate: float64(t.FreeThrowsAttempted) / float64(t.FieldGoalsAttempted),

		OppEffectiveFGPct: (float64(t.OppFieldGoalsMade) + 0.5*float64(t.OppThreePointersMade)) /
			float64(t.OppFieldGoalsAttempted),
		OppTurnoverPct:   float64(t.OppTurnovers) / defPossessions,
		DefReboundPct:    float64(t.DefensiveRebounds) / float64(drbChances),
		OppFreeThrowRate: float64(t.OppFreeThrowsAttempted) / float64(t.OppFieldGoalsAttempted),
	}, nil
}
