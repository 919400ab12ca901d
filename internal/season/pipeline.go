package season

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jakesingi/ncaamb-four-factors/internal/boxscore"
	"github.com/jakesingi/ncaamb-four-factors/internal/stats"
)

// TableProvider supplies the raw box score table for one game. Fetch failures
// should be returned as (or wrapped in) a *RetrievalError.
type TableProvider interface {
	FetchGameTable(ctx context.Context, gameID string) (*boxscore.GameTable, error)
}

// GameErrorPolicy decides what happens when a single game cannot be retrieved
// or parsed. The choice is always explicit; a bad game is never dropped
// silently.
type GameErrorPolicy int

const (
	// AbortOnGameError stops the whole run on the first bad game.
	AbortOnGameError GameErrorPolicy = iota
	// SkipBadGames excludes the game from that team's aggregation and logs it.
	SkipBadGames
)

// TeamSummary is one output row of a pipeline run.
type TeamSummary struct {
	Team    string                  `json:"team"`
	Totals  *stats.TeamSeasonTotals `json:"totals"`
	Factors *stats.FourFactors      `json:"factors,omitempty"`
	Wins    int                     `json:"wins"`

	// FactorsErr is set when a factor denominator was zero; such a team is
	// reported but must not enter regression input.
	FactorsErr error `json:"-"`

	// SkippedGames lists game IDs excluded under SkipBadGames.
	SkippedGames []string `json:"skipped_games,omitempty"`
}

// Pipeline runs the full batch: fetch, parse, pair, aggregate, factors, wins
// for every team in a roster.
type Pipeline struct {
	provider TableProvider
	policy   GameErrorPolicy

	// Games shared between two teams' lists are fetched and parsed once.
	tables map[string]*boxscore.GameTable
}

// NewPipeline builds a pipeline over the given provider.
func NewPipeline(provider TableProvider, policy GameErrorPolicy) *Pipeline {
	return &Pipeline{
		provider: provider,
		policy:   policy,
		tables:   make(map[string]*boxscore.GameTable),
	}
}

// Run processes every team in the roster and returns one summary per team,
// ordered by team label. The roster maps team label to that team's game IDs;
// duplicate IDs within a list are ignored.
func (p *Pipeline) Run(ctx context.Context, roster map[string][]string) ([]TeamSummary, error) {
	teams := make([]string, 0, len(roster))
	for team := range roster {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	summaries := make([]TeamSummary, 0, len(teams))
	for idx, team := range teams {
		log.Printf("[pipeline] Processing team %s (%d/%d, %d games)", team, idx+1, len(teams), len(roster[team]))

		summary, err := p.runTeam(ctx, team, roster[team])
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", team, err)
		}
		summaries = append(summaries, *summary)
	}

	return summaries, nil
}

func (p *Pipeline) runTeam(ctx context.Context, team string, gameIDs []string) (*TeamSummary, error) {
	summary := &TeamSummary{Team: team}

	var lines []*stats.TeamGameStats
	for _, gameID := range dedupe(gameIDs) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := p.teamLine(ctx, team, gameID)
		if err != nil {
			if p.policy == SkipBadGames {
				log.Printf("[pipeline] Skipping game %s for %s: %v", gameID, team, err)
				summary.SkippedGames = append(summary.SkippedGames, gameID)
				continue
			}
			return nil, err
		}
		lines = append(lines, line)
	}

	summary.Totals = Aggregate(team, lines)

	record, err := CountWins(team, lines)
	if err != nil {
		return nil, err
	}
	summary.Wins = record.Wins

	factors, err := ComputeFourFactors(summary.Totals)
	if err != nil {
		var undefined *UndefinedFactorError
		if !errors.As(err, &undefined) {
			return nil, err
		}
		log.Printf("[pipeline] Excluding %s from regression input: %v", team, err)
		summary.FactorsErr = err
	}
	summary.Factors = factors

	return summary, nil
}

// teamLine fetches, parses, and pairs one game, returning this team's side.
func (p *Pipeline) teamLine(ctx context.Context, team, gameID string) (*stats.TeamGameStats, error) {
	table, ok := p.tables[gameID]
	if !ok {
		var err error
		table, err = p.provider.FetchGameTable(ctx, gameID)
		if err != nil {
			var retrieval *RetrievalError
			if !errors.As(err, &retrieval) {
				err = &RetrievalError{GameID: gameID, Err: err}
			}
			return nil, err
		}
		p.tables[gameID] = table
	}

	pair, err := boxscore.ParseGameTable(table)
	if err != nil {
		return nil, err
	}
	boxscore.PairOpponents(pair[0], pair[1])

	for _, line := range pair {
		if strings.EqualFold(line.Team, team) {
			return line, nil
		}
	}

	return nil, &boxscore.MalformedTableError{
		GameID: gameID,
		Reason: fmt.Sprintf("team %s not among participants %s, %s", team, pair[0].Team, pair[1].Team),
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
