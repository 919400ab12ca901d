package boxscore

import (
	"strconv"
	"strings"

	"github.com/jakesingi/ncaamb-four-factors/internal/stats"
)

// ParseGameTable converts one raw game table into two TeamGameStats, one per
// column, in column order. The Opp* fields are left zero; PairOpponents fills
// them in. A table without exactly two columns is a MalformedTableError.
func ParseGameTable(t *GameTable) ([2]*stats.TeamGameStats, error) {
	var out [2]*stats.TeamGameStats

	if len(t.Columns) != 2 {
		return out, &MalformedTableError{
			GameID: t.GameID,
			Reason: "expected exactly 2 team columns, got " + strconv.Itoa(len(t.Columns)),
		}
	}

	for i := range t.Columns {
		line, err := parseColumn(t.GameID, &t.Columns[i])
		if err != nil {
			return out, err
		}
		out[i] = line
	}

	return out, nil
}

func parseColumn(gameID string, col *TeamColumn) (*stats.TeamGameStats, error) {
	line := &stats.TeamGameStats{
		Team:   col.Team,
		GameID: gameID,
	}

	fgm, fga, err := parseMadeAttempted(gameID, col, LabelFieldGoals)
	if err != nil {
		return nil, err
	}
	line.FieldGoalsMade = fgm
	line.FieldGoalsAttempted = fga

	tpm, tpa, err := parseMadeAttempted(gameID, col, Label3PT)
	if err != nil {
		return nil, err
	}
	line.ThreePointersMade = tpm
	line.ThreePointersAttempted = tpa

	ftm, fta, err := parseMadeAttempted(gameID, col, LabelFreeThrows)
	if err != nil {
		return nil, err
	}
	line.FreeThrowsMade = ftm
	line.FreeThrowsAttempted = fta

	if line.Turnovers, err = parseCount(gameID, col, LabelTurnovers); err != nil {
		return nil, err
	}
	if line.OffensiveRebounds, err = parseCount(gameID, col, LabelOffReb); err != nil {
		return nil, err
	}
	if line.DefensiveRebounds, err = parseCount(gameID, col, LabelDefReb); err != nil {
		return nil, err
	}
	if line.Points, err = parseCount(gameID, col, LabelPoints); err != nil {
		return nil, err
	}

	return line, nil
}

// parseMadeAttempted splits a "<made>-<attempted>" cell on its first hyphen.
func parseMadeAttempted(gameID string, col *TeamColumn, label string) (int, int, error) {
	cell, ok := col.Cells[label]
	if !ok {
		return 0, 0, &ParseError{GameID: gameID, Team: col.Team, Label: label, Reason: "cell missing"}
	}

	parts := strings.SplitN(strings.TrimSpace(cell), "-", 2)
	if len(parts) != 2 {
		return 0, 0, &ParseError{GameID: gameID, Team: col.Team, Label: label, Cell: cell, Reason: "expected made-attempted"}
	}

	made, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, &ParseError{GameID: gameID, Team: col.Team, Label: label, Cell: cell, Reason: "made is not an integer"}
	}
	attempted, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, &ParseError{GameID: gameID, Team: col.Team, Label: label, Cell: cell, Reason: "attempted is not an integer"}
	}

	if made < 0 {
		return 0, 0, &ParseError{GameID: gameID, Team: col.Team, Label: label, Cell: cell, Reason: "negative made count"}
	}
	if attempted < made {
		return 0, 0, &ParseError{GameID: gameID, Team: col.Team, Label: label, Cell: cell, Reason: "more makes than attempts"}
	}

	return made, attempted, nil
}

func parseCount(gameID string, col *TeamColumn, label string) (int, error) {
	cell, ok := col.Cells[label]
	if !ok {
		return 0, &ParseError{GameID: gameID, Team: col.Team, Label: label, Reason: "cell missing"}
	}

	v, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0, &ParseError{GameID: gameID, Team: col.Team, Label: label, Cell: cell, Reason: "not an integer"}
	}
	if v < 0 {
		return 0, &ParseError{GameID: gameID, Team: col.Team, Label: label, Cell: cell, Reason: "negative count"}
	}

	return v, nil
}

func formatMadeAttempted(made, attempted int) string {
	return strconv.Itoa(made) + "-" + strconv.Itoa(attempted)
}
