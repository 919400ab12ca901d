package boxscore

import "fmt"

// Cell labels used in a GameTable. Providers normalize whatever a site calls
// each stat into these labels before the core parser sees them.
const (
	LabelPoints     = "PTS"
	LabelFieldGoals = "FG"   // "made-attempted"
	Label3PT        = "3PT"  // "made-attempted"
	LabelFreeThrows = "FT"   // "made-attempted"
	LabelTurnovers  = "TO"
	LabelOffReb     = "OREB"
	LabelDefReb     = "DREB"
)

// TeamColumn is one team's column block of raw stat cells.
type TeamColumn struct {
	Team  string            `json:"team"`
	Cells map[string]string `json:"cells"`
}

// GameTable is the raw scraped box score for one game: exactly two team
// columns of string-encoded cells. It is produced by a table provider and
// consumed immediately by ParseGameTable.
type GameTable struct {
	GameID  string       `json:"game_id"`
	Columns []TeamColumn `json:"columns"`
}

// ParseError reports a box score cell that does not match the expected
// "made-attempted" or plain-integer shape.
type ParseError struct {
	GameID string
	Team   string
	Label  string
	Cell   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("game %s team %s: bad %s cell %q: %s", e.GameID, e.Team, e.Label, e.Cell, e.Reason)
}

// MalformedTableError reports a game table that cannot be interpreted at all,
// most commonly one without exactly two team columns.
type MalformedTableError struct {
	GameID string
	Reason string
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("game %s: malformed table: %s", e.GameID, e.Reason)
}
