package season

import "fmt"

// UndefinedFactorError reports a four-factors denominator of zero. The team is
// excluded from regression input rather than carrying a NaN or Inf forward.
type UndefinedFactorError struct {
	Team        string
	Factor      string
	Denominator string
}

func (e *UndefinedFactorError) Error() string {
	return fmt.Sprintf("team %s: %s undefined: zero denominator %s", e.Team, e.Factor, e.Denominator)
}

// TieGameError reports equal final scores. Ties cannot happen in basketball,
// so one always indicates corrupt upstream data.
type TieGameError struct {
	Team   string
	GameID string
	Score  int
}

func (e *TieGameError) Error() string {
	return fmt.Sprintf("game %s: tie score %d-%d involving %s", e.GameID, e.Score, e.Score, e.Team)
}

// RetrievalError wraps a table provider failure for one game.
type RetrievalError struct {
	GameID string
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("game %s: retrieval failed: %v", e.GameID, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }
