package sportsref

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jakesingi/ncaamb-four-factors/internal/boxscore"
)

// sports-reference data-stat attributes on the totals row
const (
	srStatFGMade        = "fg"
	srStatFGAttempted   = "fga"
	srStat3PMade        = "fg3"
	srStat3PAttempted   = "fg3a"
	srStatFTMade        = "ft"
	srStatFTAttempted   = "fta"
	srStatOffRebounds   = "orb"
	srStatDefRebounds   = "drb"
	srStatTurnovers     = "tov"
	srStatPoints        = "pts"
	basicBoxTablePrefix = "box-score-basic-"
)

// ParseBoxScorePage extracts the two team columns from a box score page.
// The site splits makes and attempts into separate columns, so the compound
// "made-attempted" cells of the GameTable contract are assembled here; the
// core parser stays responsible for validating them.
func ParseBoxScorePage(doc *goquery.Document, gameID string) (*boxscore.GameTable, error) {
	table := &boxscore.GameTable{GameID: gameID}

	doc.Find("table[id^='" + basicBoxTablePrefix + "']").Each(func(i int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		team := strings.TrimPrefix(id, basicBoxTablePrefix)

		totals := sel.Find("tfoot tr").First()
		if totals.Length() == 0 {
			return
		}

		cell := func(stat string) string {
			return strings.TrimSpace(totals.Find("td[data-stat='" + stat + "']").First().Text())
		}
		compound := func(made, attempted string) string {
			return cell(made) + "-" + cell(attempted)
		}

		table.Columns = append(table.Columns, boxscore.TeamColumn{
			Team: team,
			Cells: map[string]string{
				boxscore.LabelFieldGoals: compound(srStatFGMade, srStatFGAttempted),
				boxscore.Label3PT:        compound(srStat3PMade, srStat3PAttempted),
				boxscore.LabelFreeThrows: compound(srStatFTMade, srStatFTAttempted),
				boxscore.LabelTurnovers:  cell(srStatTurnovers),
				boxscore.LabelOffReb:     cell(srStatOffRebounds),
				boxscore.LabelDefReb:     cell(srStatDefRebounds),
				boxscore.LabelPoints:     cell(srStatPoints),
			},
		})
	})

	if len(table.Columns) != 2 {
		return nil, fmt.Errorf("game %s: found %d basic box score tables, expected 2", gameID, len(table.Columns))
	}

	return table, nil
}
