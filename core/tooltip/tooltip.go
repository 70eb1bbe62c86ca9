// Package tooltip resolves long descriptions for column headers and schedules
// their on-hover disclosure.
package tooltip

import "strings"

// titleDescriptions maps short header titles to longer descriptions.
var titleDescriptions = map[string]string{
	"G":       "Games Played",
	"GS":      "Games Started",
	"AB":      "At-Bats",
	"H":       "Hits",
	"R":       "Runs Scored",
	"HR":      "Home Runs",
	"RBI":     "Runs Batted In",
	"SB":      "Stolen Bases",
	"BB":      "Walks",
	"SO":      "Strikeouts",
	"AVG":     "Batting Average (Hits / At-Bats)",
	"OBP":     "On-Base Percentage",
	"SLG":     "Slugging Percentage (Total Bases / At-Bats)",
	"OPS":     "On-Base Plus Slugging",
	"W":       "Wins",
	"L":       "Losses",
	"SV":      "Saves",
	"HLD":     "Holds",
	"K":       "Strikeouts",
	"IP":      "Innings Pitched",
	"ER":      "Earned Runs",
	"ERA":     "Earned Run Average (9 x Earned Runs / Innings Pitched)",
	"WHIP":    "Walks plus Hits per Inning Pitched",
	"K/9":     "Strikeouts per Nine Innings",
	"BB/9":    "Walks per Nine Innings",
	"QS":      "Quality Starts",
	"Pos":     "Roster Position",
	"$":       "Auction Price",
	"Sal":     "Salary",
	"Yrs":     "Contract Years Remaining",
	"Period":  "Stat period: full season, trailing 14 days, or accrued while rostered",
	"Accrued": "Statistics accumulated while on this roster",
}

// keyDescriptions maps column keys to descriptions, used when the title has none.
var keyDescriptions = map[string]string{
	"position":       "Roster Position",
	"name":           "Player Name",
	"player":         "Player Name",
	"team":           "MLB Team",
	"price":          "Auction Price",
	"salary":         "Salary",
	"contract":       "Contract Years Remaining",
	"period":         "Stat period: full season, trailing 14 days, or accrued while rostered",
	"K9":             "Strikeouts per Nine Innings",
	"BB9":            "Walks per Nine Innings",
	"2B":             "Doubles",
	"3B":             "Triples",
	"HBP":            "Hit By Pitch",
	"SF":             "Sacrifice Flies",
	"rolling_14_day": "Trailing 14-day window",
}

// Resolve returns the tooltip for a header: by title, then by key. It reports
// false when neither table has an entry or the description just repeats the title.
func Resolve(title, key string) (string, bool) {
	desc, ok := titleDescriptions[title]
	if !ok {
		desc, ok = keyDescriptions[key]
	}
	if !ok || desc == "" || strings.EqualFold(desc, title) {
		return "", false
	}
	return desc, true
}

// Entry is a resolved tooltip, used when listing columns.
type Entry struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Position is where a tooltip is drawn, relative to the viewport.
type Position struct {
	X int
	Y int
}

// Place positions a tooltip directly below a header cell, with x clamped so the
// whole tooltip stays inside the viewport. A tooltip wider than the viewport is
// pinned to x = 0.
func Place(anchorX, anchorBottom, tipWidth, viewportWidth int) Position {
	x := anchorX
	if x+tipWidth > viewportWidth {
		x = viewportWidth - tipWidth
	}
	return Position{X: max(0, x), Y: anchorBottom}
}
