package model

import "time"

// Position is an FPL element type. Values match the FPL API's element_type
// field; keep them stable, they appear in query params and stored rows.
type Position int

const (
	Goalkeeper Position = 1
	Defender   Position = 2
	Midfielder Position = 3
	Forward    Position = 4
)

// Positions lists all element types in FPL order.
var Positions = []Position{Goalkeeper, Defender, Midfielder, Forward}

func (p Position) String() string {
	switch p {
	case Goalkeeper:
		return "GK"
	case Defender:
		return "DEF"
	case Midfielder:
		return "MID"
	case Forward:
		return "FWD"
	default:
		return "UNKNOWN"
	}
}

func (p Position) Valid() bool {
	return p >= Goalkeeper && p <= Forward
}

// Player is one FPL element as stored locally after a bootstrap sync.
// NowCost is in tenths of a million (85 = £8.5m).
type Player struct {
	ID                int
	WebName           string
	FirstName         string
	SecondName        string
	Position          Position
	TeamID            int
	TeamName          string
	NowCost           int
	TotalPoints       int
	PointsPerGame     float64
	Form              float64
	SelectedByPercent float64
	Minutes           int
	GoalsScored       int
	Assists           int
	CleanSheets       int
	Bonus             int
	Available         bool
	LastUpdated       time.Time
}
