package data

import (
	"strconv"
	"time"
)

// Bootstrap matches the JSON shape of /bootstrap-static/. Only the portions
// the sync service consumes are modeled; the endpoint returns far more.
type Bootstrap struct {
	Events   []Event    `json:"events"`
	Teams    []TeamInfo `json:"teams"`
	Elements []Element  `json:"elements"`
}

// Event is one gameweek row from the bootstrap events list.
type Event struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	DeadlineTime time.Time `json:"deadline_time"`
	IsCurrent    bool      `json:"is_current"`
	IsNext       bool      `json:"is_next"`
	IsPrevious   bool      `json:"is_previous"`
	Finished     bool      `json:"finished"`
}

// TeamInfo is one club row from the bootstrap teams list.
type TeamInfo struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	ShortName           string `json:"short_name"`
	Code                int    `json:"code"`
	Strength            int    `json:"strength"`
	StrengthOverallHome int    `json:"strength_overall_home"`
	StrengthOverallAway int    `json:"strength_overall_away"`
	StrengthAttackHome  int    `json:"strength_attack_home"`
	StrengthAttackAway  int    `json:"strength_attack_away"`
	StrengthDefenceHome int    `json:"strength_defence_home"`
	StrengthDefenceAway int    `json:"strength_defence_away"`
}

// Element is one player row from the bootstrap elements list.
// The FPL API serializes several numeric stats as strings ("4.5"); those are
// kept as strings here and parsed at the store boundary.
type Element struct {
	ID                int    `json:"id"`
	WebName           string `json:"web_name"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	ElementType       int    `json:"element_type"`
	Team              int    `json:"team"`
	NowCost           int    `json:"now_cost"`
	TotalPoints       int    `json:"total_points"`
	PointsPerGame     string `json:"points_per_game"`
	Form              string `json:"form"`
	SelectedByPercent string `json:"selected_by_percent"`
	Minutes           int    `json:"minutes"`
	GoalsScored       int    `json:"goals_scored"`
	Assists           int    `json:"assists"`
	CleanSheets       int    `json:"clean_sheets"`
	Bonus             int    `json:"bonus"`
	Status            string `json:"status"` // "a" = available
}

// ParseStat parses one of the string-encoded stats, defaulting to 0 on any
// malformed value rather than failing the whole sync.
func ParseStat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Entry matches /entry/{id}/.
type Entry struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	PlayerFirstName      string `json:"player_first_name"`
	PlayerLastName       string `json:"player_last_name"`
	SummaryOverallPoints int    `json:"summary_overall_points"`
	SummaryOverallRank   int    `json:"summary_overall_rank"`
	CurrentEvent         int    `json:"current_event"`
}

// Picks matches /entry/{id}/event/{gw}/picks/.
type Picks struct {
	ActiveChip string `json:"active_chip"`
	Picks      []Pick `json:"picks"`
}

// Pick is one squad slot in a picks response. Element is the player ID.
type Pick struct {
	Element       int  `json:"element"`
	Position      int  `json:"position"` // squad slot 1-15, not the role
	Multiplier    int  `json:"multiplier"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
}

// Fixture is one row from /fixtures/.
type Fixture struct {
	Code            int  `json:"code"`
	Event           int  `json:"event"`
	Finished        bool `json:"finished"`
	TeamH           int  `json:"team_h"`
	TeamA           int  `json:"team_a"`
	TeamHDifficulty int  `json:"team_h_difficulty"`
	TeamADifficulty int  `json:"team_a_difficulty"`
}
