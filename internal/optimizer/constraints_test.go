package optimizer

import (
	"testing"

	"github.com/dannojb/fpl-optimizer-backend/internal/model"
)

func constraintSquad() []model.Player {
	squad := make([]model.Player, 0, 15)
	clubs := []string{
		"Arsenal", "Arsenal", "Arsenal",
		"Spurs", "Spurs",
		"Villa", "Villa",
		"Brighton", "Brighton",
		"Wolves", "Wolves",
		"Everton", "Everton",
		"Fulham", "Fulham",
	}
	for i, club := range clubs {
		squad = append(squad, model.Player{
			ID:       i + 1,
			Position: model.Midfielder,
			TeamName: club,
			NowCost:  66, // 15 x 66 = 990
		})
	}
	return squad
}

func TestValidateBudget(t *testing.T) {
	squad := constraintSquad() // total 990, headroom 10

	tests := []struct {
		name      string
		inCost    int
		wantValid bool
	}{
		{name: "UnderCap", inCost: 70, wantValid: true},
		{name: "ExactlyAtCap", inCost: 76, wantValid: true},
		{name: "OverCap", inCost: 77, wantValid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := Recommendation{
				PlayerOut: squad[0],
				PlayerIn:  model.Player{ID: 99, Position: model.Midfielder, TeamName: "Newcastle", NowCost: tc.inCost},
			}
			if got := validateBudget(squad, rec); got != tc.wantValid {
				t.Fatalf("validateBudget(inCost=%d)=%v want %v", tc.inCost, got, tc.wantValid)
			}
		})
	}
}

func TestValidateFormation(t *testing.T) {
	rec := Recommendation{
		PlayerOut: model.Player{ID: 1, Position: model.Defender},
		PlayerIn:  model.Player{ID: 2, Position: model.Defender},
	}
	if !validateFormation(rec) {
		t.Fatal("same-position swap rejected")
	}

	rec.PlayerIn.Position = model.Forward
	if validateFormation(rec) {
		t.Fatal("cross-position swap accepted")
	}
}

func TestValidateClubLimit(t *testing.T) {
	squad := constraintSquad() // three Arsenal players at IDs 1-3

	tests := []struct {
		name      string
		outID     int
		inClub    string
		wantValid bool
	}{
		{name: "FourthFromSameClub", outID: 4, inClub: "Arsenal", wantValid: false},
		{name: "ReplacingOwnClubPlayer", outID: 1, inClub: "Arsenal", wantValid: true},
		{name: "NewClub", outID: 4, inClub: "Newcastle", wantValid: true},
		{name: "ThirdFromClub", outID: 1, inClub: "Spurs", wantValid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := Recommendation{
				PlayerOut: squad[tc.outID-1],
				PlayerIn:  model.Player{ID: 99, Position: model.Midfielder, TeamName: tc.inClub},
			}
			if got := validateClubLimit(squad, rec); got != tc.wantValid {
				t.Fatalf("validateClubLimit(out=%d, in=%s)=%v want %v", tc.outID, tc.inClub, got, tc.wantValid)
			}
		})
	}
}

func TestTeamCost(t *testing.T) {
	squad := constraintSquad()
	if got := TeamCost(squad); got != 990 {
		t.Fatalf("TeamCost=%d want 990", got)
	}
	if got := AvailableBudget(squad); got != 10 {
		t.Fatalf("AvailableBudget=%d want 10", got)
	}
}
