package optimizer

import "github.com/dannojb/fpl-optimizer-backend/internal/model"

// maxPerClub is the FPL limit on players from a single club.
const maxPerClub = 3

// validateBudget re-checks the hard cap for the applied swap, independent of
// the generator's aggregate prefilter.
func validateBudget(squad []model.Player, rec Recommendation) bool {
	newCost := TeamCost(squad) - rec.PlayerOut.NowCost + rec.PlayerIn.NowCost
	return newCost <= BudgetCap
}

// validateFormation asserts the swap stays within one position. Holds by
// construction from the generator; re-checked defensively.
func validateFormation(rec Recommendation) bool {
	return rec.PlayerOut.Position == rec.PlayerIn.Position
}

// validateClubLimit simulates the swap and checks no club exceeds the
// per-club player limit.
func validateClubLimit(squad []model.Player, rec Recommendation) bool {
	counts := make(map[string]int, len(squad))
	for _, p := range squad {
		if p.ID == rec.PlayerOut.ID {
			continue
		}
		counts[p.TeamName]++
	}
	counts[rec.PlayerIn.TeamName]++

	for _, n := range counts {
		if n > maxPerClub {
			return false
		}
	}
	return true
}
