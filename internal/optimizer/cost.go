package optimizer

import "github.com/dannojb/fpl-optimizer-backend/internal/model"

// BudgetCap is the FPL squad budget in tenths of a million (£100.0m).
const BudgetCap = 1000

// TeamCost sums NowCost over the squad, in tenths.
func TeamCost(squad []model.Player) int {
	total := 0
	for _, p := range squad {
		total += p.NowCost
	}
	return total
}

// AvailableBudget is the spare budget under the cap, in tenths.
// Negative if the squad is already over the cap.
func AvailableBudget(squad []model.Player) int {
	return BudgetCap - TeamCost(squad)
}
