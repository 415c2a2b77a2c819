package optimizer

import (
	"math"
	"sort"

	"github.com/dannojb/fpl-optimizer-backend/internal/model"
)

// maxUpgradesPerPlayer caps candidates kept per outgoing player before the
// global ranking. Bounds candidate explosion at the cost of occasionally
// discarding a globally better fourth option.
const maxUpgradesPerPlayer = 3

type upgrade struct {
	candidate  model.Player
	valueScore float64
	pointsDiff int
	costDiff   int
}

// findPositionRecommendations proposes upgrades for every squad player at the
// given position. A candidate qualifies only with a strictly higher season
// total and a cost increase within the squad-level spare budget. The budget
// check here is a prefilter against the aggregate spare budget; the hard cap
// is re-checked per swap by the constraint validator.
func findPositionRecommendations(squad, pool []model.Player, pos model.Position, availableBudget int) []Recommendation {
	inSquad := make(map[int]bool, len(squad))
	for _, p := range squad {
		inSquad[p.ID] = true
	}

	var candidates []model.Player
	for _, p := range pool {
		if p.Position == pos && !inSquad[p.ID] {
			candidates = append(candidates, p)
		}
	}

	var recs []Recommendation
	for _, current := range squad {
		if current.Position != pos {
			continue
		}

		var upgrades []upgrade
		for _, cand := range candidates {
			if cand.TotalPoints <= current.TotalPoints {
				continue
			}
			costDiff := cand.NowCost - current.NowCost
			if costDiff > availableBudget {
				continue
			}
			pointsDiff := cand.TotalPoints - current.TotalPoints

			// Free upgrades rank above any priced one. Absolute cost diff
			// keeps savings from inverting the sign.
			var valueScore float64
			if costDiff == 0 {
				valueScore = float64(pointsDiff) * 1000
			} else {
				valueScore = float64(pointsDiff) / math.Abs(float64(costDiff))
			}

			upgrades = append(upgrades, upgrade{
				candidate:  cand,
				valueScore: valueScore,
				pointsDiff: pointsDiff,
				costDiff:   costDiff,
			})
		}

		sort.SliceStable(upgrades, func(i, j int) bool {
			return upgrades[i].valueScore > upgrades[j].valueScore
		})
		if len(upgrades) > maxUpgradesPerPlayer {
			upgrades = upgrades[:maxUpgradesPerPlayer]
		}

		for _, u := range upgrades {
			recs = append(recs, Recommendation{
				PlayerOut:  current,
				PlayerIn:   u.candidate,
				Rationale:  rationale(current, u.candidate, u.pointsDiff, u.costDiff),
				CostChange: u.costDiff,
			})
		}
	}

	return recs
}
