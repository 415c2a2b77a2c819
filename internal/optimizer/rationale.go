package optimizer

import (
	"fmt"
	"math"

	"github.com/dannojb/fpl-optimizer-backend/internal/model"
)

// rationale builds the plain-English justification for a swap from the
// points, form, cost and points-per-game deltas. The conditions form a fixed
// priority ladder (points > form > cost > PPG); the first match wins, so the
// ordering here is load-bearing.
func rationale(out, in model.Player, pointsDiff, costDiff int) string {
	formDiff := in.Form - out.Form
	ppgDiff := in.PointsPerGame - out.PointsPerGame

	switch {
	case pointsDiff > 50 && formDiff > 2:
		return fmt.Sprintf("Much better form, +%d points", pointsDiff)
	case pointsDiff > 30 && formDiff > 1:
		return fmt.Sprintf("Better form, +%d points", pointsDiff)
	case costDiff < 0 && pointsDiff > 20:
		return fmt.Sprintf("Great value, +%d pts, saves £%.1fm", pointsDiff, millions(costDiff))
	case costDiff < 0 && formDiff > 1.5:
		return fmt.Sprintf("Budget-friendly, better form, -£%.1fm", millions(costDiff))
	case pointsDiff > 50:
		return fmt.Sprintf("Much better season (+%d points)", pointsDiff)
	case pointsDiff > 20:
		return fmt.Sprintf("Higher season total (+%d points)", pointsDiff)
	case pointsDiff > 10:
		return fmt.Sprintf("Better performance (+%d points)", pointsDiff)
	case formDiff > 2.5:
		return fmt.Sprintf("Excellent recent form (+%.1f)", formDiff)
	case formDiff > 1.5:
		return fmt.Sprintf("Better recent form (+%.1f)", formDiff)
	case formDiff > 0.5:
		return fmt.Sprintf("Improved form (+%.1f)", formDiff)
	case ppgDiff > 1.5 && pointsDiff > 5:
		return fmt.Sprintf("More consistent, +%.1f pts/game", ppgDiff)
	case costDiff < 0:
		return fmt.Sprintf("Budget option, frees up £%.1fm", millions(costDiff))
	case costDiff == 0 && pointsDiff > 0:
		return fmt.Sprintf("Equal price, +%d points", pointsDiff)
	case costDiff > 0 && pointsDiff > 30:
		return fmt.Sprintf("Premium upgrade, +£%.1fm for +%d pts", millions(costDiff), pointsDiff)
	case pointsDiff > 0:
		return fmt.Sprintf("+%d points this season", pointsDiff)
	default:
		return "Recommended upgrade"
	}
}

// millions converts a tenths amount to display millions, unsigned.
func millions(tenths int) float64 {
	return math.Abs(float64(tenths)) / 10.0
}
