package optimizer

import (
	"errors"
	"log"
	"sort"

	"github.com/dannojb/fpl-optimizer-backend/internal/model"
)

// SquadSize is the number of players in a valid FPL squad.
const SquadSize = 15

// MaxRecommendations caps the final ranked output.
const MaxRecommendations = 5

// ErrSquadSize is returned when the input squad does not have exactly 15
// players. The pipeline never runs on a malformed squad, so an empty result
// paired with this error is distinguishable from "no improvements found".
var ErrSquadSize = errors.New("squad must have exactly 15 players")

// Recommendation is a single proposed same-position swap.
// CostChange is PlayerIn.NowCost - PlayerOut.NowCost, in tenths (signed).
type Recommendation struct {
	PlayerOut  model.Player
	PlayerIn   model.Player
	Rationale  string
	CostChange int
}

// Result holds the ranked recommendations for one optimization run.
type Result struct {
	Recommendations []Recommendation
}

// Optimize evaluates upgrade swaps for every squad player against the pool
// and returns the top recommendations, ranked by season-point improvement.
//
// The pipeline is pure and deterministic: identical inputs produce identical,
// identically ordered output. Callers measure elapsed time themselves.
func Optimize(squad, pool []model.Player) (Result, error) {
	if len(squad) != SquadSize {
		log.Printf("[Optimizer] Rejecting squad of %d players (want %d)", len(squad), SquadSize)
		return Result{Recommendations: []Recommendation{}}, ErrSquadSize
	}

	budget := AvailableBudget(squad)

	var recs []Recommendation
	for _, pos := range model.Positions {
		recs = append(recs, findPositionRecommendations(squad, pool, pos, budget)...)
	}

	valid := recs[:0]
	for _, rec := range recs {
		if validateBudget(squad, rec) && validateFormation(rec) && validateClubLimit(squad, rec) {
			valid = append(valid, rec)
		}
	}

	deduped := deduplicate(valid)

	// Stable sort so equal improvements keep dedup order.
	sort.SliceStable(deduped, func(i, j int) bool {
		return improvement(deduped[i]) > improvement(deduped[j])
	})
	if len(deduped) > MaxRecommendations {
		deduped = deduped[:MaxRecommendations]
	}

	log.Printf("[Optimizer] Found %d recommendations", len(deduped))
	return Result{Recommendations: deduped}, nil
}

// deduplicate keeps the first recommendation seen for each outgoing player.
// Generation order (squad order within position, value score within player)
// decides which one survives, not the globally best improvement.
func deduplicate(recs []Recommendation) []Recommendation {
	seen := make(map[int]bool, len(recs))
	out := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		if seen[rec.PlayerOut.ID] {
			continue
		}
		seen[rec.PlayerOut.ID] = true
		out = append(out, rec)
	}
	return out
}

// improvement is the season-point delta used for the final ranking.
func improvement(rec Recommendation) int {
	return rec.PlayerIn.TotalPoints - rec.PlayerOut.TotalPoints
}
