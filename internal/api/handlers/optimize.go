package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dannojb/fpl-optimizer-backend/internal/api/models"
	"github.com/dannojb/fpl-optimizer-backend/internal/metrics"
	"github.com/dannojb/fpl-optimizer-backend/internal/optimizer"
	"github.com/dannojb/fpl-optimizer-backend/internal/store"
	"github.com/dannojb/fpl-optimizer-backend/internal/syncer"
)

// OptimizeHandler serves transfer recommendations.
type OptimizeHandler struct {
	store     *store.Store
	fpl       FPLClient
	sync      Syncer
	poolLimit int
}

func NewOptimizeHandler(st *store.Store, fpl FPLClient, sync Syncer, poolLimit int) *OptimizeHandler {
	return &OptimizeHandler{store: st, fpl: fpl, sync: sync, poolLimit: poolLimit}
}

// Optimize handles POST /api/optimize
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req models.OptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	start := time.Now()
	log.Printf("[API] Starting optimization for team %d", req.TeamID)

	// Unlike the team endpoint, a stale store is fatal here: recommending
	// transfers over outdated prices and points is worse than failing.
	if h.sync.ShouldSync(syncer.SyncTypeBootstrap) {
		if _, err := h.sync.SyncBootstrap(c.Request.Context(), false); err != nil {
			writeError(c, http.StatusServiceUnavailable, "SYNC_FAILED",
				"Unable to sync player data from FPL API. Please try again later.")
			return
		}
	}

	picks, err := h.fpl.EntryPicks(c.Request.Context(), req.TeamID, 0)
	if err != nil {
		status := remoteErrorStatus(err)
		if status == http.StatusNotFound {
			writeError(c, status, "TEAM_NOT_FOUND",
				fmt.Sprintf("Team %d not found or unable to fetch from FPL API.", req.TeamID))
		} else {
			writeError(c, status, "FPL_UNAVAILABLE",
				"Unable to fetch team picks from FPL API. Please try again later.")
		}
		return
	}

	squad := squadFromPicks(h.store, picks)
	if len(squad) != optimizer.SquadSize {
		writeError(c, http.StatusInternalServerError, "INCOMPLETE_TEAM_DATA",
			fmt.Sprintf("Incomplete team data: expected %d players, got %d",
				optimizer.SquadSize, len(squad)))
		return
	}

	pool := h.store.Players(h.poolLimit)
	log.Printf("[API] Running optimization: %d current players, %d candidates",
		len(squad), len(pool))

	result, err := optimizer.Optimize(squad, pool)
	if err != nil {
		// Squad size is validated above; anything surfacing here is a bug.
		writeError(c, http.StatusInternalServerError, "OPTIMIZATION_FAILED", err.Error())
		return
	}

	recommendations := make([]models.TransferRecommendation, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		recommendations = append(recommendations, models.TransferRecommendation{
			PlayerOut:  toSummary(rec.PlayerOut),
			PlayerIn:   toSummary(rec.PlayerIn),
			Rationale:  rec.Rationale,
			CostChange: rec.CostChange,
		})
	}

	elapsed := time.Since(start)
	metrics.OptimizeRequests.Inc()
	metrics.OptimizeDuration.Observe(elapsed.Seconds())
	metrics.RecommendationsReturned.Observe(float64(len(recommendations)))

	computationMs := float64(elapsed.Nanoseconds()) / 1e6
	log.Printf("[API] Optimization complete: %d recommendations in %.0fms",
		len(recommendations), computationMs)

	c.JSON(http.StatusOK, models.OptimizationResponse{
		Recommendations: recommendations,
		ComputationTime: computationMs,
	})
}
