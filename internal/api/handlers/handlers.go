// Package handlers implements the HTTP surface over the store, the FPL
// client and the optimizer pipeline.
package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dannojb/fpl-optimizer-backend/internal/api/models"
	"github.com/dannojb/fpl-optimizer-backend/internal/data"
	"github.com/dannojb/fpl-optimizer-backend/internal/model"
	"github.com/dannojb/fpl-optimizer-backend/internal/store"
	"github.com/dannojb/fpl-optimizer-backend/internal/syncer"
)

// FPLClient is the slice of the remote client the handlers use.
type FPLClient interface {
	Entry(ctx context.Context, teamID int) (*data.Entry, error)
	EntryPicks(ctx context.Context, teamID, gameweek int) (*data.Picks, error)
}

// Syncer keeps the store fresh before requests read from it.
type Syncer interface {
	ShouldSync(syncType string) bool
	SyncBootstrap(ctx context.Context, force bool) (int, error)
}

func toSummary(p model.Player) models.PlayerSummary {
	return models.PlayerSummary{
		ID:            p.ID,
		WebName:       p.WebName,
		Position:      int(p.Position),
		TeamName:      p.TeamName,
		NowCost:       p.NowCost,
		TotalPoints:   p.TotalPoints,
		PointsPerGame: p.PointsPerGame,
		Form:          p.Form,
	}
}

// ensureFresh runs a staleness-checked bootstrap sync. A failed sync is
// logged but not fatal: the handler continues with whatever the store holds.
func ensureFresh(ctx context.Context, s Syncer) {
	if !s.ShouldSync(syncer.SyncTypeBootstrap) {
		return
	}
	log.Printf("[API] Bootstrap data is stale, syncing...")
	if _, err := s.SyncBootstrap(ctx, false); err != nil {
		log.Printf("[API] Sync failed, continuing with cached data: %v", err)
	}
}

// squadFromPicks resolves pick elements against the store.
// Missing players are logged and skipped; callers enforce the 15-player rule.
func squadFromPicks(st *store.Store, picks *data.Picks) []model.Player {
	squad := make([]model.Player, 0, len(picks.Picks))
	for _, pick := range picks.Picks {
		p, ok := st.Player(pick.Element)
		if !ok {
			log.Printf("[API] Player %d from picks not found in store", pick.Element)
			continue
		}
		squad = append(squad, p)
	}
	return squad
}

// remoteErrorStatus maps an FPL client error onto an HTTP status for the
// team/optimize endpoints: 404 for unknown teams, 503 for everything else
// (timeouts, 5xx, open circuit).
func remoteErrorStatus(err error) int {
	if data.IsNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusServiceUnavailable
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
