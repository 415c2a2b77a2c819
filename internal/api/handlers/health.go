package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dannojb/fpl-optimizer-backend/internal/api/models"
	"github.com/dannojb/fpl-optimizer-backend/internal/model"
	"github.com/dannojb/fpl-optimizer-backend/internal/store"
	"github.com/dannojb/fpl-optimizer-backend/internal/syncer"
)

// Version is the reported service version.
const Version = "1.0.0"

// HealthHandler serves liveness info plus store freshness.
type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	resp := models.HealthResponse{
		Status:      "healthy",
		Version:     Version,
		Service:     "FPL Optimizer API",
		PlayerCount: h.store.PlayerCount(),
	}
	if rec, ok := h.store.SyncRecord(syncer.SyncTypeBootstrap); ok {
		t := rec.LastSyncTime
		okFlag := rec.Status == model.SyncSuccess
		resp.LastSyncTime = &t
		resp.LastSyncOK = &okFlag
	}
	c.JSON(http.StatusOK, resp)
}
