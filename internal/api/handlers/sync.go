package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dannojb/fpl-optimizer-backend/internal/api/models"
)

// SyncHandler exposes a forced bootstrap sync for operators.
type SyncHandler struct {
	sync Syncer
}

func NewSyncHandler(sync Syncer) *SyncHandler {
	return &SyncHandler{sync: sync}
}

// ForceSync handles POST /api/sync
func (h *SyncHandler) ForceSync(c *gin.Context) {
	count, err := h.sync.SyncBootstrap(c.Request.Context(), true)
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, "SYNC_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.SyncResponse{
		Status:        "success",
		RecordsSynced: count,
	})
}
