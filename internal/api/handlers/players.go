package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/dannojb/fpl-optimizer-backend/internal/api/models"
	"github.com/dannojb/fpl-optimizer-backend/internal/store"
)

const defaultSearchLimit = 10

// PlayersHandler serves player name lookups.
type PlayersHandler struct {
	store *store.Store
}

func NewPlayersHandler(st *store.Store) *PlayersHandler {
	return &PlayersHandler{store: st}
}

// Search handles GET /api/players/search
func (h *PlayersHandler) Search(c *gin.Context) {
	var req models.PlayerSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}

	// Search across all players, including unavailable ones: users look up
	// injured players too.
	players := h.store.AllPlayers()
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.WebName
	}

	ranks := fuzzy.RankFindNormalizedFold(req.Name, names)
	sort.Sort(ranks)
	if len(ranks) > req.Limit {
		ranks = ranks[:req.Limit]
	}

	matches := make([]models.PlayerSummary, 0, len(ranks))
	for _, r := range ranks {
		matches = append(matches, toSummary(players[r.OriginalIndex]))
	}

	c.JSON(http.StatusOK, models.PlayerSearchResponse{Players: matches})
}
