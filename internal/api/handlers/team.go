package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dannojb/fpl-optimizer-backend/internal/api/models"
	"github.com/dannojb/fpl-optimizer-backend/internal/optimizer"
	"github.com/dannojb/fpl-optimizer-backend/internal/store"
)

// TeamHandler serves squad lookups.
type TeamHandler struct {
	store *store.Store
	fpl   FPLClient
	sync  Syncer
}

func NewTeamHandler(st *store.Store, fpl FPLClient, sync Syncer) *TeamHandler {
	return &TeamHandler{store: st, fpl: fpl, sync: sync}
}

// GetTeam handles GET /api/team/:team_id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("team_id"))
	if err != nil || teamID <= 0 {
		writeError(c, http.StatusBadRequest, "INVALID_TEAM_ID", "team_id must be a positive integer")
		return
	}

	ensureFresh(c.Request.Context(), h.sync)

	if _, err := h.fpl.Entry(c.Request.Context(), teamID); err != nil {
		status := remoteErrorStatus(err)
		if status == http.StatusNotFound {
			writeError(c, status, "TEAM_NOT_FOUND",
				fmt.Sprintf("Team %d not found. Please check your FPL team ID.", teamID))
		} else {
			writeError(c, status, "FPL_UNAVAILABLE",
				"Unable to fetch team from FPL API. Please try again later.")
		}
		return
	}

	picks, err := h.fpl.EntryPicks(c.Request.Context(), teamID, 0)
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, "FPL_UNAVAILABLE",
			"Unable to fetch team picks from FPL API. Please try again later.")
		return
	}

	squad := squadFromPicks(h.store, picks)
	if len(squad) != optimizer.SquadSize {
		log.Printf("[API] Expected %d players for team %d but got %d",
			optimizer.SquadSize, teamID, len(squad))
		writeError(c, http.StatusInternalServerError, "INCOMPLETE_TEAM_DATA",
			"Incomplete team data. Please try again.")
		return
	}

	players := make([]models.PlayerSummary, 0, len(squad))
	totalPoints := 0
	for _, p := range squad {
		players = append(players, toSummary(p))
		totalPoints += p.TotalPoints
	}
	teamValue := float64(optimizer.TeamCost(squad)) / 10.0

	log.Printf("[API] Team %d fetched: %d players, £%.1fm value", teamID, len(players), teamValue)

	c.JSON(http.StatusOK, models.TeamResponse{
		TeamID:      teamID,
		Players:     players,
		TeamValue:   teamValue,
		TotalPoints: totalPoints,
	})
}
