package models

import "time"

// PlayerSummary is the wire shape for one player. Costs are in tenths of a
// million, as stored.
type PlayerSummary struct {
	ID            int     `json:"id"`
	WebName       string  `json:"web_name"`
	Position      int     `json:"position"`
	TeamName      string  `json:"team_name"`
	NowCost       int     `json:"now_cost"`
	TotalPoints   int     `json:"total_points"`
	PointsPerGame float64 `json:"points_per_game"`
	Form          float64 `json:"form"`
}

// TransferRecommendation is one suggested swap. Field names follow the
// frontend contract (playerOut/playerIn camelCase, cost_change snake case).
type TransferRecommendation struct {
	PlayerOut  PlayerSummary `json:"playerOut"`
	PlayerIn   PlayerSummary `json:"playerIn"`
	Rationale  string        `json:"rationale"`
	CostChange int           `json:"cost_change"`
}

// OptimizationResponse is the body for POST /api/optimize.
// ComputationTime is in milliseconds, measured around the whole run.
type OptimizationResponse struct {
	Recommendations []TransferRecommendation `json:"recommendations"`
	ComputationTime float64                  `json:"computationTime"`
}

// TeamResponse is the body for GET /api/team/:team_id.
// TeamValue is in display millions.
type TeamResponse struct {
	TeamID      int             `json:"team_id"`
	Players     []PlayerSummary `json:"players"`
	TeamValue   float64         `json:"team_value"`
	TotalPoints int             `json:"total_points"`
}

// PlayerSearchResponse is the body for GET /api/players/search.
type PlayerSearchResponse struct {
	Players []PlayerSummary `json:"players"`
}

// SyncResponse is the body for POST /api/sync.
type SyncResponse struct {
	Status        string `json:"status"`
	RecordsSynced int    `json:"records_synced"`
}

// HealthResponse is the body for GET /health.
type HealthResponse struct {
	Status       string     `json:"status"`
	Version      string     `json:"version"`
	Service      string     `json:"service"`
	PlayerCount  int        `json:"player_count"`
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`
	LastSyncOK   *bool      `json:"last_sync_ok,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
