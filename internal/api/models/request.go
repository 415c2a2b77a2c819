package models

// OptimizationRequest is the body for POST /api/optimize.
type OptimizationRequest struct {
	TeamID int `json:"team_id" binding:"required,gt=0"` // FPL team ID
}

// PlayerSearchRequest holds query params for GET /api/players/search.
type PlayerSearchRequest struct {
	Name  string `form:"name" binding:"required"`
	Limit int    `form:"limit,omitempty"` // default: 10
}
