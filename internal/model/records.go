package model

import "time"

// Team is a Premier League club from the bootstrap teams list.
type Team struct {
	ID                   int
	Name                 string
	ShortName            string
	Code                 int
	Strength             int
	StrengthOverallHome  int
	StrengthOverallAway  int
	StrengthAttackHome   int
	StrengthAttackAway   int
	StrengthDefenceHome  int
	StrengthDefenceAway  int
	LastUpdated          time.Time
}

// Gameweek is one FPL event.
type Gameweek struct {
	ID           int
	Name         string
	DeadlineTime time.Time
	IsCurrent    bool
	IsNext       bool
	IsPrevious   bool
	Finished     bool
	LastUpdated  time.Time
}

// SyncStatus is the recorded outcome of a sync run.
type SyncStatus string

const (
	SyncSuccess SyncStatus = "success"
	SyncFailed  SyncStatus = "failed"
)

// SyncRecord tracks the last sync attempt for one sync type (e.g. "bootstrap").
type SyncRecord struct {
	SyncType      string
	LastSyncTime  time.Time
	Status        SyncStatus
	ErrorMessage  string
	RecordsSynced int
}
