// Package syncer refreshes the local store from the FPL API on a staleness
// policy.
package syncer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dannojb/fpl-optimizer-backend/internal/data"
	"github.com/dannojb/fpl-optimizer-backend/internal/metrics"
	"github.com/dannojb/fpl-optimizer-backend/internal/model"
	"github.com/dannojb/fpl-optimizer-backend/internal/store"
)

// SyncTypeBootstrap is the sync record key for bootstrap-static refreshes.
const SyncTypeBootstrap = "bootstrap"

// DefaultMaxAge is how old bootstrap data may get before a re-sync.
const DefaultMaxAge = 6 * time.Hour

// BootstrapFetcher is the slice of the FPL client the syncer needs.
type BootstrapFetcher interface {
	BootstrapStatic(ctx context.Context, force bool) (*data.Bootstrap, error)
}

// Service syncs FPL bootstrap data (players, teams, gameweeks) into the
// local store and tracks sync metadata.
//
// Refresh is not internally serialized: the caller is expected to hold at
// most one in-flight sync per sync type. Concurrent callers may trigger
// duplicate remote fetches.
type Service struct {
	client BootstrapFetcher
	store  *store.Store
	clock  clockwork.Clock
	maxAge time.Duration
}

func New(client BootstrapFetcher, st *store.Store, clock clockwork.Clock, maxAge time.Duration) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Service{client: client, store: st, clock: clock, maxAge: maxAge}
}

// ShouldSync reports whether the last successful sync of the given type is
// missing or older than the staleness threshold.
func (s *Service) ShouldSync(syncType string) bool {
	rec, ok := s.store.SyncRecord(syncType)
	if !ok || rec.Status != model.SyncSuccess {
		return true
	}
	return s.clock.Now().Sub(rec.LastSyncTime) >= s.maxAge
}

// SyncBootstrap fetches bootstrap-static and upserts teams, players and
// gameweeks into the store. It records a success or failure sync record
// either way and returns the number of records written.
func (s *Service) SyncBootstrap(ctx context.Context, force bool) (int, error) {
	log.Printf("[Sync] Starting bootstrap sync (force=%v)", force)

	bootstrap, err := s.client.BootstrapStatic(ctx, force)
	if err != nil {
		s.recordFailure(fmt.Sprintf("failed to fetch bootstrap data: %v", err))
		return 0, fmt.Errorf("fetch bootstrap: %w", err)
	}

	now := s.clock.Now()

	teamNames := make(map[int]string, len(bootstrap.Teams))
	for _, t := range bootstrap.Teams {
		teamNames[t.ID] = t.ShortName
		s.store.UpsertTeam(model.Team{
			ID:                  t.ID,
			Name:                t.Name,
			ShortName:           t.ShortName,
			Code:                t.Code,
			Strength:            t.Strength,
			StrengthOverallHome: t.StrengthOverallHome,
			StrengthOverallAway: t.StrengthOverallAway,
			StrengthAttackHome:  t.StrengthAttackHome,
			StrengthAttackAway:  t.StrengthAttackAway,
			StrengthDefenceHome: t.StrengthDefenceHome,
			StrengthDefenceAway: t.StrengthDefenceAway,
			LastUpdated:         now,
		})
	}

	for _, e := range bootstrap.Elements {
		teamName, ok := teamNames[e.Team]
		if !ok {
			teamName = "Unknown"
		}
		s.store.UpsertPlayer(model.Player{
			ID:                e.ID,
			WebName:           e.WebName,
			FirstName:         e.FirstName,
			SecondName:        e.SecondName,
			Position:          model.Position(e.ElementType),
			TeamID:            e.Team,
			TeamName:          teamName,
			NowCost:           e.NowCost,
			TotalPoints:       e.TotalPoints,
			PointsPerGame:     data.ParseStat(e.PointsPerGame),
			Form:              data.ParseStat(e.Form),
			SelectedByPercent: data.ParseStat(e.SelectedByPercent),
			Minutes:           e.Minutes,
			GoalsScored:       e.GoalsScored,
			Assists:           e.Assists,
			CleanSheets:       e.CleanSheets,
			Bonus:             e.Bonus,
			Available:         e.Status == "a",
			LastUpdated:       now,
		})
	}

	for _, ev := range bootstrap.Events {
		s.store.UpsertGameweek(model.Gameweek{
			ID:           ev.ID,
			Name:         ev.Name,
			DeadlineTime: ev.DeadlineTime,
			IsCurrent:    ev.IsCurrent,
			IsNext:       ev.IsNext,
			IsPrevious:   ev.IsPrevious,
			Finished:     ev.Finished,
			LastUpdated:  now,
		})
	}

	total := len(bootstrap.Teams) + len(bootstrap.Elements) + len(bootstrap.Events)
	s.store.SetSyncRecord(model.SyncRecord{
		SyncType:      SyncTypeBootstrap,
		LastSyncTime:  now,
		Status:        model.SyncSuccess,
		RecordsSynced: total,
	})
	metrics.SyncRuns.WithLabelValues(string(model.SyncSuccess)).Inc()

	log.Printf("[Sync] Bootstrap sync complete: %d players, %d teams, %d gameweeks",
		len(bootstrap.Elements), len(bootstrap.Teams), len(bootstrap.Events))
	return total, nil
}

func (s *Service) recordFailure(msg string) {
	log.Printf("[Sync] %s", msg)
	s.store.SetSyncRecord(model.SyncRecord{
		SyncType:     SyncTypeBootstrap,
		LastSyncTime: s.clock.Now(),
		Status:       model.SyncFailed,
		ErrorMessage: msg,
	})
	metrics.SyncRuns.WithLabelValues(string(model.SyncFailed)).Inc()
}
