// Package store provides the in-memory player/team/gameweek store backing
// the API handlers. It is refreshed by the sync service and read by request
// handlers concurrently, so all access goes through a RWMutex.
package store

import (
	"sort"
	"sync"

	"github.com/dannojb/fpl-optimizer-backend/internal/model"
)

// DefaultPlayerLimit bounds unpaginated player queries.
const DefaultPlayerLimit = 1000

type Store struct {
	mu        sync.RWMutex
	players   map[int]model.Player
	teams     map[int]model.Team
	gameweeks map[int]model.Gameweek
	syncs     map[string]model.SyncRecord
}

func New() *Store {
	return &Store{
		players:   make(map[int]model.Player),
		teams:     make(map[int]model.Team),
		gameweeks: make(map[int]model.Gameweek),
		syncs:     make(map[string]model.SyncRecord),
	}
}

// Player returns a single player by ID.
func (s *Store) Player(id int) (model.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	return p, ok
}

// Players returns available players ordered by ID, up to limit entries.
// limit <= 0 applies DefaultPlayerLimit.
func (s *Store) Players(limit int) []model.Player {
	if limit <= 0 {
		limit = DefaultPlayerLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		if p.Available {
			out = append(out, p)
		}
	}
	// Deterministic order so downstream ranking is reproducible.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PlayersByPosition returns available players at one position, ordered by ID.
func (s *Store) PlayersByPosition(pos model.Position) []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Player
	for _, p := range s.players {
		if p.Available && p.Position == pos {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllPlayers returns every stored player regardless of availability, ordered
// by ID. Used by name search so injured players still resolve.
func (s *Store) AllPlayers() []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PlayerCount reports the number of stored players.
func (s *Store) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// UpsertPlayer inserts or replaces a player row.
func (s *Store) UpsertPlayer(p model.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
}

// Team returns a single club by ID.
func (s *Store) Team(id int) (model.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	return t, ok
}

// Teams returns all clubs ordered by ID.
func (s *Store) Teams() []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpsertTeam inserts or replaces a club row.
func (s *Store) UpsertTeam(t model.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[t.ID] = t
}

// UpsertGameweek inserts or replaces a gameweek row.
func (s *Store) UpsertGameweek(gw model.Gameweek) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameweeks[gw.ID] = gw
}

// CurrentGameweek returns the gameweek flagged current, if any.
func (s *Store) CurrentGameweek() (model.Gameweek, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, gw := range s.gameweeks {
		if gw.IsCurrent {
			return gw, true
		}
	}
	return model.Gameweek{}, false
}

// SyncRecord returns the last recorded sync for a sync type.
func (s *Store) SyncRecord(syncType string) (model.SyncRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.syncs[syncType]
	return rec, ok
}

// SetSyncRecord records the outcome of a sync run.
func (s *Store) SetSyncRecord(rec model.SyncRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncs[rec.SyncType] = rec
}
