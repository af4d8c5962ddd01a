// Package store owns the process-wide map from game id to *engine.Game,
// the only process-wide mutable structure in this service. Grounded on the
// teacher's app.Service.games map and its single sync.Mutex, generalized
// to a richer lifecycle (deletion, available/my-games indexing) with a
// sync.RWMutex so lookups don't contend with each other.
package store

import (
	"sync"

	"github.com/drawlo/battleship-engine/internal/engine"
)

// Store indexes live games by id. Each *engine.Game still guards its own
// mutating operations with its own mutex; Store's lock only protects the
// map itself — insertion, lookup, deletion, and the two listing views.
type Store struct {
	mu    sync.RWMutex
	games map[string]*engine.Game
}

// New returns an empty Store.
func New() *Store {
	return &Store{games: map[string]*engine.Game{}}
}

// Add registers a newly created game.
func (s *Store) Add(g *engine.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
}

// Get returns the game with the given id, if it exists.
func (s *Store) Get(id string) (*engine.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	return g, ok
}

// Delete removes gameID from the store after confirming callerID is
// allowed to delete it, per engine.(*Game).CanDelete. Returns
// engine.ErrNotFound if the id is unknown.
func (s *Store) Delete(gameID, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return engine.ErrNotFound
	}
	if err := g.CanDelete(callerID); err != nil {
		return err
	}
	delete(s.games, gameID)
	return nil
}

// ListAvailable returns every game currently waiting for a second player,
// for the reference "/player/available-games" route.
func (s *Store) ListAvailable() []*engine.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*engine.Game, 0)
	for _, g := range s.games {
		g.Lock()
		status := g.Status
		g.Unlock()
		if status == engine.StatusWaitingForPlayer2 {
			out = append(out, g)
		}
	}
	return out
}

// ListForPlayer returns every game where playerID is player1 or player2,
// for the reference "/player/my-games" route.
func (s *Store) ListForPlayer(playerID string) []*engine.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*engine.Game, 0)
	for _, g := range s.games {
		g.Lock()
		mine := g.Player1ID == playerID || g.Player2ID == playerID
		g.Unlock()
		if mine {
			out = append(out, g)
		}
	}
	return out
}

// Count returns the number of live games, for metrics/diagnostics.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
