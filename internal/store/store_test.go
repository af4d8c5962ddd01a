package store

import (
	"errors"
	"testing"

	"github.com/drawlo/battleship-engine/internal/catalog"
	"github.com/drawlo/battleship-engine/internal/engine"
)

func newGame(t *testing.T, c *catalog.Seed, creator string, mode engine.Mode) *engine.Game {
	t.Helper()
	g, err := engine.CreateGame(c, creator, "solo-patrol", mode, engine.Medium)
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	return g
}

func TestAddGetRoundtrip(t *testing.T) {
	c := catalog.New()
	s := New()
	g := newGame(t, c, "p1", engine.SinglePlayer)
	s.Add(g)

	got, ok := s.Get(g.ID)
	if !ok || got.ID != g.ID {
		t.Fatalf("expected to retrieve game %s", g.ID)
	}
}

func TestGetMissing(t *testing.T) {
	s := New()
	if _, ok := s.Get("nonexistent"); ok {
		t.Fatalf("expected missing game to be absent")
	}
}

func TestDeleteUnknownGame(t *testing.T) {
	s := New()
	if err := s.Delete("nonexistent", "p1"); !errors.Is(err, engine.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByCreatorWhileInProgress(t *testing.T) {
	c := catalog.New()
	s := New()
	g := newGame(t, c, "p1", engine.SinglePlayer)
	s.Add(g)

	if err := s.Delete(g.ID, "p1"); err != nil {
		t.Fatalf("creator should be able to delete their own game: %v", err)
	}
	if _, ok := s.Get(g.ID); ok {
		t.Fatalf("expected game to be removed from the store")
	}
}

func TestListAvailableOnlyShowsWaitingGames(t *testing.T) {
	c := catalog.New()
	s := New()

	waiting, _ := engine.CreateGame(c, "p1", "solo-patrol", engine.Multiplayer, engine.Medium)
	s.Add(waiting)

	solo := newGame(t, c, "p2", engine.SinglePlayer)
	s.Add(solo)

	avail := s.ListAvailable()
	if len(avail) != 1 || avail[0].ID != waiting.ID {
		t.Fatalf("expected exactly the waiting multiplayer game, got %d results", len(avail))
	}
}

func TestListForPlayerFindsBothSlots(t *testing.T) {
	c := catalog.New()
	s := New()

	g, _ := engine.CreateGame(c, "p1", "solo-patrol", engine.Multiplayer, engine.Medium)
	s.Add(g)
	if _, err := g.JoinGame("p2"); err != nil {
		t.Fatalf("JoinGame: %v", err)
	}

	for _, pid := range []string{"p1", "p2"} {
		games := s.ListForPlayer(pid)
		if len(games) != 1 || games[0].ID != g.ID {
			t.Fatalf("expected ListForPlayer(%q) to find the game, got %d results", pid, len(games))
		}
	}

	if games := s.ListForPlayer("stranger"); len(games) != 0 {
		t.Fatalf("expected no games for an uninvolved player, got %d", len(games))
	}
}

func TestCount(t *testing.T) {
	c := catalog.New()
	s := New()
	if s.Count() != 0 {
		t.Fatalf("expected empty store to count 0")
	}
	s.Add(newGame(t, c, "p1", engine.SinglePlayer))
	s.Add(newGame(t, c, "p2", engine.SinglePlayer))
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
}
