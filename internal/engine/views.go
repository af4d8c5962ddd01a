package engine

import (
	"time"

	"github.com/drawlo/battleship-engine/internal/codec"
	"github.com/drawlo/battleship-engine/internal/fleet"
)

// ShipView is the redacted view of a single ship: coordinates and hit
// state are only ever present for the observer's own ships, or for an
// opponent ship once it has been fully sunk.
type ShipView struct {
	Name     string
	Size     int
	Sunk     bool
	Revealed bool
	Segments []SegmentView
}

// SegmentView is one cell of a ShipView.
type SegmentView struct {
	Coordinate string
	Hit        bool
}

// ShotView is one shot's public coordinate and result.
type ShotView struct {
	Coordinate string
	Result     ShotResult
}

// GameView is the redacted snapshot GetView returns: the observer's own
// fleet in full, the opponent's fleet with unsunk ships hidden, and both
// sides' shot records.
type GameView struct {
	ID                  string
	Status              Status
	BoardSize           int
	Mode                Mode
	CurrentTurnPlayerID string
	WinnerID            string
	OwnShips            []ShipView
	OwnShotsFired       []ShotView
	OpponentShots       []ShotView
	OpponentShips       []ShipView
}

// GetView returns observerID's redacted snapshot: their own ships in full,
// their own and the opponent's shots, and the opponent's ships revealed
// only once sunk.
func (g *Game) GetView(observerID string) (GameView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isParticipant(observerID) {
		return GameView{}, ErrUnauthorized
	}
	return g.viewLocked(observerID), nil
}

func (g *Game) viewLocked(observerID string) GameView {
	opponentID := g.opponentOf(observerID)

	view := GameView{
		ID:                  g.ID,
		Status:              g.Status,
		BoardSize:           g.BoardSize,
		Mode:                g.Mode,
		CurrentTurnPlayerID: g.CurrentTurnPlayerID,
		WinnerID:            g.WinnerID,
	}

	if ownFleet, ok := g.fleets[observerID]; ok {
		view.OwnShips = shipViews(ownFleet, true)
	}
	if ownBoard, ok := g.boards[observerID]; ok {
		view.OwnShotsFired = shotViews(ownBoard.ShotsFired)
	}
	if opponentID != "" {
		if opponentBoard, ok := g.boards[opponentID]; ok {
			view.OpponentShots = shotViews(opponentBoard.ShotsFired)
		}
		if opponentFleet, ok := g.fleets[opponentID]; ok {
			view.OpponentShips = shipViews(opponentFleet, false)
		}
	}

	return view
}

func shipViews(f *fleet.Tree, reveal bool) []ShipView {
	ships := f.Ships()
	out := make([]ShipView, len(ships))
	for i, s := range ships {
		out[i] = ShipView{
			Name:     s.Ship.Name,
			Size:     s.Ship.Size,
			Sunk:     s.Sunk,
			Revealed: reveal || s.Sunk,
		}
		if !out[i].Revealed {
			continue
		}
		out[i].Segments = make([]SegmentView, len(s.Segments))
		for j, seg := range s.Segments {
			row, col := codec.Decode(seg.Code)
			out[i].Segments[j] = SegmentView{Coordinate: codec.Format(row, col), Hit: seg.Hit}
		}
	}
	return out
}

func shotViews(tree interface {
	InOrder() []codec.Code
	Lookup(codec.Code) (any, bool)
}) []ShotView {
	codes := tree.InOrder()
	out := make([]ShotView, 0, len(codes))
	for _, c := range codes {
		v, _ := tree.Lookup(c)
		row, col := codec.Decode(c)
		out = append(out, ShotView{Coordinate: codec.Format(row, col), Result: v.(ShotResult)})
	}
	return out
}

// Stats is the derived per-observer scoreboard GetStats returns.
type Stats struct {
	TotalShots      int
	Hits            int
	Misses          int
	Accuracy        float64
	EnemyShipsSunk  int
	OwnShipsSunk    int
	DurationSeconds float64
}

// GetStats returns observerID's derived statistics for the game.
func (g *Game) GetStats(observerID string) (Stats, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isParticipant(observerID) {
		return Stats{}, ErrUnauthorized
	}

	opponentID := g.opponentOf(observerID)
	ownBoard := g.boards[observerID]

	hits, misses := 0, 0
	for _, c := range ownBoard.ShotsFired.InOrder() {
		v, _ := ownBoard.ShotsFired.Lookup(c)
		if v.(ShotResult) == Water {
			misses++
		} else {
			hits++
		}
	}
	total := hits + misses

	var accuracy float64
	if total > 0 {
		accuracy = float64(hits) / float64(total)
	}

	var duration float64
	if !g.StartedAt.IsZero() {
		end := g.FinishedAt
		if end.IsZero() {
			end = time.Now()
		}
		duration = end.Sub(g.StartedAt).Seconds()
	}

	stats := Stats{
		TotalShots:      total,
		Hits:            hits,
		Misses:          misses,
		Accuracy:        accuracy,
		OwnShipsSunk:    g.fleets[observerID].SunkShipCount(),
		DurationSeconds: duration,
	}
	if opponentID != "" {
		stats.EnemyShipsSunk = g.fleets[opponentID].SunkShipCount()
	}
	return stats, nil
}

// GetShots returns a defensive copy of the game's append-only shot
// history, visible to either participant.
func (g *Game) GetShots(observerID string) ([]Shot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isParticipant(observerID) {
		return nil, ErrUnauthorized
	}
	out := make([]Shot, len(g.ShotsHistory))
	copy(out, g.ShotsHistory)
	return out, nil
}
