package engine

import (
	"time"

	"github.com/drawlo/battleship-engine/internal/codec"
)

// PlacementResult describes the outcome of a successful PlaceShip call.
type PlacementResult struct {
	TemplateID     string
	Name           string
	Size           int
	PlacementIndex int
	Segments       []string
	RemainingShips int
	Status         Status
}

func isPlacementPhase(s Status) bool {
	switch s {
	case StatusPlacingShips, StatusPlayer1Setup, StatusPlayer2Setup:
		return true
	default:
		return false
	}
}

// PlaceShip places the next unplaced ship from playerID's required list.
// templateID and placementIndex must identify that exact next ship — they
// exist so a client presenting two ships of the same template can say
// which one it means; the list order itself is otherwise authoritative.
func (g *Game) PlaceShip(playerID, templateID string, placementIndex int, start string, orientation Orientation) (PlacementResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isParticipant(playerID) {
		return PlacementResult{}, ErrUnauthorized
	}
	if !isPlacementPhase(g.Status) {
		return PlacementResult{}, newErr(KindWrongPhase, "game is not in a placement phase")
	}

	required := g.requiredShips[playerID]
	idx := nextUnplaced(required)
	if idx < 0 {
		return PlacementResult{}, newErr(KindWrongPhase, "player has no more ships to place")
	}
	next := required[idx]
	if next.TemplateID != templateID || next.PlacementIndex != placementIndex {
		return PlacementResult{}, newErr(KindWrongPhase, "ship does not match the next required placement")
	}

	row, col, err := codec.Parse(start)
	if err != nil {
		return PlacementResult{}, ErrMalformedCoordinate
	}

	codes, err := segmentsFor(row, col, next.Size, g.BoardSize, orientation)
	if err != nil {
		return PlacementResult{}, err
	}

	board := g.boards[playerID]
	if anyOccupied(board, codes) {
		return PlacementResult{}, ErrOverlap
	}

	shipIndex := g.fleets[playerID].ShipCount()
	for _, c := range codes {
		board.Occupied.Insert(c, shipIndex)
	}
	g.fleets[playerID].AddShip(next.TemplateID, next.Name, next.Size, next.PlacementIndex, codes)

	required[idx].Placed = true
	g.shipsToPlace[playerID]--

	g.advancePlacement()

	segs := make([]string, len(codes))
	for i, c := range codes {
		r, cc := codec.Decode(c)
		segs[i] = codec.Format(r, cc)
	}

	return PlacementResult{
		TemplateID:     next.TemplateID,
		Name:           next.Name,
		Size:           next.Size,
		PlacementIndex: next.PlacementIndex,
		Segments:       segs,
		RemainingShips: g.shipsToPlace[playerID],
		Status:         g.Status,
	}, nil
}

func nextUnplaced(required []requiredShip) int {
	for i, r := range required {
		if !r.Placed {
			return i
		}
	}
	return -1
}

// advancePlacement transitions Status once one or both players finish
// placing, per the state machine in spec.md section 4.4.2.
func (g *Game) advancePlacement() {
	if g.Mode == SinglePlayer {
		if g.shipsToPlace[g.Player1ID] == 0 {
			g.beginMatch()
		}
		return
	}

	p1Done := g.shipsToPlace[g.Player1ID] == 0
	p2Done := g.Player2ID != "" && g.shipsToPlace[g.Player2ID] == 0

	switch {
	case p1Done && p2Done:
		g.beginMatch()
	case p1Done:
		g.Status = StatusPlayer2Setup
	case p2Done:
		g.Status = StatusPlayer1Setup
	default:
		g.Status = StatusPlacingShips
	}
}

func (g *Game) beginMatch() {
	g.Status = StatusPlayer1Turn
	g.CurrentTurnPlayerID = g.Player1ID
	g.StartedAt = time.Now()
}
