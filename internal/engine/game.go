// Package engine implements the Battleship game state machine: placement
// validation, turn ordering, shot resolution, the AI opponent, and the
// per-game concurrency gate described by the specification this module
// implements. It has no knowledge of HTTP, storage, or auth — those are
// external collaborators that call into a *Game through its exported
// methods while holding nothing but a player id string.
package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drawlo/battleship-engine/internal/codec"
	"github.com/drawlo/battleship-engine/internal/fleet"
)

// Mode selects whether a Game is played against the server-resident AI or
// against a second human player polling the same game over HTTP.
type Mode int

const (
	SinglePlayer Mode = iota
	Multiplayer
)

// Orientation is the direction a ship extends from its start coordinate.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// ParseOrientation accepts the two wire values "horizontal" and "vertical".
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "horizontal":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	default:
		return 0, false
	}
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ShotResult is the outcome of a single shot against a board.
type ShotResult int

const (
	Water ShotResult = iota
	Hit
	Sunk
)

func (r ShotResult) String() string {
	switch r {
	case Hit:
		return "hit"
	case Sunk:
		return "sunk"
	default:
		return "water"
	}
}

// Status is the wire-facing lifecycle state of a Game. The reference HTTP
// mapping names ten status strings; these are the eight the engine
// produces. "in_progress" and "finished" are coarser aliases this
// implementation never produces (see DESIGN.md).
type Status string

const (
	StatusWaitingForPlayer2 Status = "waiting_for_player2"
	StatusPlacingShips      Status = "placing_ships"
	StatusPlayer1Setup      Status = "player1_setup"
	StatusPlayer2Setup      Status = "player2_setup"
	StatusPlayer1Turn       Status = "player1_turn"
	StatusPlayer2Turn       Status = "player2_turn"
	StatusPlayer1Won        Status = "player1_won"
	StatusPlayer2Won        Status = "player2_won"
)

// AIPlayerID is the player id the engine uses for the server-resident AI's
// slot in a single-player Game, so boards, fleets, and turn bookkeeping
// can treat the AI uniformly with a human opponent.
const AIPlayerID = "ai"

// Shot is one append-only entry in a Game's history.
type Shot struct {
	Index      int
	Coordinate string
	Code       codec.Code
	Result     ShotResult
	ShipHit    string // ship name, empty on a water shot
	ShipSunk   bool
	ShooterID  string
	Timestamp  time.Time
}

// Game is one in-progress or finished match. All exported methods acquire
// mu for their full duration, including the AI's follow-up shot in
// single-player mode, so a shot/AI-reply pair is always atomic.
type Game struct {
	mu sync.Mutex

	ID          string
	BoardSize   int
	BaseFleetID string
	Mode        Mode
	Player1ID   string
	Player2ID   string
	Status      Status

	shipSpecs     []shipSpec
	requiredShips map[string][]requiredShip
	shipsToPlace  map[string]int
	boards        map[string]*Board
	fleets        map[string]*fleet.Tree

	ShotsHistory        []Shot
	CurrentTurnPlayerID string
	WinnerID            string
	CreatedAt           time.Time
	StartedAt           time.Time
	FinishedAt          time.Time

	aiState *aiState
}

// CreateGame snapshots baseFleet's board size and ship list from catalog,
// allocates an empty board and fleet tree per player slot, and — in
// single-player mode — immediately auto-places the AI's fleet.
func CreateGame(catalog Catalog, creatorID, baseFleetID string, mode Mode, difficulty Difficulty) (*Game, error) {
	bf, ok := catalog.BaseFleet(baseFleetID)
	if !ok {
		return nil, newErr(KindNotFound, "base fleet not found: "+baseFleetID)
	}
	specs, err := validateFleet(catalog, bf)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	g := &Game{
		ID:            uuid.NewString(),
		BoardSize:     bf.BoardSize,
		BaseFleetID:   baseFleetID,
		Mode:          mode,
		Player1ID:     creatorID,
		shipSpecs:     specs,
		requiredShips: map[string][]requiredShip{},
		shipsToPlace:  map[string]int{},
		boards:        map[string]*Board{},
		fleets:        map[string]*fleet.Tree{},
		CreatedAt:     now,
	}
	g.initPlayerSlot(creatorID)

	switch mode {
	case SinglePlayer:
		g.Player2ID = AIPlayerID
		g.initPlayerSlot(AIPlayerID)
		if err := autoPlaceFleet(g.boards[AIPlayerID], g.fleets[AIPlayerID], specs, bf.BoardSize); err != nil {
			return nil, err
		}
		g.shipsToPlace[AIPlayerID] = 0
		g.aiState = newAIState(difficulty)
		g.aiState.minShip = minShipSize(specs)
		g.Status = StatusPlacingShips
	case Multiplayer:
		g.Status = StatusWaitingForPlayer2
	}

	return g, nil
}

func (g *Game) initPlayerSlot(playerID string) {
	g.requiredShips[playerID] = cloneRequiredShips(g.shipSpecs)
	g.shipsToPlace[playerID] = len(g.shipSpecs)
	g.boards[playerID] = newBoard(g.BoardSize)
	g.fleets[playerID] = fleet.New()
}

func (g *Game) isParticipant(playerID string) bool {
	return playerID == g.Player1ID || (g.Player2ID != "" && playerID == g.Player2ID)
}

func (g *Game) opponentOf(playerID string) string {
	if playerID == g.Player1ID {
		return g.Player2ID
	}
	return g.Player1ID
}

// Lock exposes the game's mutex to the store for operations (like delete)
// that need exclusive access without going through an engine method.
func (g *Game) Lock()   { g.mu.Lock() }
func (g *Game) Unlock() { g.mu.Unlock() }
