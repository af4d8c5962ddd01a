package engine

import (
	"time"

	"github.com/drawlo/battleship-engine/internal/codec"
	"github.com/drawlo/battleship-engine/internal/fleet"
)

// ShotOutcome is the result of a Shoot call: the shooter's own shot, plus
// — in single-player mode, when the game didn't just end — the AI's
// synchronous reply.
type ShotOutcome struct {
	Shot         Shot
	GameFinished bool
	WinnerID     string
	AIShot       *Shot
}

func isTurnPhase(s Status) bool {
	return s == StatusPlayer1Turn || s == StatusPlayer2Turn
}

// Shoot resolves shooterID's shot at coordinate against the opponent's
// board, appends it to history, checks for a completed fleet, and — in
// single-player mode, if the game isn't already over — immediately
// computes and resolves the AI's reply inside the same lock hold.
func (g *Game) Shoot(shooterID, coordinate string) (ShotOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isParticipant(shooterID) {
		return ShotOutcome{}, ErrUnauthorized
	}
	if !isTurnPhase(g.Status) {
		return ShotOutcome{}, newErr(KindWrongPhase, "game is not accepting shots")
	}
	if g.CurrentTurnPlayerID != shooterID {
		return ShotOutcome{}, ErrNotYourTurn
	}

	row, col, err := codec.Parse(coordinate)
	if err != nil {
		return ShotOutcome{}, ErrMalformedCoordinate
	}
	code, err := codec.Encode(row, col, g.BoardSize)
	if err != nil {
		return ShotOutcome{}, ErrOutOfBounds
	}

	shooterBoard := g.boards[shooterID]
	if shooterBoard.ShotsFired.Contains(code) {
		return ShotOutcome{}, ErrAlreadyShot
	}

	opponentID := g.opponentOf(shooterID)
	shot := g.resolveShot(shooterID, opponentID, codec.Format(row, col), code)

	outcome := ShotOutcome{Shot: shot}

	if g.fleets[opponentID].AllSunk() {
		g.finish(shooterID)
		outcome.GameFinished = true
		outcome.WinnerID = shooterID
		return outcome, nil
	}

	g.passTurn(opponentID)

	if g.Mode == SinglePlayer && opponentID == AIPlayerID {
		aiShot := g.aiTakeShot()
		outcome.AIShot = &aiShot
		if g.fleets[g.Player1ID].AllSunk() {
			g.finish(AIPlayerID)
			outcome.GameFinished = true
			outcome.WinnerID = AIPlayerID
			return outcome, nil
		}
		g.passTurn(g.Player1ID)
	}

	return outcome, nil
}

// resolveShot applies one shot by shooterID against opponentID's board and
// fleet, records it in history, and returns the recorded Shot.
func (g *Game) resolveShot(shooterID, opponentID, coordinate string, code codec.Code) Shot {
	shooterBoard := g.boards[shooterID]
	opponentBoard := g.boards[opponentID]
	opponentFleet := g.fleets[opponentID]

	var result ShotResult
	var shipName string
	var shipSunk bool

	if shipIndex, occupied := opponentBoard.Occupied.Lookup(code); occupied {
		_, sunk := opponentFleet.MarkHit(code)
		if sunk != opponentFleet.IsSunk(code) {
			panic("engine: fleet tree disagreement on sunk state for " + coordinate)
		}
		shipSunk = sunk
		if sunk {
			result = Sunk
		} else {
			result = Hit
		}
		shipName = shipNameAt(opponentFleet, shipIndex.(int))
	} else {
		result = Water
	}

	shooterBoard.ShotsFired.Insert(code, result)

	shot := Shot{
		Index:      len(g.ShotsHistory),
		Coordinate: coordinate,
		Code:       code,
		Result:     result,
		ShipHit:    shipName,
		ShipSunk:   shipSunk,
		ShooterID:  shooterID,
		Timestamp:  time.Now(),
	}
	g.ShotsHistory = append(g.ShotsHistory, shot)

	if shooterID == AIPlayerID {
		g.aiState.onResult(code, result)
	}

	return shot
}

func shipNameAt(f *fleet.Tree, shipIndex int) string {
	ships := f.Ships()
	if shipIndex < 0 || shipIndex >= len(ships) {
		return ""
	}
	return ships[shipIndex].Ship.Name
}

func (g *Game) aiTakeShot() Shot {
	aiBoard := g.boards[AIPlayerID]
	code := g.aiState.chooseShot(aiBoard, g.BoardSize)
	row, col := codec.Decode(code)
	coordinate := codec.Format(row, col)
	return g.resolveShot(AIPlayerID, g.Player1ID, coordinate, code)
}

func (g *Game) passTurn(nextPlayerID string) {
	g.CurrentTurnPlayerID = nextPlayerID
	if nextPlayerID == g.Player1ID {
		g.Status = StatusPlayer1Turn
	} else {
		g.Status = StatusPlayer2Turn
	}
}

func (g *Game) finish(winnerID string) {
	g.WinnerID = winnerID
	g.FinishedAt = time.Now()
	if winnerID == g.Player1ID {
		g.Status = StatusPlayer1Won
	} else {
		g.Status = StatusPlayer2Won
	}
}
