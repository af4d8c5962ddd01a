package engine

import (
	"math/rand"

	"github.com/drawlo/battleship-engine/internal/codec"
	"github.com/drawlo/battleship-engine/internal/fleet"
)

// Difficulty tunes how aggressively the AI exploits a pending hit and how
// it searches when it has none, layered on top of the hunt/target
// heuristic: easy never targets, medium targets most of the time, hard
// always targets and uses a parity filter while hunting.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// ParseDifficulty accepts the three wire values, defaulting to Medium for
// anything else (including empty string), so omitting a difficulty at
// CreateGame is a valid, non-error choice.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// aiMode is the AI's current search phase.
type aiMode int

const (
	hunt aiMode = iota
	target
)

// aiState is the server-resident opponent's scratch state: a record on the
// Game, not a separate actor, so the whole player-shot/AI-reply sequence
// runs synchronously inside one lock hold.
type aiState struct {
	lastHits   []codec.Code
	mode       aiMode
	difficulty Difficulty
	minShip    int
}

func newAIState(d Difficulty) *aiState {
	return &aiState{mode: hunt, difficulty: d}
}

// onResult updates AI state after the AI's own shot resolves.
func (a *aiState) onResult(code codec.Code, result ShotResult) {
	switch result {
	case Hit:
		a.lastHits = append(a.lastHits, code)
		a.mode = target
	case Sunk:
		a.lastHits = nil
		a.mode = hunt
	case Water:
		// remain in current mode
	}
}

const maxPlacementAttempts = 1000

// autoPlaceFleet places every ship in specs onto board/fleetTree at a
// uniformly random, non-overlapping, in-bounds position. It caps retries
// per ship at maxPlacementAttempts and surfaces PlacementImpossible if
// exhausted — base fleets are constrained to <=80% board occupancy
// precisely so this should not happen.
func autoPlaceFleet(board *Board, fleetTree *fleet.Tree, specs []shipSpec, boardSize int) error {
	for _, spec := range specs {
		placed := false
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			orientation := Horizontal
			if rand.Intn(2) == 1 {
				orientation = Vertical
			}
			maxRow, maxCol := boardSize, boardSize
			if orientation == Horizontal {
				maxCol = boardSize - spec.Size + 1
			} else {
				maxRow = boardSize - spec.Size + 1
			}
			if maxRow < 1 || maxCol < 1 {
				continue
			}
			row := 1 + rand.Intn(maxRow)
			col := 1 + rand.Intn(maxCol)

			codes, err := segmentsFor(row, col, spec.Size, boardSize, orientation)
			if err != nil {
				continue
			}
			if anyOccupied(board, codes) {
				continue
			}

			shipIndex := fleetTree.ShipCount()
			for _, c := range codes {
				board.Occupied.Insert(c, shipIndex)
			}
			fleetTree.AddShip(spec.TemplateID, spec.Name, spec.Size, spec.PlacementIndex, codes)
			placed = true
			break
		}
		if !placed {
			return ErrPlacementImpossible
		}
	}
	return nil
}

func anyOccupied(board *Board, codes []codec.Code) bool {
	for _, c := range codes {
		if board.Occupied.Contains(c) {
			return true
		}
	}
	return false
}

// chooseShot picks the AI's next coordinate code, filtering candidates
// against board (the AI's own board, holding the shots it has already
// fired), given the AI's current state and difficulty.
func (a *aiState) chooseShot(board *Board, boardSize int) codec.Code {
	useTarget := false
	switch a.difficulty {
	case Easy:
		useTarget = false
	case Hard:
		useTarget = len(a.lastHits) > 0
	default: // Medium
		useTarget = len(a.lastHits) > 0 && rand.Float64() < 0.7
	}

	if useTarget {
		if c, ok := a.targetCandidate(board, boardSize); ok {
			return c
		}
		a.mode = hunt
	}

	if a.difficulty == Hard {
		if c, ok := a.checkerboardCandidate(board, boardSize); ok {
			return c
		}
	}
	return a.randomCandidate(board, boardSize)
}

// targetCandidate generates 4-neighbors of recent hits that haven't been
// shot yet. When two or more hits share a row or column, candidates are
// restricted to extensions along that line.
func (a *aiState) targetCandidate(board *Board, boardSize int) (codec.Code, bool) {
	if len(a.lastHits) == 0 {
		return 0, false
	}

	line, haveLine := sharedLine(a.lastHits, boardSize)

	var candidates []codec.Code
	for _, hitCode := range a.lastHits {
		row, col := codec.Decode(hitCode)
		for _, d := range [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			nr, nc := row+d[0], col+d[1]
			if nr < 1 || nr > boardSize || nc < 1 || nc > boardSize {
				continue
			}
			if haveLine && !line.contains(nr, nc) {
				continue
			}
			code, err := codec.Encode(nr, nc, boardSize)
			if err != nil {
				continue
			}
			if board.ShotsFired.Contains(code) {
				continue
			}
			candidates = append(candidates, code)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[rand.Intn(len(candidates))], true
}

// axisLine describes the shared row or column two or more pending hits lie
// on, so target-mode candidates can be restricted to extensions of it.
type axisLine struct {
	vertical bool // true: shared column (extend up/down); false: shared row
	value    int  // the shared row or column number
}

func (l axisLine) contains(row, col int) bool {
	if l.vertical {
		return col == l.value
	}
	return row == l.value
}

func sharedLine(hits []codec.Code, boardSize int) (axisLine, bool) {
	if len(hits) < 2 {
		return axisLine{}, false
	}
	firstRow, firstCol := codec.Decode(hits[0])
	sameRow, sameCol := true, true
	for _, h := range hits[1:] {
		r, c := codec.Decode(h)
		if r != firstRow {
			sameRow = false
		}
		if c != firstCol {
			sameCol = false
		}
	}
	switch {
	case sameRow:
		return axisLine{vertical: false, value: firstRow}, true
	case sameCol:
		return axisLine{vertical: true, value: firstCol}, true
	default:
		return axisLine{}, false
	}
}

// checkerboardCandidate restricts hunt-mode shots to cells where no ship
// can evade detection: (row+col) % minShipSize == 0. minShip is set from
// the fleet's smallest ship at CreateGame; 2 is used when it is unset.
func (a *aiState) checkerboardCandidate(board *Board, boardSize int) (codec.Code, bool) {
	minShip := a.minShip
	if minShip < 1 {
		minShip = 2
	}
	var candidates []codec.Code
	for row := 1; row <= boardSize; row++ {
		for col := 1; col <= boardSize; col++ {
			if (row+col)%minShip != 0 {
				continue
			}
			code, _ := codec.Encode(row, col, boardSize)
			if !board.ShotsFired.Contains(code) {
				candidates = append(candidates, code)
			}
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[rand.Intn(len(candidates))], true
}

func (a *aiState) randomCandidate(board *Board, boardSize int) codec.Code {
	var candidates []codec.Code
	for row := 1; row <= boardSize; row++ {
		for col := 1; col <= boardSize; col++ {
			code, _ := codec.Encode(row, col, boardSize)
			if !board.ShotsFired.Contains(code) {
				candidates = append(candidates, code)
			}
		}
	}
	if len(candidates) == 0 {
		// Every cell has been shot; the caller should have already
		// terminated the game. Returning an already-shot code here would
		// violate Shoot's AlreadyShot precondition, so this is a fatal
		// invariant violation rather than a normal outcome.
		panic("engine: AI has no remaining cells to shoot")
	}
	return candidates[rand.Intn(len(candidates))]
}
