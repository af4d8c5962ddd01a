package engine

import (
	"github.com/drawlo/battleship-engine/internal/bst"
	"github.com/drawlo/battleship-engine/internal/codec"
)

// Board is one player's grid: which cells their ships occupy, and which
// cells they have fired at on the opponent's grid. Occupied maps a
// coordinate code to the index (into the owning fleet.Tree's Ships()
// slice) of the ship covering it, resolving "which ship was hit" in
// O(log n) without the BST owning a reference into the fleet tree.
type Board struct {
	Size       int
	Occupied   *bst.Tree
	ShotsFired *bst.Tree
}

func newBoard(size int) *Board {
	return &Board{
		Size:       size,
		Occupied:   bst.New(),
		ShotsFired: bst.New(),
	}
}

// shipSpec is the blueprint for one required ship: a template's name/size
// paired with a placement index that disambiguates repeated templates in
// the same fleet.
type shipSpec struct {
	TemplateID     string
	Name           string
	Size           int
	PlacementIndex int
}

// requiredShip tracks one shipSpec's placement progress for a specific
// player.
type requiredShip struct {
	shipSpec
	Placed bool
}

func cloneRequiredShips(specs []shipSpec) []requiredShip {
	out := make([]requiredShip, len(specs))
	for i, s := range specs {
		out[i] = requiredShip{shipSpec: s}
	}
	return out
}

func minShipSize(specs []shipSpec) int {
	min := 0
	for _, s := range specs {
		if min == 0 || s.Size < min {
			min = s.Size
		}
	}
	if min == 0 {
		min = 1
	}
	return min
}

// segmentsFor computes the coordinate codes a ship of the given size would
// occupy starting at (row, col) in the given orientation, validating that
// every segment stays in bounds.
func segmentsFor(row, col, size, boardSize int, orientation Orientation) ([]codec.Code, error) {
	codes := make([]codec.Code, size)
	for i := 0; i < size; i++ {
		r, c := row, col
		if orientation == Horizontal {
			c += i
		} else {
			r += i
		}
		code, err := codec.Encode(r, c, boardSize)
		if err != nil {
			return nil, ErrOutOfBounds
		}
		codes[i] = code
	}
	return codes, nil
}
