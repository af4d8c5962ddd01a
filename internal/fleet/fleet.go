// Package fleet implements the first-child/next-sibling n-ary tree that
// tracks one player's ships and their segment-level hit state: a player
// node's first child is its first ship, a ship's first child is its first
// segment, and siblings chain via next pointers.
package fleet

import "github.com/drawlo/battleship-engine/internal/codec"

// Segment is one cell of a ship.
type Segment struct {
	Code codec.Code
	Hit  bool
}

// Ship is one placed ship: a run of segments plus the metadata needed to
// describe it back to a client.
type Ship struct {
	TemplateID     string
	Name           string
	Size           int
	PlacementIndex int
	firstSegment   *segmentNode
}

// segmentNode is the tree representation of a Segment, chained via next to
// its sibling segments within the same ship.
type segmentNode struct {
	seg  Segment
	next *segmentNode
}

// shipNode is the tree representation of a Ship, chained via next to its
// sibling ships within the same player, with ship.firstSegment pointing at
// its first segment.
type shipNode struct {
	ship Ship
	next *shipNode
}

// Tree is the fleet tree rooted at a single player: its first child is the
// first ship added, and ships chain as siblings in addition order.
type Tree struct {
	firstShip *shipNode
	shipCount int
}

// New returns an empty fleet tree.
func New() *Tree {
	return &Tree{}
}

// AddShip appends a new ship as the last sibling in the ship chain, with
// segment children created in coordinate order.
func (t *Tree) AddShip(templateID, name string, size, placementIndex int, segmentCodes []codec.Code) {
	sn := &shipNode{ship: Ship{
		TemplateID:     templateID,
		Name:           name,
		Size:           size,
		PlacementIndex: placementIndex,
	}}

	var prev *segmentNode
	for _, c := range segmentCodes {
		s := &segmentNode{seg: Segment{Code: c}}
		if prev == nil {
			sn.ship.firstSegment = s
		} else {
			prev.next = s
		}
		prev = s
	}

	if t.firstShip == nil {
		t.firstShip = sn
	} else {
		cur := t.firstShip
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = sn
	}
	t.shipCount++
}

// MarkHit walks every ship, then every segment of that ship, looking for
// code. If found, it sets the segment's hit flag (a no-op if already set)
// and reports whether the owning ship is now fully hit. If no ship
// contains code, it reports (false, false).
func (t *Tree) MarkHit(code codec.Code) (shipFound, shipNowSunk bool) {
	for sn := t.firstShip; sn != nil; sn = sn.next {
		found := false
		for seg := sn.ship.firstSegment; seg != nil; seg = seg.next {
			if seg.seg.Code == code {
				seg.seg.Hit = true
				found = true
				break
			}
		}
		if found {
			return true, shipAllHit(sn)
		}
	}
	return false, false
}

func shipAllHit(sn *shipNode) bool {
	for seg := sn.ship.firstSegment; seg != nil; seg = seg.next {
		if !seg.seg.Hit {
			return false
		}
	}
	return true
}

// IsSunk reports whether the ship owning code is fully hit. It is a
// read-only variant of the check MarkHit performs, used by callers that
// already know a hit occurred and just need the derived sunk state.
func (t *Tree) IsSunk(code codec.Code) bool {
	for sn := t.firstShip; sn != nil; sn = sn.next {
		for seg := sn.ship.firstSegment; seg != nil; seg = seg.next {
			if seg.seg.Code == code {
				return shipAllHit(sn)
			}
		}
	}
	return false
}

// AliveShipCount returns the number of ships with at least one unhit
// segment.
func (t *Tree) AliveShipCount() int {
	n := 0
	for sn := t.firstShip; sn != nil; sn = sn.next {
		if !shipAllHit(sn) {
			n++
		}
	}
	return n
}

// SunkShipCount returns the number of ships with every segment hit.
func (t *Tree) SunkShipCount() int {
	return t.shipCount - t.AliveShipCount()
}

// AllSunk reports whether every ship in the tree is fully hit. A tree with
// no ships is not considered all-sunk.
func (t *Tree) AllSunk() bool {
	if t.shipCount == 0 {
		return false
	}
	return t.AliveShipCount() == 0
}

// ShipCount returns the total number of ships added to the tree.
func (t *Tree) ShipCount() int {
	return t.shipCount
}

// Ships returns a snapshot of every ship with its segments, in addition
// order, for use by views and stats that need to walk the whole fleet.
func (t *Tree) Ships() []ShipView {
	out := make([]ShipView, 0, t.shipCount)
	for sn := t.firstShip; sn != nil; sn = sn.next {
		v := ShipView{Ship: sn.ship, Sunk: shipAllHit(sn)}
		for seg := sn.ship.firstSegment; seg != nil; seg = seg.next {
			v.Segments = append(v.Segments, seg.seg)
		}
		out = append(out, v)
	}
	return out
}

// ShipView is a read-only snapshot of a ship and its segments.
type ShipView struct {
	Ship     Ship
	Segments []Segment
	Sunk     bool
}
