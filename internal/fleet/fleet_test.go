package fleet

import (
	"testing"

	"github.com/drawlo/battleship-engine/internal/codec"
)

func codes(ints ...int) []codec.Code {
	out := make([]codec.Code, len(ints))
	for i, v := range ints {
		out[i] = codec.Code(v)
	}
	return out
}

func TestMarkHitIdempotent(t *testing.T) {
	tr := New()
	tr.AddShip("patrol", "Patrol", 2, 0, codes(101, 102))

	found1, sunk1 := tr.MarkHit(101)
	found2, sunk2 := tr.MarkHit(101)

	if !found1 || !found2 {
		t.Fatalf("expected both calls to find the segment")
	}
	if sunk1 != sunk2 {
		t.Fatalf("expected idempotent sunk result, got %v then %v", sunk1, sunk2)
	}
	if sunk1 {
		t.Fatalf("ship should not be sunk after only one segment hit")
	}
}

func TestShipSunkIffAllSegmentsHit(t *testing.T) {
	tr := New()
	tr.AddShip("destroyer", "Destroyer", 3, 0, codes(101, 102, 103))

	if _, sunk := tr.MarkHit(101); sunk {
		t.Fatalf("ship should not be sunk after 1/3 hits")
	}
	if _, sunk := tr.MarkHit(102); sunk {
		t.Fatalf("ship should not be sunk after 2/3 hits")
	}
	_, sunk := tr.MarkHit(103)
	if !sunk {
		t.Fatalf("ship should be sunk after 3/3 hits")
	}
}

func TestMarkHitMiss(t *testing.T) {
	tr := New()
	tr.AddShip("patrol", "Patrol", 2, 0, codes(101, 102))
	found, sunk := tr.MarkHit(999)
	if found || sunk {
		t.Fatalf("expected (false, false) for code not on any ship, got (%v, %v)", found, sunk)
	}
}

func TestAllSunk(t *testing.T) {
	tr := New()
	tr.AddShip("patrol", "Patrol", 2, 0, codes(101, 102))
	tr.AddShip("sub", "Submarine", 1, 0, codes(201))

	if tr.AllSunk() {
		t.Fatalf("expected AllSunk() = false before any hits")
	}
	tr.MarkHit(101)
	tr.MarkHit(102)
	if tr.AllSunk() {
		t.Fatalf("expected AllSunk() = false with one ship still alive")
	}
	tr.MarkHit(201)
	if !tr.AllSunk() {
		t.Fatalf("expected AllSunk() = true once every segment is hit")
	}
}

func TestAliveAndSunkShipCounts(t *testing.T) {
	tr := New()
	tr.AddShip("patrol", "Patrol", 2, 0, codes(101, 102))
	tr.AddShip("sub", "Submarine", 1, 0, codes(201))
	tr.AddShip("cruiser", "Cruiser", 3, 0, codes(301, 302, 303))

	tr.MarkHit(201)

	if tr.SunkShipCount() != 1 {
		t.Fatalf("SunkShipCount() = %d, want 1", tr.SunkShipCount())
	}
	if tr.AliveShipCount() != 2 {
		t.Fatalf("AliveShipCount() = %d, want 2", tr.AliveShipCount())
	}
}

func TestAddShipPreservesAdditionOrder(t *testing.T) {
	tr := New()
	tr.AddShip("a", "A", 1, 0, codes(101))
	tr.AddShip("b", "B", 1, 0, codes(102))
	tr.AddShip("c", "C", 1, 0, codes(103))

	ships := tr.Ships()
	if len(ships) != 3 {
		t.Fatalf("len(Ships()) = %d, want 3", len(ships))
	}
	want := []string{"A", "B", "C"}
	for i, w := range want {
		if ships[i].Ship.Name != w {
			t.Fatalf("Ships()[%d].Name = %q, want %q", i, ships[i].Ship.Name, w)
		}
	}
}
