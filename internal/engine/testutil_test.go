package engine

import "testing"

// testCatalog is a minimal in-memory Catalog for tests, grounded on the
// admin collaborator's read-only lookup contract (see SPEC_FULL.md section 6).
type testCatalog struct {
	templates map[string]ShipTemplate
	fleets    map[string]BaseFleet
}

func newTestCatalog() *testCatalog {
	return &testCatalog{
		templates: map[string]ShipTemplate{},
		fleets:    map[string]BaseFleet{},
	}
}

func (c *testCatalog) ShipTemplate(id string) (ShipTemplate, bool) {
	t, ok := c.templates[id]
	return t, ok
}

func (c *testCatalog) BaseFleet(id string) (BaseFleet, bool) {
	f, ok := c.fleets[id]
	return f, ok
}

func (c *testCatalog) addTemplate(id, name string, size int) {
	c.templates[id] = ShipTemplate{ID: id, Name: name, Size: size}
}

func (c *testCatalog) addFleet(id string, boardSize int, templateIDs ...string) {
	c.fleets[id] = BaseFleet{ID: id, BoardSize: boardSize, ShipTemplateIDs: templateIDs}
}

// patrolCatalog returns a catalog with a single 10x10 fleet containing one
// size-2 "Patrol" ship, matching the compact scenarios in spec.md section 8.
func patrolCatalog() *testCatalog {
	c := newTestCatalog()
	c.addTemplate("patrol", "Patrol", 2)
	c.addFleet("patrol-fleet", 10, "patrol")
	return c
}

// twoPatrolCatalog is patrolCatalog with two Patrol ships, for exercising
// placementIndex disambiguation and overlap.
func twoPatrolCatalog() *testCatalog {
	c := newTestCatalog()
	c.addTemplate("patrol", "Patrol", 2)
	c.addFleet("two-patrol-fleet", 10, "patrol", "patrol")
	return c
}

// classicCatalog mirrors a standard Battleship fleet on a 10x10 board.
func classicCatalog() *testCatalog {
	c := newTestCatalog()
	c.addTemplate("carrier", "Carrier", 5)
	c.addTemplate("battleship", "Battleship", 4)
	c.addTemplate("cruiser", "Cruiser", 3)
	c.addTemplate("submarine", "Submarine", 3)
	c.addTemplate("destroyer", "Destroyer", 2)
	c.addFleet("classic", 10, "carrier", "battleship", "cruiser", "submarine", "destroyer")
	return c
}

// aiShipCoords returns the cells of the AI's first ship in a single-player
// game. The AI places its fleet at random, so tests that need to hit it
// look its cells up instead of assuming them.
func aiShipCoords(t *testing.T, g *Game) []string {
	t.Helper()
	view, err := g.GetView(AIPlayerID)
	if err != nil {
		t.Fatalf("GetView(%s): %v", AIPlayerID, err)
	}
	segs := view.OwnShips[0].Segments
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Coordinate
	}
	return out
}

// waterCoord returns the first candidate cell that no AI ship covers.
func waterCoord(t *testing.T, g *Game, candidates ...string) string {
	t.Helper()
	view, err := g.GetView(AIPlayerID)
	if err != nil {
		t.Fatalf("GetView(%s): %v", AIPlayerID, err)
	}
	covered := map[string]bool{}
	for _, s := range view.OwnShips {
		for _, seg := range s.Segments {
			covered[seg.Coordinate] = true
		}
	}
	for _, c := range candidates {
		if !covered[c] {
			return c
		}
	}
	t.Fatalf("every candidate cell is covered by an AI ship")
	return ""
}
