// Package catalog is a production stand-in for the admin collaborator spec.md
// excludes: a read-only seed of ship templates and base fleets satisfying
// engine.Catalog, so CreateGame has something real to snapshot from.
package catalog

import "github.com/drawlo/battleship-engine/internal/engine"

// Seed is an in-memory, read-only engine.Catalog loaded once at process
// startup. It never changes after construction, so it needs no locking —
// the engine only ever reads from it at CreateGame time.
type Seed struct {
	templates map[string]engine.ShipTemplate
	fleets    map[string]engine.BaseFleet
}

// New returns a Seed pre-populated with the classic five-ship fleet plus a
// couple of smaller variants useful for quick matches and demos.
func New() *Seed {
	s := &Seed{
		templates: map[string]engine.ShipTemplate{},
		fleets:    map[string]engine.BaseFleet{},
	}

	s.addTemplate("carrier", "Carrier", 5)
	s.addTemplate("battleship", "Battleship", 4)
	s.addTemplate("cruiser", "Cruiser", 3)
	s.addTemplate("submarine", "Submarine", 3)
	s.addTemplate("destroyer", "Destroyer", 2)
	s.addTemplate("patrol-boat", "Patrol Boat", 2)

	s.addFleet("classic", 10, "carrier", "battleship", "cruiser", "submarine", "destroyer")
	s.addFleet("skirmish", 8, "cruiser", "destroyer", "destroyer")
	s.addFleet("solo-patrol", 10, "patrol-boat")

	return s
}

func (s *Seed) addTemplate(id, name string, size int) {
	s.templates[id] = engine.ShipTemplate{ID: id, Name: name, Size: size}
}

func (s *Seed) addFleet(id string, boardSize int, templateIDs ...string) {
	s.fleets[id] = engine.BaseFleet{ID: id, BoardSize: boardSize, ShipTemplateIDs: templateIDs}
}

// ShipTemplate implements engine.Catalog.
func (s *Seed) ShipTemplate(id string) (engine.ShipTemplate, bool) {
	t, ok := s.templates[id]
	return t, ok
}

// BaseFleet implements engine.Catalog.
func (s *Seed) BaseFleet(id string) (engine.BaseFleet, bool) {
	f, ok := s.fleets[id]
	return f, ok
}

// BaseFleets returns every registered fleet, for listing in a
// "new game" UI or CLI flag completion.
func (s *Seed) BaseFleets() []engine.BaseFleet {
	out := make([]engine.BaseFleet, 0, len(s.fleets))
	for _, f := range s.fleets {
		out = append(out, f)
	}
	return out
}
