package engine

// ShipTemplate is the admin collaborator's read-only description of a ship
// a fleet can contain. The engine only ever reads it once, at CreateGame,
// and keeps its own copy of name/size thereafter.
type ShipTemplate struct {
	ID   string
	Name string
	Size int
}

// BaseFleet is the admin collaborator's read-only description of a fleet a
// game can be created with. ShipTemplateIDs may repeat (e.g. two
// destroyers), which is why placement disambiguates by PlacementIndex.
type BaseFleet struct {
	ID              string
	BoardSize       int
	ShipTemplateIDs []string
}

// Catalog is the read-only lookup interface the admin collaborator exposes.
// The engine never mutates it and never assumes it outlives a CreateGame
// call: everything it needs is snapshotted into the Game at creation time.
type Catalog interface {
	ShipTemplate(id string) (ShipTemplate, bool)
	BaseFleet(id string) (BaseFleet, bool)
}

// maxOccupancy is the fraction of a board's cells a fleet may occupy.
const maxOccupancy = 0.8

func validateFleet(catalog Catalog, bf BaseFleet) ([]shipSpec, error) {
	if bf.BoardSize < 5 || bf.BoardSize > 20 {
		return nil, newErr(KindInvalidFleet, "board size out of supported range")
	}

	specs := make([]shipSpec, 0, len(bf.ShipTemplateIDs))
	seenCount := map[string]int{}
	totalSize := 0

	for _, id := range bf.ShipTemplateIDs {
		tmpl, ok := catalog.ShipTemplate(id)
		if !ok {
			return nil, newErr(KindInvalidFleet, "unknown ship template: "+id)
		}
		idx := seenCount[id]
		seenCount[id] = idx + 1
		specs = append(specs, shipSpec{
			TemplateID:     tmpl.ID,
			Name:           tmpl.Name,
			Size:           tmpl.Size,
			PlacementIndex: idx,
		})
		totalSize += tmpl.Size
	}

	limit := int(float64(bf.BoardSize*bf.BoardSize) * maxOccupancy)
	if totalSize > limit {
		return nil, newErr(KindInvalidFleet, "fleet exceeds 80% board occupancy")
	}
	return specs, nil
}
