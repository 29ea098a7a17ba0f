// Package catalog holds the static ship and building design definitions the
// modification engine and the resource simulation consult.
package catalog

import (
	"fmt"
	"sort"

	"starcore/pkg/domain"
)

// Design describes one buildable ship or building type. Ship designs carry
// movement characteristics; building designs leave them zero.
type Design struct {
	Type        domain.DesignType
	Kind        domain.DesignKind
	DisplayName string

	// Speed is in distance units per hour. Zero for buildings.
	Speed float64
	// FuelCostPerUnit is the energy debited per ship per unit of distance.
	FuelCostPerUnit float64

	// BuildCost drives build-request progress in the resource simulation.
	BuildCost float64
}

// Catalog is an immutable design lookup keyed by design type.
type Catalog struct {
	designs map[domain.DesignType]Design
}

// New builds a catalog from the given designs. Duplicate types are rejected.
func New(designs ...Design) (*Catalog, error) {
	byType := make(map[domain.DesignType]Design, len(designs))
	for _, d := range designs {
		if d.Type == "" {
			return nil, fmt.Errorf("catalog: design with empty type")
		}
		if _, exists := byType[d.Type]; exists {
			return nil, fmt.Errorf("catalog: duplicate design %q", d.Type)
		}
		if d.Kind != domain.KindShip && d.Kind != domain.KindBuilding {
			return nil, fmt.Errorf("catalog: design %q has unknown kind %q", d.Type, d.Kind)
		}
		if d.Kind == domain.KindShip && d.Speed <= 0 {
			return nil, fmt.Errorf("catalog: ship design %q has non-positive speed", d.Type)
		}
		byType[d.Type] = d
	}
	return &Catalog{designs: byType}, nil
}

// Get returns the design for the given type.
func (c *Catalog) Get(t domain.DesignType) (Design, bool) {
	d, ok := c.designs[t]
	return d, ok
}

// MustGet returns the design for the given type and panics when it is absent.
// Callers use it only after the modification has been validated against the
// catalog, so a miss is a programming error, not bad input.
func (c *Catalog) MustGet(t domain.DesignType) Design {
	d, ok := c.designs[t]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown design %q", t))
	}
	return d
}

// Designs returns all designs sorted by type for deterministic iteration.
func (c *Catalog) Designs() []Design {
	out := make([]Design, 0, len(c.designs))
	for _, d := range c.designs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Default returns the built-in design set.
func Default() *Catalog {
	c, err := New(
		Design{
			Type:            domain.DesignColonyShip,
			Kind:            domain.KindShip,
			DisplayName:     "Colony Ship",
			Speed:           16,
			FuelCostPerUnit: 10,
			BuildCost:       1000,
		},
		Design{
			Type:            domain.DesignScout,
			Kind:            domain.KindShip,
			DisplayName:     "Scout",
			Speed:           128,
			FuelCostPerUnit: 2,
			BuildCost:       50,
		},
		Design{
			Type:            domain.DesignFighter,
			Kind:            domain.KindShip,
			DisplayName:     "Fighter",
			Speed:           32,
			FuelCostPerUnit: 8,
			BuildCost:       100,
		},
		Design{
			Type:            domain.DesignTroopCarrier,
			Kind:            domain.KindShip,
			DisplayName:     "Troop Carrier",
			Speed:           16,
			FuelCostPerUnit: 12,
			BuildCost:       200,
		},
		Design{
			Type:        domain.DesignShipyard,
			Kind:        domain.KindBuilding,
			DisplayName: "Shipyard",
			BuildCost:   500,
		},
		Design{
			Type:        domain.DesignSilo,
			Kind:        domain.KindBuilding,
			DisplayName: "Silo",
			BuildCost:   300,
		},
		Design{
			Type:        domain.DesignResearch,
			Kind:        domain.KindBuilding,
			DisplayName: "Research Lab",
			BuildCost:   400,
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}
