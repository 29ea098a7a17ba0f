// Package domain defines the star-system aggregate, the modification sum
// type, and the rule evaluation primitives used by starcore.
package domain

import (
	"math"
	"time"
)

// DesignKind partitions designs into the two buildable families.
type DesignKind string

// Design families referenced by build validation.
const (
	// KindShip marks designs that are built into fleets.
	KindShip DesignKind = "ship"
	// KindBuilding marks designs that are constructed on a colony.
	KindBuilding DesignKind = "building"
)

// DesignType identifies a concrete ship or building design in the catalog.
type DesignType string

// Ship designs.
const (
	DesignColonyShip   DesignType = "colony_ship"
	DesignScout        DesignType = "scout"
	DesignFighter      DesignType = "fighter"
	DesignTroopCarrier DesignType = "troop_carrier"
)

// Building designs.
const (
	DesignShipyard DesignType = "shipyard"
	DesignSilo     DesignType = "silo"
	DesignResearch DesignType = "research"
)

// FleetState is the lifecycle state of a fleet.
type FleetState string

// Fleet lifecycle states. A fleet is MOVING if and only if it carries both a
// destination star and an ETA.
const (
	FleetIdle      FleetState = "idle"
	FleetMoving    FleetState = "moving"
	FleetAttacking FleetState = "attacking"
)

// FleetStance controls whether a fleet engages non-friendly fleets.
type FleetStance string

// Fleet stances.
const (
	StancePassive    FleetStance = "passive"
	StanceNeutral    FleetStance = "neutral"
	StanceAggressive FleetStance = "aggressive"
)

// Star is the aggregate root: one star system with its planets, fleets and
// per-empire resource storages. All mutation flows through the modification
// engine; the resource simulation advances production in place.
type Star struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	X              float64         `json:"x"`
	Y              float64         `json:"y"`
	Planets        []Planet        `json:"planets"`
	Fleets         []Fleet         `json:"fleets"`
	EmpireStores   []EmpireStorage `json:"empire_stores"`
	LastSimulation time.Time       `json:"last_simulation"`
}

// Planet occupies a fixed slot within its star. The slot count is set at star
// creation and never changes. A planet with a nil Colony is uncolonized.
type Planet struct {
	Index  int     `json:"index"`
	Colony *Colony `json:"colony,omitempty"`
}

// ColonyFocus is the four-way allocation of a colony's working population.
// The engine does not normalize the weights; callers own that contract.
type ColonyFocus struct {
	Construction float64 `json:"construction"`
	Energy       float64 `json:"energy"`
	Farming      float64 `json:"farming"`
	Mining       float64 `json:"mining"`
}

// Colony is an empire-owned (or native, when EmpireID is nil) settlement on
// one planet.
type Colony struct {
	ID            int64          `json:"id"`
	EmpireID      *int64         `json:"empire_id,omitempty"`
	Population    float64        `json:"population"`
	Focus         ColonyFocus    `json:"focus"`
	CooldownEnd   time.Time      `json:"cooldown_end"`
	Buildings     []Building     `json:"buildings"`
	BuildRequests []BuildRequest `json:"build_requests"`
}

// Building is a constructed structure on a colony. Buildings have no identity
// beyond their position in the colony's building list.
type Building struct {
	DesignType DesignType `json:"design_type"`
	Level      int        `json:"level"`
}

// BuildRequest is a queued construction order. Progress is advanced by the
// resource simulation, never by the modification engine.
type BuildRequest struct {
	ID         int64      `json:"id"`
	DesignType DesignType `json:"design_type"`
	Count      int        `json:"count"`
	Progress   float64    `json:"progress"`
	StartTime  time.Time  `json:"start_time"`
}

// Fleet is a group of same-design ships under one empire. NumShips is
// continuous: combat and colonization consume fractional ships. Destination
// and ETA are set only while the fleet is MOVING.
type Fleet struct {
	ID                int64       `json:"id"`
	EmpireID          *int64      `json:"empire_id,omitempty"`
	DesignType        DesignType  `json:"design_type"`
	NumShips          float64     `json:"num_ships"`
	Stance            FleetStance `json:"stance"`
	State             FleetState  `json:"state"`
	StateStartTime    time.Time   `json:"state_start_time"`
	DestinationStarID *int64      `json:"destination_star_id,omitempty"`
	ETA               *time.Time  `json:"eta,omitempty"`
}

// EmpireStorage holds one empire's resource pools at a star. A nil EmpireID
// is the native pool. At most one record per empire exists per star.
type EmpireStorage struct {
	EmpireID      *int64  `json:"empire_id,omitempty"`
	TotalGoods    float64 `json:"total_goods"`
	TotalMinerals float64 `json:"total_minerals"`
	TotalEnergy   float64 `json:"total_energy"`
	MaxGoods      float64 `json:"max_goods"`
	MaxMinerals   float64 `json:"max_minerals"`
	MaxEnergy     float64 `json:"max_energy"`
}

// SameEmpire reports whether two empire references denote the same owner.
// Two nil references (native) compare equal.
func SameEmpire(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// IsFriendlyTo reports whether the fleet belongs to the given empire.
// A native fleet is friendly only to the native pseudo-empire.
func (f Fleet) IsFriendlyTo(empireID *int64) bool {
	return SameEmpire(f.EmpireID, empireID)
}

// Distance returns the straight-line distance between two stars' positions.
func Distance(a, b *Star) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PlanetWithColony returns the planet hosting the colony with the given id,
// or nil when no such colony exists at this star.
func (s *Star) PlanetWithColony(colonyID int64) *Planet {
	for i := range s.Planets {
		if c := s.Planets[i].Colony; c != nil && c.ID == colonyID {
			return &s.Planets[i]
		}
	}
	return nil
}

// FleetIndex returns the position of the fleet with the given id within the
// star's fleet sequence, or -1 when absent.
func (s *Star) FleetIndex(fleetID int64) int {
	for i := range s.Fleets {
		if s.Fleets[i].ID == fleetID {
			return i
		}
	}
	return -1
}

// StorageIndex returns the position of the storage record owned by the given
// empire, or -1 when the empire has no storage at this star.
func (s *Star) StorageIndex(empireID *int64) int {
	for i := range s.EmpireStores {
		if SameEmpire(s.EmpireStores[i].EmpireID, empireID) {
			return i
		}
	}
	return -1
}
