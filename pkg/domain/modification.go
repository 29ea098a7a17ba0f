package domain

// ModificationKind tags the concrete type of a Modification for dispatch,
// logging and error reporting.
type ModificationKind string

// Modification kinds accepted by the engine.
const (
	KindColonize           ModificationKind = "colonize"
	KindCreateFleet        ModificationKind = "create_fleet"
	KindCreateBuilding     ModificationKind = "create_building"
	KindAdjustFocus        ModificationKind = "adjust_focus"
	KindAddBuildRequest    ModificationKind = "add_build_request"
	KindDeleteBuildRequest ModificationKind = "delete_build_request"
	KindSplitFleet         ModificationKind = "split_fleet"
	KindMergeFleet         ModificationKind = "merge_fleet"
	KindMoveFleet          ModificationKind = "move_fleet"
	KindEmptyNative        ModificationKind = "empty_native"
)

// Modification is a discriminated, immutable request to mutate one star.
// The set of implementations is sealed: each kind is a struct carrying only
// the fields relevant to that kind, so handler dispatch is a type switch and
// field access is checked at compile time.
type Modification interface {
	Kind() ModificationKind
	modification()
}

// Colonize settles an uncolonized planet slot. A nil EmpireID performs native
// colonization (game events); otherwise a colony ship of the empire is
// consumed.
type Colonize struct {
	EmpireID    *int64
	PlanetIndex int
}

// CreateFleet adds a new fleet at the star, either from an explicit fleet
// template (Fleet non-nil; destination is cleared) or from DesignType,
// EmpireID and Count with an aggressive stance.
type CreateFleet struct {
	EmpireID   *int64
	DesignType DesignType
	Count      int
	Fleet      *Fleet
}

// CreateBuilding appends a level-1 building to an owned colony.
type CreateBuilding struct {
	EmpireID   *int64
	ColonyID   int64
	DesignType DesignType
}

// AdjustFocus replaces a colony's focus allocation wholesale.
type AdjustFocus struct {
	EmpireID *int64
	ColonyID int64
	Focus    ColonyFocus
}

// AddBuildRequest queues a construction order on an owned colony. Ship
// designs require a shipyard on the colony.
type AddBuildRequest struct {
	EmpireID   *int64
	ColonyID   int64
	DesignType DesignType
	Count      int
}

// DeleteBuildRequest removes a queued order by id, wherever it lives on the
// star.
type DeleteBuildRequest struct {
	EmpireID       *int64
	BuildRequestID int64
}

// SplitFleet carves Count ships off an owned fleet into a new fleet.
type SplitFleet struct {
	EmpireID *int64
	FleetID  int64
	Count    int
}

// MergeFleet folds the listed same-design fleets into the primary fleet.
type MergeFleet struct {
	EmpireID           *int64
	FleetID            int64
	AdditionalFleetIDs []int64
}

// MoveFleet sends an idle owned fleet toward another star, debiting fuel.
type MoveFleet struct {
	EmpireID          *int64
	FleetID           int64
	DestinationStarID int64
}

// EmptyNative removes all native colonies, storages and fleets from the star.
// System-triggered; carries no ownership.
type EmptyNative struct{}

// Kind implements Modification.
func (Colonize) Kind() ModificationKind           { return KindColonize }
func (CreateFleet) Kind() ModificationKind        { return KindCreateFleet }
func (CreateBuilding) Kind() ModificationKind     { return KindCreateBuilding }
func (AdjustFocus) Kind() ModificationKind        { return KindAdjustFocus }
func (AddBuildRequest) Kind() ModificationKind    { return KindAddBuildRequest }
func (DeleteBuildRequest) Kind() ModificationKind { return KindDeleteBuildRequest }
func (SplitFleet) Kind() ModificationKind         { return KindSplitFleet }
func (MergeFleet) Kind() ModificationKind         { return KindMergeFleet }
func (MoveFleet) Kind() ModificationKind          { return KindMoveFleet }
func (EmptyNative) Kind() ModificationKind        { return KindEmptyNative }

func (Colonize) modification()           {}
func (CreateFleet) modification()        {}
func (CreateBuilding) modification()     {}
func (AdjustFocus) modification()        {}
func (AddBuildRequest) modification()    {}
func (DeleteBuildRequest) modification() {}
func (SplitFleet) modification()         {}
func (MergeFleet) modification()         {}
func (MoveFleet) modification()          {}
func (EmptyNative) modification()        {}
