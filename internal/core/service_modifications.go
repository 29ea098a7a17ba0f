package core

import (
	"context"

	"starcore/pkg/domain"
)

// Per-kind convenience wrappers over ApplyModification. Callers that already
// hold a modification value can use ApplyModifications directly.

// Colonize settles a planet for the empire, consuming a colony ship unless the
// colony is native.
func (s *Service) Colonize(ctx context.Context, starID int64, empireID *int64, planetIndex int) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, nil,
		domain.Colonize{EmpireID: empireID, PlanetIndex: planetIndex})
}

// CreateFleet adds a fleet of count ships of the design to the star.
func (s *Service) CreateFleet(ctx context.Context, starID int64, empireID *int64, design DesignType, count int) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, nil,
		domain.CreateFleet{EmpireID: empireID, DesignType: design, Count: count})
}

// CreateBuilding adds a level 1 building to the colony.
func (s *Service) CreateBuilding(ctx context.Context, starID int64, empireID *int64, colonyID int64, design DesignType) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, nil,
		domain.CreateBuilding{EmpireID: empireID, ColonyID: colonyID, DesignType: design})
}

// AdjustFocus replaces the colony's focus allocation.
func (s *Service) AdjustFocus(ctx context.Context, starID int64, empireID *int64, colonyID int64, focus ColonyFocus) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, nil,
		domain.AdjustFocus{EmpireID: empireID, ColonyID: colonyID, Focus: focus})
}

// AddBuildRequest queues a build on the colony.
func (s *Service) AddBuildRequest(ctx context.Context, starID int64, empireID *int64, colonyID int64, design DesignType, count int) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, nil,
		domain.AddBuildRequest{EmpireID: empireID, ColonyID: colonyID, DesignType: design, Count: count})
}

// DeleteBuildRequest removes a queued build from whichever colony holds it.
func (s *Service) DeleteBuildRequest(ctx context.Context, starID int64, empireID *int64, buildRequestID int64) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, nil,
		domain.DeleteBuildRequest{EmpireID: empireID, BuildRequestID: buildRequestID})
}

// SplitFleet moves count ships out of the fleet into a new fleet.
func (s *Service) SplitFleet(ctx context.Context, starID int64, empireID *int64, fleetID int64, count int) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, nil,
		domain.SplitFleet{EmpireID: empireID, FleetID: fleetID, Count: count})
}

// MergeFleet folds the additional idle fleets into the primary fleet.
func (s *Service) MergeFleet(ctx context.Context, starID int64, empireID *int64, fleetID int64, additional []int64) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, nil,
		domain.MergeFleet{EmpireID: empireID, FleetID: fleetID, AdditionalFleetIDs: additional})
}

// MoveFleet launches the fleet toward the destination star, debiting fuel.
func (s *Service) MoveFleet(ctx context.Context, starID int64, empireID *int64, fleetID, destinationStarID int64) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, []int64{destinationStarID},
		domain.MoveFleet{EmpireID: empireID, FleetID: fleetID, DestinationStarID: destinationStarID})
}

// EmptyNative removes all native colonies, fleets and storages from the star.
func (s *Service) EmptyNative(ctx context.Context, starID int64) (Star, Result, error) {
	return s.ApplyModification(ctx, starID, nil, domain.EmptyNative{})
}
