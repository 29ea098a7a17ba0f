package core

import (
	"context"
	"fmt"

	"starcore/pkg/domain"
)

// NewFleetTransitRule returns the rule enforcing that a moving fleet carries
// both a destination and an ETA, and that an idle fleet carries neither. An
// attacking fleet keeps whatever route it had when it was engaged.
func NewFleetTransitRule() domain.Rule {
	return fleetTransitRule{}
}

type fleetTransitRule struct{}

func (fleetTransitRule) Name() string { return "fleet_transit" }

func (fleetTransitRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, star := range view.ListStars() {
		for _, fleet := range star.Fleets {
			hasDest := fleet.DestinationStarID != nil
			hasETA := fleet.ETA != nil
			bad := false
			switch fleet.State {
			case domain.FleetMoving:
				bad = !hasDest || !hasETA
			case domain.FleetIdle:
				bad = hasDest || hasETA
			}
			if !bad {
				continue
			}
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "fleet_transit",
				Severity: domain.SeverityBlock,
				StarID:   star.ID,
				Message: fmt.Sprintf("fleet %d state %s with destination=%v eta=%v",
					fleet.ID, fleet.State, fleet.DestinationStarID != nil, fleet.ETA != nil),
			})
		}
	}
	return res, nil
}
