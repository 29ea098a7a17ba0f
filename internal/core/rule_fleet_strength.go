package core

import (
	"context"
	"fmt"

	"starcore/pkg/domain"
)

// NewFleetStrengthRule returns the rule flagging fleets with a non-positive
// ship count. Splitting a fleet by its full count legitimately produces one,
// so the violation only warns; the external simulation reaps such fleets.
func NewFleetStrengthRule() domain.Rule {
	return fleetStrengthRule{}
}

type fleetStrengthRule struct{}

func (fleetStrengthRule) Name() string { return "fleet_strength" }

func (fleetStrengthRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, star := range view.ListStars() {
		for _, fleet := range star.Fleets {
			if fleet.NumShips > 0 {
				continue
			}
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "fleet_strength",
				Severity: domain.SeverityWarn,
				StarID:   star.ID,
				Message:  fmt.Sprintf("fleet %d has num_ships=%.2f", fleet.ID, fleet.NumShips),
			})
		}
	}
	return res, nil
}
