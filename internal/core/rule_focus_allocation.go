package core

import (
	"context"
	"fmt"
	"math"

	"starcore/pkg/domain"
)

// NewFocusAllocationRule returns the rule flagging colony focus weights that
// are negative or do not sum to one. The engine deliberately accepts such
// allocations, so the violation only warns.
func NewFocusAllocationRule() domain.Rule {
	return focusAllocationRule{}
}

type focusAllocationRule struct{}

func (focusAllocationRule) Name() string { return "focus_allocation" }

func (focusAllocationRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, star := range view.ListStars() {
		for _, planet := range star.Planets {
			colony := planet.Colony
			if colony == nil {
				continue
			}
			f := colony.Focus
			sum := f.Construction + f.Energy + f.Farming + f.Mining
			negative := f.Construction < 0 || f.Energy < 0 || f.Farming < 0 || f.Mining < 0
			if !negative && math.Abs(sum-1) < 1e-6 {
				continue
			}
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "focus_allocation",
				Severity: domain.SeverityWarn,
				StarID:   star.ID,
				Message:  fmt.Sprintf("colony %d focus sums to %.3f", colony.ID, sum),
			})
		}
	}
	return res, nil
}
