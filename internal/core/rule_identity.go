package core

import (
	"context"
	"fmt"

	"starcore/pkg/domain"
)

// NewIdentityRule returns the rule enforcing identifier uniqueness within a
// star: colony ids, fleet ids and build request ids must each be unique
// within their own kind, and at most one storage record may exist per empire.
func NewIdentityRule() domain.Rule {
	return identityRule{}
}

type identityRule struct{}

func (identityRule) Name() string { return "identity_unique" }

func (identityRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, star := range view.ListStars() {
		seen := make(map[string]map[int64]bool)
		record := func(id int64, kind string) {
			ids := seen[kind]
			if ids == nil {
				ids = make(map[int64]bool)
				seen[kind] = ids
			}
			if ids[id] {
				res.Violations = append(res.Violations, domain.Violation{
					Rule:     "identity_unique",
					Severity: domain.SeverityBlock,
					StarID:   star.ID,
					Message:  fmt.Sprintf("duplicate %s id %d", kind, id),
				})
				return
			}
			ids[id] = true
		}
		for _, planet := range star.Planets {
			if planet.Colony == nil {
				continue
			}
			record(planet.Colony.ID, "colony")
			for _, req := range planet.Colony.BuildRequests {
				record(req.ID, "build_request")
			}
		}
		for _, fleet := range star.Fleets {
			record(fleet.ID, "fleet")
		}

		owners := make(map[string]bool)
		for _, storage := range star.EmpireStores {
			owner := empireRef(storage.EmpireID)
			if owners[owner] {
				res.Violations = append(res.Violations, domain.Violation{
					Rule:     "identity_unique",
					Severity: domain.SeverityBlock,
					StarID:   star.ID,
					Message:  fmt.Sprintf("duplicate storage record for empire %s", owner),
				})
			}
			owners[owner] = true
		}
	}
	return res, nil
}
