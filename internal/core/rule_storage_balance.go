package core

import (
	"context"
	"fmt"

	"starcore/pkg/domain"
)

// NewStorageBalanceRule returns the rule enforcing that every resource pool
// stays within [0, max].
func NewStorageBalanceRule() domain.Rule {
	return storageBalanceRule{}
}

type storageBalanceRule struct{}

func (storageBalanceRule) Name() string { return "storage_balance" }

func (storageBalanceRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, star := range view.ListStars() {
		for _, storage := range star.EmpireStores {
			check := func(name string, total, max float64) {
				if total < 0 || (max > 0 && total > max) {
					res.Violations = append(res.Violations, domain.Violation{
						Rule:     "storage_balance",
						Severity: domain.SeverityBlock,
						StarID:   star.ID,
						Message: fmt.Sprintf("empire %s %s out of range: %.2f (max %.2f)",
							empireRef(storage.EmpireID), name, total, max),
					})
				}
			}
			check("goods", storage.TotalGoods, storage.MaxGoods)
			check("minerals", storage.TotalMinerals, storage.MaxMinerals)
			check("energy", storage.TotalEnergy, storage.MaxEnergy)
		}
	}
	return res, nil
}
