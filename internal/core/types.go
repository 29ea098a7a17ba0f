package core

import "starcore/pkg/domain"

type (
	Severity                    = domain.Severity
	Star                        = domain.Star
	Planet                      = domain.Planet
	Colony                      = domain.Colony
	ColonyFocus                 = domain.ColonyFocus
	Building                    = domain.Building
	BuildRequest                = domain.BuildRequest
	Fleet                       = domain.Fleet
	EmpireStorage               = domain.EmpireStorage
	DesignType                  = domain.DesignType
	DesignKind                  = domain.DesignKind
	FleetState                  = domain.FleetState
	FleetStance                 = domain.FleetStance
	Modification                = domain.Modification
	ModificationKind            = domain.ModificationKind
	SuspiciousModificationError = domain.SuspiciousModificationError
	Change                      = domain.Change
	Action                      = domain.Action
	Violation                   = domain.Violation
	Result                      = domain.Result
	RuleViolationError          = domain.RuleViolationError
	Rule                        = domain.Rule
	RuleView                    = domain.RuleView
	RulesEngine                 = domain.RulesEngine
	Transaction                 = domain.Transaction
	TransactionView             = domain.TransactionView
	PersistentStore             = domain.PersistentStore
)

const (
	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
	SeverityLog   = domain.SeverityLog
)

const (
	ActionCreate = domain.ActionCreate
	ActionUpdate = domain.ActionUpdate
	ActionDelete = domain.ActionDelete
)

const (
	FleetIdle      = domain.FleetIdle
	FleetMoving    = domain.FleetMoving
	FleetAttacking = domain.FleetAttacking
)

// NewRulesEngine constructs an empty rules engine.
func NewRulesEngine() *RulesEngine {
	return domain.NewRulesEngine()
}
