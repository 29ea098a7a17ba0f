package core

// NewDefaultRulesEngine builds a rules engine with the built-in policy set.
func NewDefaultRulesEngine() *RulesEngine {
	engine := NewRulesEngine()
	engine.Register(NewFleetTransitRule())
	engine.Register(NewStorageBalanceRule())
	engine.Register(NewIdentityRule())
	engine.Register(NewFleetStrengthRule())
	engine.Register(NewFocusAllocationRule())
	return engine
}
