package domain

import "context"

// Change describes a star mutation applied during a transaction. Before and
// After are deep copies; either may be nil for create/delete.
type Change struct {
	Action Action
	StarID int64
	Before *Star
	After  *Star
}

// Action indicates the type of mutation performed.
type Action string

// Change actions captured for rule evaluation and audit.
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// RuleView provides read-only access to transactional state for rules.
type RuleView interface {
	ListStars() []Star
	FindStar(id int64) (Star, bool)
}

// Rule defines an invariant evaluation executed at the transaction boundary.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, view RuleView, changes []Change) (Result, error)
}

// RulesEngine orchestrates rule evaluation.
type RulesEngine struct {
	rules []Rule
}

// NewRulesEngine constructs an engine instance.
func NewRulesEngine() *RulesEngine {
	return &RulesEngine{}
}

// Register appends a rule to the engine.
func (e *RulesEngine) Register(rule Rule) {
	e.rules = append(e.rules, rule)
}

// Evaluate executes all registered rules and aggregates their results.
func (e *RulesEngine) Evaluate(ctx context.Context, view RuleView, changes []Change) (Result, error) {
	var combined Result
	for _, rule := range e.rules {
		res, err := rule.Evaluate(ctx, view, changes)
		if err != nil {
			return Result{}, err
		}
		combined.Merge(res)
	}
	return combined, nil
}
