package core

import (
	"time"

	"starcore/internal/catalog"
	"starcore/internal/sim"
	"starcore/pkg/domain"
)

// Colony defaults applied on colonization. New colonies favor resource
// production until the player reallocates focus.
const (
	defaultColonyPopulation = 100.0
	colonyCooldownDuration  = 15 * time.Minute

	defaultFocusConstruction = 0.1
	defaultFocusEnergy       = 0.3
	defaultFocusFarming      = 0.3
	defaultFocusMining       = 0.3
)

// Initial resource pools granted with an empire's first colony at a star.
const (
	initialGoods    = 100.0
	initialMinerals = 100.0
	initialEnergy   = 1000.0
	maxGoods        = 1000.0
	maxMinerals     = 1000.0
	maxEnergy       = 1000.0
)

// Modifier applies modification batches to a single star. Each batch runs the
// resource simulation before the first modification and again after the last
// one, so production is always up to date when handlers read storage levels.
type Modifier struct {
	catalog *catalog.Catalog
	ids     IdentifierGenerator
	sim     sim.Simulator
	log     sim.LogHandler
	now     func() time.Time
}

// ModifierOption configures a Modifier.
type ModifierOption func(*Modifier)

// WithLogHandler routes modification log lines to the given handler.
func WithLogHandler(h sim.LogHandler) ModifierOption {
	return func(m *Modifier) {
		if h != nil {
			m.log = h
		}
	}
}

// WithSimulator overrides the resource simulation.
func WithSimulator(s sim.Simulator) ModifierOption {
	return func(m *Modifier) {
		if s != nil {
			m.sim = s
		}
	}
}

// WithModifierClock overrides the wall clock, primarily for tests.
func WithModifierClock(now func() time.Time) ModifierOption {
	return func(m *Modifier) {
		if now != nil {
			m.now = now
		}
	}
}

// NewModifier constructs a Modifier over the given catalog and identifier
// generator.
func NewModifier(c *catalog.Catalog, ids IdentifierGenerator, opts ...ModifierOption) *Modifier {
	m := &Modifier{
		catalog: c,
		ids:     ids,
		log:     sim.NopLogHandler{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.sim == nil {
		m.sim = sim.New(c, sim.WithLogHandler(m.log), sim.WithClock(m.now))
	}
	return m
}

// Apply runs a batch of modifications against the star. Aux stars supply
// positions and identities of other systems referenced by fleet movement.
//
// A suspicious modification aborts the batch: modifications already applied
// remain applied, the failing one and everything after it do not run, and the
// error is returned. Benign inconsistencies are logged and skipped without
// stopping the batch. Unknown modification kinds are logged and skipped.
func (m *Modifier) Apply(star *domain.Star, auxStars []*domain.Star, mods []domain.Modification) error {
	if len(mods) == 0 {
		return nil
	}
	m.log.SetStarName(star.Name)
	m.sim.Simulate(star)

	var applyErr error
	for _, mod := range mods {
		if applyErr = m.applyOne(star, auxStars, mod); applyErr != nil {
			break
		}
	}

	// The trailing simulation runs even when the batch aborts, so the star's
	// economy stays current over whatever was applied.
	m.sim.Simulate(star)
	return applyErr
}

// ApplyModification is a single-modification convenience form of Apply.
func (m *Modifier) ApplyModification(star *domain.Star, auxStars []*domain.Star, mod domain.Modification) error {
	return m.Apply(star, auxStars, []domain.Modification{mod})
}

func (m *Modifier) applyOne(star *domain.Star, auxStars []*domain.Star, mod domain.Modification) error {
	switch v := mod.(type) {
	case domain.Colonize:
		return m.applyColonize(star, v)
	case domain.CreateFleet:
		return m.applyCreateFleet(star, v)
	case domain.CreateBuilding:
		return m.applyCreateBuilding(star, v)
	case domain.AdjustFocus:
		return m.applyAdjustFocus(star, v)
	case domain.AddBuildRequest:
		return m.applyAddBuildRequest(star, v)
	case domain.DeleteBuildRequest:
		return m.applyDeleteBuildRequest(star, v)
	case domain.SplitFleet:
		return m.applySplitFleet(star, v)
	case domain.MergeFleet:
		return m.applyMergeFleet(star, v)
	case domain.MoveFleet:
		return m.applyMoveFleet(star, auxStars, v)
	case domain.EmptyNative:
		return m.applyEmptyNative(star)
	default:
		m.log.Log("star %d: ignoring unknown modification kind %q", star.ID, mod.Kind())
		return nil
	}
}
