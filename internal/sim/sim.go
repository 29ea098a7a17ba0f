// Package sim advances a star's resource production and construction queues
// over elapsed wall time. The simulation is deterministic: the same star and
// the same clock always produce the same result.
package sim

import (
	"fmt"
	"math"
	"time"

	"starcore/internal/catalog"
	"starcore/pkg/domain"
)

// LogHandler receives per-star simulation and modification log lines. The
// engine threads one handler through a whole batch so a star's history reads
// as a single transcript. SetStarName is called once before the first line
// so sinks can label their output.
type LogHandler interface {
	SetStarName(name string)
	Log(format string, args ...any)
}

// NopLogHandler discards all log lines.
type NopLogHandler struct{}

// SetStarName implements LogHandler.
func (NopLogHandler) SetStarName(string) {}

// Log implements LogHandler.
func (NopLogHandler) Log(string, ...any) {}

// FuncLogHandler adapts a function to the LogHandler interface. The star name
// is dropped.
type FuncLogHandler func(format string, args ...any)

// SetStarName implements LogHandler.
func (FuncLogHandler) SetStarName(string) {}

// Log implements LogHandler.
func (f FuncLogHandler) Log(format string, args ...any) { f(format, args...) }

// Simulator advances one star to the current time.
type Simulator interface {
	Simulate(star *domain.Star)
}

// Production rates per unit of population per hour at full focus.
const (
	goodsPerFocusHour    = 0.1
	mineralsPerFocusHour = 0.1
	energyPerFocusHour   = 0.2
	buildPointsPerHour   = 1.0
)

// Simulation is the default Simulator. The zero value is not usable; construct
// with New.
type Simulation struct {
	catalog *catalog.Catalog
	log     LogHandler
	now     func() time.Time
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogHandler routes simulation log lines to the given handler.
func WithLogHandler(h LogHandler) Option {
	return func(s *Simulation) {
		if h != nil {
			s.log = h
		}
	}
}

// WithClock overrides the wall clock, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Simulation) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Simulation over the given catalog.
func New(c *catalog.Catalog, opts ...Option) *Simulation {
	s := &Simulation{
		catalog: c,
		log:     NopLogHandler{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate advances the star from its last simulation time to now. Production
// is credited per colony to the owning empire's storage, clamped to storage
// maxima, and build requests accrue progress from the construction focus.
func (s *Simulation) Simulate(star *domain.Star) {
	s.log.SetStarName(star.Name)
	now := s.now().UTC()
	if star.LastSimulation.IsZero() {
		star.LastSimulation = now
		return
	}
	elapsed := now.Sub(star.LastSimulation).Hours()
	if elapsed <= 0 {
		return
	}
	s.log.Log("simulating star %d over %.2f hours", star.ID, elapsed)

	for pi := range star.Planets {
		colony := star.Planets[pi].Colony
		if colony == nil {
			continue
		}
		s.simulateColony(star, colony, elapsed)
	}
	star.LastSimulation = now
}

func (s *Simulation) simulateColony(star *domain.Star, colony *domain.Colony, hours float64) {
	idx := star.StorageIndex(colony.EmpireID)
	if idx >= 0 {
		storage := &star.EmpireStores[idx]
		storage.TotalGoods = clamp(
			storage.TotalGoods+colony.Population*colony.Focus.Farming*goodsPerFocusHour*hours,
			storage.MaxGoods)
		storage.TotalMinerals = clamp(
			storage.TotalMinerals+colony.Population*colony.Focus.Mining*mineralsPerFocusHour*hours,
			storage.MaxMinerals)
		storage.TotalEnergy = clamp(
			storage.TotalEnergy+colony.Population*colony.Focus.Energy*energyPerFocusHour*hours,
			storage.MaxEnergy)
	}

	if len(colony.BuildRequests) == 0 {
		return
	}
	points := colony.Population * colony.Focus.Construction * buildPointsPerHour * hours
	if points <= 0 {
		return
	}
	// Construction effort goes to the oldest request first.
	req := &colony.BuildRequests[0]
	design, ok := s.catalog.Get(req.DesignType)
	if !ok {
		s.log.Log("colony %d: build request %d references unknown design %q",
			colony.ID, req.ID, req.DesignType)
		return
	}
	totalCost := design.BuildCost * float64(req.Count)
	if totalCost <= 0 {
		req.Progress = 1
		return
	}
	req.Progress = math.Min(1, req.Progress+points/totalCost)
	s.log.Log("colony %d: build request %d at %.0f%%", colony.ID, req.ID, req.Progress*100)
}

func clamp(v, max float64) float64 {
	if max > 0 && v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

var _ Simulator = (*Simulation)(nil)

// Transcript is a LogHandler that records lines in order, used by callers that
// want to surface the simulation history of a request.
type Transcript struct {
	StarName string
	Lines    []string
}

// SetStarName implements LogHandler.
func (t *Transcript) SetStarName(name string) {
	t.StarName = name
}

// Log implements LogHandler.
func (t *Transcript) Log(format string, args ...any) {
	t.Lines = append(t.Lines, fmt.Sprintf(format, args...))
}
