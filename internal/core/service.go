package core

import (
	"context"
	"fmt"
	"time"

	"starcore/internal/catalog"
	"starcore/internal/sim"
)

// Service exposes transactional star operations on top of a persistent store.
// All mutation flows through the modification engine inside a store
// transaction, so a suspicious modification or a blocking rule violation
// leaves committed state untouched even though the engine itself applies
// batches partially.
type Service struct {
	store   PersistentStore
	catalog *catalog.Catalog
	ids     IdentifierGenerator
	logger  Logger
	metrics MetricsRecorder
	tracer  Tracer
	modLog  sim.LogHandler
	now     func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithCatalog overrides the design catalog.
func WithCatalog(c *catalog.Catalog) ServiceOption {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithIdentifierGenerator overrides the identifier generator.
func WithIdentifierGenerator(ids IdentifierGenerator) ServiceOption {
	return func(s *Service) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// WithLogger routes service events to the given logger.
func WithLogger(l Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records operation outcomes on the given recorder.
func WithMetrics(m MetricsRecorder) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithTracer wraps operations in spans from the given tracer.
func WithTracer(t Tracer) ServiceOption {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithModificationLog routes per-star modification transcripts to the given
// handler.
func WithModificationLog(h sim.LogHandler) ServiceOption {
	return func(s *Service) {
		if h != nil {
			s.modLog = h
		}
	}
}

// WithClock overrides the wall clock, primarily for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs a service backed by the supplied store.
func NewService(store PersistentStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:   store,
		catalog: catalog.Default(),
		ids:     NewSequenceGenerator(0),
		logger:  NopLogger{},
		metrics: nopMetrics{},
		tracer:  nopTracer{},
		modLog:  sim.NopLogHandler{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying storage implementation.
func (s *Service) Store() PersistentStore {
	return s.store
}

// Catalog returns the design catalog the service validates against.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// ErrNotFound is returned when a referenced star does not exist.
type ErrNotFound struct {
	ID int64
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("star %d not found", e.ID)
}

func (s *Service) instrument(ctx context.Context, operation string, fn func(context.Context) error) error {
	start := s.now()
	ctx, span := s.tracer.Start(ctx, operation)
	err := fn(ctx)
	span.End(err)
	s.metrics.Observe(ctx, operation, err == nil, s.now().Sub(start))
	if err != nil {
		s.logger.Log(ctx, operation, map[string]any{"error": err.Error()})
	}
	return err
}

func (s *Service) newModifier() *Modifier {
	return NewModifier(s.catalog, s.ids,
		WithLogHandler(s.modLog),
		WithModifierClock(s.now))
}

// CreateStar persists a new star. A zero id is assigned from the identifier
// generator.
func (s *Service) CreateStar(ctx context.Context, star Star) (Star, Result, error) {
	var created Star
	var result Result
	err := s.instrument(ctx, "create_star", func(ctx context.Context) error {
		if star.ID == 0 {
			star.ID = s.ids.NextID()
		}
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			var err error
			created, err = tx.CreateStar(star)
			return err
		})
		result = res
		return err
	})
	return created, result, err
}

// GetStar retrieves a star by id.
func (s *Service) GetStar(ctx context.Context, id int64) (Star, error) {
	var star Star
	err := s.instrument(ctx, "get_star", func(context.Context) error {
		found, ok := s.store.GetStar(id)
		if !ok {
			return ErrNotFound{ID: id}
		}
		star = found
		return nil
	})
	return star, err
}

// ListStars returns all stars ordered by id.
func (s *Service) ListStars(ctx context.Context) ([]Star, error) {
	var stars []Star
	err := s.instrument(ctx, "list_stars", func(context.Context) error {
		stars = s.store.ListStars()
		return nil
	})
	return stars, err
}

// DeleteStar removes a star.
func (s *Service) DeleteStar(ctx context.Context, id int64) (Result, error) {
	var result Result
	err := s.instrument(ctx, "delete_star", func(ctx context.Context) error {
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			return tx.DeleteStar(id)
		})
		result = res
		return err
	})
	return result, err
}

// ApplyModifications runs a modification batch against one star inside a
// store transaction. Aux star ids name the other systems the batch may
// reference; they are resolved from the same transactional snapshot and
// passed to the engine read-only.
//
// The engine applies batches partially on suspicious errors, but because the
// whole batch runs inside one transaction, a suspicious error or a blocking
// rule violation discards the staged partial state: committed state only ever
// reflects fully successful batches.
func (s *Service) ApplyModifications(ctx context.Context, starID int64, auxStarIDs []int64, mods []Modification) (Star, Result, error) {
	var updated Star
	var result Result
	err := s.instrument(ctx, "apply_modifications", func(ctx context.Context) error {
		modifier := s.newModifier()
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			aux := make([]*Star, 0, len(auxStarIDs))
			for _, id := range auxStarIDs {
				star, ok := tx.FindStar(id)
				if !ok {
					// The engine treats a missing destination as benign;
					// leaving it out of the aux set reproduces that.
					continue
				}
				aux = append(aux, &star)
			}
			var applyErr error
			updated, applyErr = tx.UpdateStar(starID, func(star *Star) error {
				return modifier.Apply(star, aux, mods)
			})
			return applyErr
		})
		result = res
		return err
	})
	return updated, result, err
}

// ApplyModification is a single-modification convenience form of
// ApplyModifications.
func (s *Service) ApplyModification(ctx context.Context, starID int64, auxStarIDs []int64, mod Modification) (Star, Result, error) {
	return s.ApplyModifications(ctx, starID, auxStarIDs, []Modification{mod})
}

// SimulateStar advances a star's economy to the current instant without
// applying any modification.
func (s *Service) SimulateStar(ctx context.Context, starID int64) (Star, Result, error) {
	var updated Star
	var result Result
	err := s.instrument(ctx, "simulate_star", func(ctx context.Context) error {
		simulation := sim.New(s.catalog, sim.WithLogHandler(s.modLog), sim.WithClock(s.now))
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			var applyErr error
			updated, applyErr = tx.UpdateStar(starID, func(star *Star) error {
				simulation.Simulate(star)
				return nil
			})
			return applyErr
		})
		result = res
		return err
	})
	return updated, result, err
}
