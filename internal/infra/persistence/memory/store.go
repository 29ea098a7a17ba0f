// Package memory provides an in-memory implementation of the star persistence
// store used for tests and ephemeral environments.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"starcore/pkg/domain"
)

// Compile-time contract assertion ensuring memory.Store adheres to the domain
// persistence interfaces.
var _ domain.PersistentStore = (*Store)(nil)

type (
	// Star aliases domain.Star for in-memory persistence operations.
	Star = domain.Star
	// Change aliases domain.Change captured in transactions.
	Change = domain.Change
	// Result aliases domain.Result summarizing rule evaluation.
	Result = domain.Result
	// RulesEngine aliases domain.RulesEngine used to evaluate rules.
	RulesEngine = domain.RulesEngine
	// Transaction aliases domain.Transaction representing a mutable unit of work.
	Transaction = domain.Transaction
	// TransactionView aliases domain.TransactionView providing read-only state.
	TransactionView = domain.TransactionView
	// PersistentStore aliases domain.PersistentStore abstraction.
	PersistentStore = domain.PersistentStore
)

// Snapshot captures a point-in-time clone of the store state.
type Snapshot struct {
	Stars map[int64]Star `json:"stars"`
}

type memoryState struct {
	stars map[int64]Star
}

func newMemoryState() memoryState {
	return memoryState{stars: make(map[int64]Star)}
}

func (s memoryState) clone() memoryState {
	cloned := newMemoryState()
	for id, star := range s.stars {
		cloned.stars[id] = star.Clone()
	}
	return cloned
}

func snapshotFromMemoryState(state memoryState) Snapshot {
	s := Snapshot{Stars: make(map[int64]Star, len(state.stars))}
	for id, star := range state.stars {
		s.Stars[id] = star.Clone()
	}
	return s
}

func memoryStateFromSnapshot(s Snapshot) memoryState {
	state := newMemoryState()
	for id, star := range s.Stars {
		state.stars[id] = star.Clone()
	}
	return state
}

// Store provides an in-memory transactional star store. Mutations are staged
// on a cloned state and committed only when the transaction function and the
// rules engine both succeed.
type Store struct {
	mu     sync.RWMutex
	state  memoryState
	engine *RulesEngine
	nowFn  func() time.Time
}

// NewStore constructs an in-memory store backed by the provided rules engine.
func NewStore(engine *RulesEngine) *Store {
	if engine == nil {
		engine = domain.NewRulesEngine()
	}
	return &Store{
		state:  newMemoryState(),
		engine: engine,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the store clock, primarily for tests.
func (s *Store) SetClock(now func() time.Time) {
	if now != nil {
		s.nowFn = now
	}
}

type memoryTransaction struct {
	state   *memoryState
	changes []Change
	now     time.Time
}

type transactionView struct {
	state *memoryState
}

func (v transactionView) ListStars() []Star {
	out := make([]Star, 0, len(v.state.stars))
	for _, star := range v.state.stars {
		out = append(out, star.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (v transactionView) FindStar(id int64) (Star, bool) {
	star, ok := v.state.stars[id]
	if !ok {
		return Star{}, false
	}
	return star.Clone(), true
}

// Snapshot returns a read-only view of the staged transaction state.
func (tx *memoryTransaction) Snapshot() TransactionView {
	return transactionView{state: tx.state}
}

// CreateStar stages a new star within the transaction.
func (tx *memoryTransaction) CreateStar(star Star) (Star, error) {
	if star.ID == 0 {
		return Star{}, fmt.Errorf("star id must be assigned before create")
	}
	if _, exists := tx.state.stars[star.ID]; exists {
		return Star{}, fmt.Errorf("star %d already exists", star.ID)
	}
	if star.LastSimulation.IsZero() {
		star.LastSimulation = tx.now
	}
	tx.state.stars[star.ID] = star.Clone()
	tx.changes = append(tx.changes, Change{
		Action: domain.ActionCreate,
		StarID: star.ID,
		After:  cloneStarPtr(star),
	})
	return star.Clone(), nil
}

// UpdateStar mutates a star using the provided mutator function.
func (tx *memoryTransaction) UpdateStar(id int64, mutator func(*Star) error) (Star, error) {
	current, ok := tx.state.stars[id]
	if !ok {
		return Star{}, fmt.Errorf("star %d not found", id)
	}
	before := current.Clone()
	staged := current.Clone()
	if err := mutator(&staged); err != nil {
		return Star{}, err
	}
	staged.ID = id
	tx.state.stars[id] = staged.Clone()
	tx.changes = append(tx.changes, Change{
		Action: domain.ActionUpdate,
		StarID: id,
		Before: &before,
		After:  cloneStarPtr(staged),
	})
	return staged.Clone(), nil
}

// DeleteStar removes a star from the transaction state.
func (tx *memoryTransaction) DeleteStar(id int64) error {
	current, ok := tx.state.stars[id]
	if !ok {
		return fmt.Errorf("star %d not found", id)
	}
	before := current.Clone()
	delete(tx.state.stars, id)
	tx.changes = append(tx.changes, Change{
		Action: domain.ActionDelete,
		StarID: id,
		Before: &before,
	})
	return nil
}

// FindStar retrieves a star by id from the staged state.
func (tx *memoryTransaction) FindStar(id int64) (Star, bool) {
	star, ok := tx.state.stars[id]
	if !ok {
		return Star{}, false
	}
	return star.Clone(), true
}

func cloneStarPtr(star Star) *Star {
	c := star.Clone()
	return &c
}

// RunInTransaction executes fn within a transactional copy of the store state.
// Rules are evaluated against the staged state; blocking violations abort the
// commit and surface as a RuleViolationError.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx Transaction) error) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	tx := &memoryTransaction{state: &staged, now: s.nowFn()}

	if err := fn(tx); err != nil {
		return Result{}, err
	}

	var result Result
	if s.engine != nil {
		res, err := s.engine.Evaluate(ctx, transactionView{state: &staged}, tx.changes)
		if err != nil {
			return Result{}, err
		}
		result = res
		if res.HasBlocking() {
			return res, domain.RuleViolationError{Result: res}
		}
	}

	s.state = staged
	return result, nil
}

// View executes fn against a read-only snapshot of the store state.
func (s *Store) View(ctx context.Context, fn func(TransactionView) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state.clone()
	return fn(transactionView{state: &snapshot})
}

// GetStar retrieves a star by id from committed state.
func (s *Store) GetStar(id int64) (Star, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	star, ok := s.state.stars[id]
	if !ok {
		return Star{}, false
	}
	return star.Clone(), true
}

// ListStars returns all stars from committed state ordered by id.
func (s *Store) ListStars() []Star {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Star, 0, len(s.state.stars))
	for _, star := range s.state.stars {
		out = append(out, star.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ExportState returns a deep copy of the committed state for snapshotting
// backends.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotFromMemoryState(s.state)
}

// ImportState replaces the committed state with the given snapshot.
func (s *Store) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = memoryStateFromSnapshot(snapshot)
}
