package domain

import "context"

// Transaction exposes the star operations that a persistence implementation
// must support within an atomic scope.
type Transaction interface {
	Snapshot() TransactionView
	CreateStar(Star) (Star, error)
	UpdateStar(id int64, mutator func(*Star) error) (Star, error)
	DeleteStar(id int64) error
	FindStar(id int64) (Star, bool)
}

// TransactionView provides read-only access to snapshot data for rules.
type TransactionView interface {
	ListStars() []Star
	FindStar(id int64) (Star, bool)
}

// PersistentStore is a minimal abstraction over durable backends. It mirrors
// the subset of store capabilities used directly by higher layers.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error)
	View(ctx context.Context, fn func(TransactionView) error) error
	GetStar(id int64) (Star, bool)
	ListStars() []Star
}
