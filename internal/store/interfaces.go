// Package store defines the persistence contracts implemented by the
// postgres sub-package.
package store

import (
	"context"

	"github.com/axionlabs/axion-backend/internal/query"
	"github.com/axionlabs/axion-backend/types"
)

// ResourceStore is the uniform persistence contract for one resource
// collection. Entities are independent aggregates; single-record atomicity
// is all that is required.
type ResourceStore[T types.Entity] interface {
	// List returns the records selected by the composed query fragments.
	List(ctx context.Context, q query.Query) ([]T, error)
	// Get returns ErrNotFound if no record carries the id.
	Get(ctx context.Context, id string) (T, error)
	// Create assigns id and timestamps to the entity and persists it.
	Create(ctx context.Context, entity T) error
	// Update overwrites the stored record (last write wins) and advances
	// updated_at. Returns ErrNotFound if the record is absent.
	Update(ctx context.Context, entity T) error
	// Delete removes the record, returning ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}

// FeedbackStore adds the moderation transition to the uniform contract.
type FeedbackStore interface {
	ResourceStore[*types.Feedback]
	// SetApproved moves a feedback entry between the pending and approved
	// states. Setting the current state again is a no-op that still
	// advances updated_at.
	SetApproved(ctx context.Context, id string, approved bool) error
}
