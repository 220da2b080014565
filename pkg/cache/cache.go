// Package cache keeps the enumerated choice lists used by search and site
// forms out of the database. The lists only change when reference data is
// deleted, which invalidates them explicitly; a TTL bounds staleness caused
// by changes made outside this service.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"heritage/pkg/domain"
)

// ChoicesCache stores a single FilterChoices value.
type ChoicesCache interface {
	// Choices returns the cached value, or nil when nothing is cached.
	Choices(ctx context.Context) (*domain.FilterChoices, error)
	// StoreChoices caches the value until it expires or is invalidated.
	StoreChoices(ctx context.Context, choices domain.FilterChoices) error
	// Invalidate drops the cached value.
	Invalidate(ctx context.Context) error
}
