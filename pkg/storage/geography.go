package storage

import (
	"context"
	"heritage/pkg/domain"
)

// GeographyStorage exposes the read-only reference data: the M49 hierarchy,
// countries or areas and heritage site categories. All list methods return
// rows ordered by name.
type GeographyStorage interface {
	// CountCountries returns the number of countries or areas.
	CountCountries(ctx context.Context) (int64, error)
	// Countries returns up to limit countries ordered by name, skipping the
	// first offset rows. A zero limit returns every country.
	Countries(ctx context.Context, limit, offset uint) ([]domain.CountryArea, error)
	// CountryByID fetches a country with its location and development status.
	// Returns nil when not found.
	CountryByID(ctx context.Context, ID domain.CountryAreaID) (*domain.CountryArea, error)
	// ExistingCountryIDs returns the subset of IDs that exist.
	ExistingCountryIDs(ctx context.Context, IDs []domain.CountryAreaID) ([]domain.CountryAreaID, error)
	// CategoryByID fetches a category. Returns nil when not found.
	CategoryByID(ctx context.Context, ID domain.CategoryID) (*domain.HeritageSiteCategory, error)
	// Categories returns every heritage site category.
	Categories(ctx context.Context) ([]domain.HeritageSiteCategory, error)
	// Regions returns every region.
	Regions(ctx context.Context) ([]domain.Region, error)
	// SubRegions returns every sub-region.
	SubRegions(ctx context.Context) ([]domain.SubRegion, error)
	// IntermediateRegions returns every intermediate region.
	IntermediateRegions(ctx context.Context) ([]domain.IntermediateRegion, error)
}

// ReferenceStorage deletes reference rows under a protect-on-delete
// discipline. Callers are expected to check dependents first, inside the
// same transaction as the delete.
type ReferenceStorage interface {
	// ReferenceExists reports whether the reference row exists.
	ReferenceExists(ctx context.Context, kind domain.ReferenceKind, ID int64) (bool, error)
	// ReferenceDependents counts, per dependent table, the rows that still
	// reference the given row. Tables without dependents are omitted.
	ReferenceDependents(ctx context.Context, kind domain.ReferenceKind, ID int64) ([]domain.Dependent, error)
	// DeleteReference deletes the reference row. The boolean is false when
	// it does not exist. ErrReferenced is returned when the backend refuses
	// the delete because of a foreign key.
	DeleteReference(ctx context.Context, kind domain.ReferenceKind, ID int64) (bool, error)
}
