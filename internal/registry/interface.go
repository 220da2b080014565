// Package registry implements the catalog's use cases on top of storage:
// listing and searching heritage sites, validating and persisting site
// changes, browsing countries and deleting reference rows that nothing
// depends on.
package registry

import (
	"context"
	"heritage/pkg/domain"
)

// CountryDetail is a country together with the name of its most specific
// classification and every heritage site under its jurisdiction.
type CountryDetail struct {
	Country      domain.CountryArea
	LocationName string
	Sites        []domain.HeritageSite
}

// Stats summarises the catalog.
type Stats struct {
	Sites     int64
	Countries int64
}

//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
type Registry interface {
	// Stats counts sites and countries.
	Stats(ctx context.Context) (*Stats, error)
	// Sites returns a page of every site ordered by name. page is a 1-based
	// number or "last"; an empty page means the first one.
	Sites(ctx context.Context, page string) (*domain.Page[domain.HeritageSite], error)
	// Site returns a site with its jurisdictions.
	Site(ctx context.Context, id domain.SiteID) (*domain.HeritageSite, error)
	// CreateSite validates and stores a new site with its jurisdictions.
	CreateSite(ctx context.Context, in domain.SiteInput) (*domain.HeritageSite, error)
	// UpdateSite validates and overwrites a site, replacing its jurisdictions.
	UpdateSite(ctx context.Context, id domain.SiteID, in domain.SiteInput) (*domain.HeritageSite, error)
	// DeleteSite deletes a site and its jurisdictions.
	DeleteSite(ctx context.Context, id domain.SiteID) error
	// Search returns a page of the sites matching the filter.
	Search(ctx context.Context, filter domain.SiteFilter, page string) (*domain.Page[domain.HeritageSite], error)
	// SearchChoices returns the values a search filter can choose from.
	SearchChoices(ctx context.Context) (*domain.FilterChoices, error)
	// SiteForm returns the categories and countries a site can reference.
	SiteForm(ctx context.Context) (*domain.FilterChoices, error)
	// Countries returns a page of countries ordered by name.
	Countries(ctx context.Context, page string) (*domain.Page[domain.CountryArea], error)
	// Country returns a country with its sites.
	Country(ctx context.Context, id domain.CountryAreaID) (*CountryDetail, error)
	// DeleteReference deletes a reference row nothing depends on.
	DeleteReference(ctx context.Context, kind domain.ReferenceKind, id int64) error
}
