package storage

import (
	"context"
	"heritage/pkg/domain"
)

// SiteStorage defines CRUD and query operations over heritage sites and their
// jurisdictions. Sites are always returned with their category and their
// jurisdictions resolved down to the country's location hierarchy.
type SiteStorage interface {
	// CountSites returns the number of sites matching the filter.
	CountSites(ctx context.Context, filter domain.SiteFilter) (int64, error)
	// Sites returns up to limit sites matching the filter ordered by site name,
	// skipping the first offset matches.
	Sites(ctx context.Context, filter domain.SiteFilter, limit, offset uint) ([]domain.HeritageSite, error)
	// SiteByID fetches a site by its ID. Returns nil when not found.
	SiteByID(ctx context.Context, ID domain.SiteID) (*domain.HeritageSite, error)
	// SitesByCountry returns every site under the jurisdiction of the country,
	// ordered by site name.
	SitesByCountry(ctx context.Context, countryID domain.CountryAreaID) ([]domain.HeritageSite, error)
	// SiteIDByName looks a site up by its exact name. The boolean is false
	// when no site has that name.
	SiteIDByName(ctx context.Context, name string) (domain.SiteID, bool, error)
	// StoreSite inserts a site (its jurisdictions excluded) and returns its
	// generated ID. ErrDuplicate is returned when the name is already taken.
	StoreSite(ctx context.Context, site domain.HeritageSite) (domain.SiteID, error)
	// UpdateSite overwrites the writable columns of an existing site. The
	// boolean is false when the site does not exist.
	UpdateSite(ctx context.Context, site domain.HeritageSite) (bool, error)
	// DeleteSite removes the site and its jurisdictions. The boolean is false
	// when the site does not exist.
	DeleteSite(ctx context.Context, ID domain.SiteID) (bool, error)
	// ReplaceJurisdictions makes countryIDs the exact set of countries the
	// site is linked to.
	ReplaceJurisdictions(ctx context.Context, siteID domain.SiteID, countryIDs []domain.CountryAreaID) error
}
