package domain

import (
	"github.com/shopspring/decimal"
)

// SiteID identifies a heritage site.
type SiteID int64

// CategoryID identifies a heritage site category.
type CategoryID int64

// JurisdictionID identifies a (site, country) link.
type JurisdictionID int64

// HeritageSiteCategory is one of the small closed set of inscription
// categories (Cultural, Natural, Mixed).
type HeritageSiteCategory struct {
	ID   CategoryID `json:"id"`
	Name string     `json:"name"`
}

// Jurisdiction links a heritage site to one country or area. Country is nil
// when the linked row could not be resolved.
type Jurisdiction struct {
	ID      JurisdictionID `json:"id"`
	Country *CountryArea   `json:"country"`
}

// HeritageSite is a UNESCO World Heritage Site. Transboundary sites are linked
// to more than one country through Jurisdictions.
type HeritageSite struct {
	ID          SiteID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Justification is the optional inscription justification text.
	Justification string `json:"justification,omitempty"`
	// DateInscribed is the inscription year, if known.
	DateInscribed *int                 `json:"dateInscribed,omitempty"`
	Longitude     *decimal.Decimal     `json:"longitude,omitempty"`
	Latitude      *decimal.Decimal     `json:"latitude,omitempty"`
	AreaHectares  *float64             `json:"areaHectares,omitempty"`
	Category      HeritageSiteCategory `json:"category"`
	Transboundary bool                 `json:"transboundary"`
	Jurisdictions []Jurisdiction       `json:"jurisdictions"`
}

// SiteInput carries the writable fields of a heritage site as submitted by a
// client. It is validated by the registry before being persisted.
type SiteInput struct {
	Name          string
	Description   string
	Justification string
	DateInscribed *int
	Longitude     *decimal.Decimal
	Latitude      *decimal.Decimal
	AreaHectares  *float64
	CategoryID    CategoryID
	Transboundary bool
	CountryIDs    []CountryAreaID
}

// Site builds the site entity described by the input. Jurisdictions are not
// part of the returned value; they are stored separately.
func (in SiteInput) Site(id SiteID) HeritageSite {
	return HeritageSite{
		ID:            id,
		Name:          in.Name,
		Description:   in.Description,
		Justification: in.Justification,
		DateInscribed: in.DateInscribed,
		Longitude:     in.Longitude,
		Latitude:      in.Latitude,
		AreaHectares:  in.AreaHectares,
		Category:      HeritageSiteCategory{ID: in.CategoryID},
		Transboundary: in.Transboundary,
	}
}
