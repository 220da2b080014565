package registry

import (
	"context"
	"fmt"
	"heritage/pkg/domain"
	"heritage/pkg/serrors"
	"heritage/pkg/storage"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field names reported in validation errors.
const (
	FieldSiteName      = "site_name"
	FieldDescription   = "description"
	FieldDateInscribed = "date_inscribed"
	FieldLongitude     = "longitude"
	FieldLatitude      = "latitude"
	FieldAreaHectares  = "area_hectares"
	FieldCategory      = "heritage_site_category"
	FieldCountryArea   = "country_area"
)

const (
	maxSiteNameLength  = 255
	coordinateDecimals = 8

	msgRequired = "This field is required."
)

var (
	maxLongitude = decimal.NewFromInt(180) //nolint: gochecknoglobals
	maxLatitude  = decimal.NewFromInt(90)  //nolint: gochecknoglobals
)

// normalizeInput cleans user supplied text and collapses duplicate country
// IDs, keeping their first-seen order.
func normalizeInput(in domain.SiteInput) domain.SiteInput {
	in.Name = NormalizeName(in.Name)
	in.Description = normalizeText(in.Description)
	in.Justification = normalizeText(in.Justification)

	ids := make([]domain.CountryAreaID, 0, len(in.CountryIDs))
	for _, id := range in.CountryIDs {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	in.CountryIDs = ids

	return in
}

// validateFields checks the constraints that need no storage access.
func validateFields(in domain.SiteInput, errs serrors.FieldErrors) {
	switch {
	case in.Name == "":
		errs.Add(FieldSiteName, msgRequired)
	case utf8.RuneCountInString(in.Name) > maxSiteNameLength:
		errs.Add(FieldSiteName, "Ensure this value has at most %d characters.", maxSiteNameLength)
	}
	if in.Description == "" {
		errs.Add(FieldDescription, msgRequired)
	}
	if in.DateInscribed != nil && *in.DateInscribed <= 0 {
		errs.Add(FieldDateInscribed, "Enter a positive year.")
	}
	if in.Longitude != nil {
		validateCoordinate(FieldLongitude, *in.Longitude, maxLongitude, errs)
	}
	if in.Latitude != nil {
		validateCoordinate(FieldLatitude, *in.Latitude, maxLatitude, errs)
	}
	if in.AreaHectares != nil {
		a := *in.AreaHectares
		if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
			errs.Add(FieldAreaHectares, "Ensure this value is greater than or equal to 0.")
		}
	}
	if in.CategoryID <= 0 {
		errs.Add(FieldCategory, msgRequired)
	}
}

func validateCoordinate(field string, v, limit decimal.Decimal, errs serrors.FieldErrors) {
	if v.Abs().GreaterThan(limit) {
		errs.Add(field, "Ensure this value is between -%s and %s.", limit, limit)
	}
	if !v.Equal(v.Round(coordinateDecimals)) {
		errs.Add(field, "Ensure that there are no more than %d decimal places.", coordinateDecimals)
	}
}

// validateReferences checks the constraints that need storage: the name must
// be unused by any other site and the category and countries must exist.
func validateReferences(ctx context.Context,
	tx storage.AllStorage,
	id domain.SiteID,
	in domain.SiteInput,
	errs serrors.FieldErrors) error {
	if in.Name != "" {
		other, found, err := tx.SiteIDByName(ctx, in.Name)
		if err != nil {
			return fmt.Errorf("could not look up site name: %w", err)
		}
		if found && other != id {
			errs.Add(FieldSiteName, "Heritage site with this Site name already exists.")
		}
	}

	if in.CategoryID > 0 {
		category, err := tx.CategoryByID(ctx, in.CategoryID)
		if err != nil {
			return fmt.Errorf("could not get category: %w", err)
		}
		if category == nil {
			errs.Add(FieldCategory, "Select a valid choice. %d is not one of the available choices.", in.CategoryID)
		}
	}

	if len(in.CountryIDs) > 0 {
		existing, err := tx.ExistingCountryIDs(ctx, in.CountryIDs)
		if err != nil {
			return fmt.Errorf("could not get countries: %w", err)
		}
		for _, c := range in.CountryIDs {
			if !slices.Contains(existing, c) {
				errs.Add(FieldCountryArea, "Select a valid choice. %d is not one of the available choices.", c)
			}
		}
	}

	return nil
}
