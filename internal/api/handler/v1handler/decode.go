package v1handler

import (
	"heritage/internal/registry"
	"heritage/pkg/domain"
	"heritage/pkg/serrors"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// Request field names. Site fields share their names with the validation
// errors reported by the registry.
const (
	fieldCategory           = registry.FieldCategory
	fieldCountryArea        = registry.FieldCountryArea
	fieldRegion             = "region"
	fieldSubRegion          = "sub_region"
	fieldIntermediateRegion = "intermediate_region"
	fieldJustification      = "justification"
	fieldTransboundary      = "transboundary"
	fieldPage               = "page"
)

const maxBodyBytes = 1 << 20

const (
	msgWholeNumber   = "Enter a whole number."
	msgNumber        = "Enter a number."
	msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
)

// readValues reads a site submission as form values. JSON objects are
// flattened into the same shape: scalars become single values and arrays of
// scalars become repeated values.
func readValues(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		values, err := decodeJSONValues(jx.Decode(r.Body, 4096))
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "malformed JSON body")
		}

		return values, nil
	case "application/x-www-form-urlencoded", "":
		if err := r.ParseForm(); err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "malformed form body")
		}

		return r.PostForm, nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported content type %q", mediaType)
	}
}

func decodeJSONValues(d *jx.Decoder) (url.Values, error) {
	values := url.Values{}
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if d.Next() != jx.Array {
			v, err := decodeScalar(d)
			if err != nil {
				return errors.Wrapf(err, "decode %q", key)
			}
			values.Set(key, v)

			return nil
		}

		values[key] = []string{}

		return d.Arr(func(d *jx.Decoder) error {
			v, err := decodeScalar(d)
			if err != nil {
				return errors.Wrapf(err, "decode %q item", key)
			}
			values.Add(key, v)

			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode object")
	}

	return values, nil
}

// decodeScalar returns a JSON scalar as the text a form would have carried.
// null becomes the empty string.
func decodeScalar(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.Null:
		return "", d.Null()
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()

		return string(n), err
	case jx.Bool:
		b, err := d.Bool()

		return strconv.FormatBool(b), err
	default:
		return "", errors.New("expected a scalar value")
	}
}

// parseCheckbox follows HTML checkbox semantics: any non-empty value is
// checked except the usual spellings of false.
func parseCheckbox(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "0", "off", "no":
		return false
	default:
		return true
	}
}

func parseOptInt(values url.Values, field string, errs serrors.FieldErrors) *int {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(field, msgWholeNumber)

		return nil
	}

	return &v
}

func parseOptDecimal(values url.Values, field string, errs serrors.FieldErrors) *decimal.Decimal {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		errs.Add(field, msgNumber)

		return nil
	}

	return &v
}

func parseOptFloat(values url.Values, field string, errs serrors.FieldErrors) *float64 {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add(field, msgNumber)

		return nil
	}

	return &v
}

// parseOptID reads a choice field. ok is false when the field is unset.
func parseOptID(values url.Values, field string, errs serrors.FieldErrors) (id int64, ok bool) {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs.Add(field, msgInvalidChoice)

		return 0, false
	}

	return id, true
}

// parseSiteInput maps submitted values onto a SiteInput. Values that cannot
// be parsed are reported per field; range and reference checks are left to
// the registry.
func parseSiteInput(values url.Values) (domain.SiteInput, error) {
	errs := serrors.FieldErrors{}
	in := domain.SiteInput{
		Name:          values.Get(registry.FieldSiteName),
		Description:   values.Get(registry.FieldDescription),
		Justification: values.Get(fieldJustification),
		DateInscribed: parseOptInt(values, registry.FieldDateInscribed, errs),
		Longitude:     parseOptDecimal(values, registry.FieldLongitude, errs),
		Latitude:      parseOptDecimal(values, registry.FieldLatitude, errs),
		AreaHectares:  parseOptFloat(values, registry.FieldAreaHectares, errs),
		Transboundary: parseCheckbox(values.Get(fieldTransboundary)),
	}
	if id, ok := parseOptID(values, fieldCategory, errs); ok {
		in.CategoryID = domain.CategoryID(id)
	}

	for _, raw := range values[fieldCountryArea] {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs.Add(fieldCountryArea, "%q is not a valid value.", raw)

			continue
		}
		in.CountryIDs = append(in.CountryIDs, domain.CountryAreaID(id))
	}

	if err := errs.Err("invalid heritage site"); err != nil {
		return domain.SiteInput{}, err
	}

	return in, nil
}

// parseSiteFilter reads search criteria from the query string.
func parseSiteFilter(query url.Values) (domain.SiteFilter, error) {
	errs := serrors.FieldErrors{}
	filter := domain.SiteFilter{
		SiteName:      query.Get(registry.FieldSiteName),
		Description:   query.Get(registry.FieldDescription),
		DateInscribed: query.Get(registry.FieldDateInscribed),
	}

	if id, ok := parseOptID(query, fieldCategory, errs); ok {
		v := domain.CategoryID(id)
		filter.CategoryID = &v
	}
	if id, ok := parseOptID(query, fieldRegion, errs); ok {
		v := domain.RegionID(id)
		filter.RegionID = &v
	}
	if id, ok := parseOptID(query, fieldSubRegion, errs); ok {
		v := domain.SubRegionID(id)
		filter.SubRegionID = &v
	}
	if id, ok := parseOptID(query, fieldIntermediateRegion, errs); ok {
		v := domain.IntermediateRegionID(id)
		filter.IntermediateRegionID = &v
	}
	if id, ok := parseOptID(query, fieldCountryArea, errs); ok {
		v := domain.CountryAreaID(id)
		filter.CountryAreaID = &v
	}

	if err := errs.Err("invalid search"); err != nil {
		return domain.SiteFilter{}, err
	}

	return filter, nil
}
