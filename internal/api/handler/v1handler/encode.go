package v1handler

import (
	"heritage/internal/registry"
	"heritage/pkg/domain"
	"heritage/pkg/serrors"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

func sitePath(id domain.SiteID) string {
	return "/sites/" + strconv.FormatInt(int64(id), 10) + "/"
}

func countryPath(id domain.CountryAreaID) string {
	return "/countries/" + strconv.FormatInt(int64(id), 10) + "/"
}

// pageLink returns the URL of another page of the current listing, keeping
// every other query parameter.
func pageLink(r *http.Request, number uint) string {
	q := r.URL.Query()
	q.Set("page", strconv.FormatUint(uint64(number), 10))

	return r.URL.Path + "?" + q.Encode()
}

func optStr(e *jx.Encoder, s string) {
	if s == "" {
		e.Null()

		return
	}
	e.Str(s)
}

func optName(e *jx.Encoder, name string, ok bool) {
	if !ok {
		e.Null()

		return
	}
	e.Str(name)
}

func optInt(e *jx.Encoder, v *int) {
	if v == nil {
		e.Null()

		return
	}
	e.Int(*v)
}

func optFloat(e *jx.Encoder, v *float64) {
	if v == nil {
		e.Null()

		return
	}
	e.Float64(*v)
}

// optDecimal writes the decimal as a JSON number without going through
// float64.
func optDecimal(e *jx.Encoder, v *decimal.Decimal) {
	if v == nil {
		e.Null()

		return
	}
	e.Raw([]byte(v.String()))
}

func encodePage[T any](e *jx.Encoder, r *http.Request, p *domain.Page[T], item func(e *jx.Encoder, v *T)) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("count", func(e *jx.Encoder) { e.Int64(p.Total) })
		e.Field("page", func(e *jx.Encoder) { e.Int64(int64(p.Number)) })
		e.Field("num_pages", func(e *jx.Encoder) { e.Int64(int64(p.NumPages())) })
		e.Field("next", func(e *jx.Encoder) {
			if !p.HasNext() {
				e.Null()

				return
			}
			e.Str(pageLink(r, p.Number+1))
		})
		e.Field("previous", func(e *jx.Encoder) {
			if !p.HasPrevious() {
				e.Null()

				return
			}
			e.Str(pageLink(r, p.Number-1))
		})
		e.Field("results", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range p.Items {
					item(e, &p.Items[i])
				}
			})
		})
	})
}

func encodeCategory(e *jx.Encoder, c *domain.HeritageSiteCategory) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("category_id", func(e *jx.Encoder) { e.Int64(int64(c.ID)) })
		e.Field("category_name", func(e *jx.Encoder) { e.Str(c.Name) })
	})
}

func encodeCountryRef(e *jx.Encoder, c *domain.CountryArea) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("country_area_id", func(e *jx.Encoder) { e.Int64(int64(c.ID)) })
		e.Field("country_area_name", func(e *jx.Encoder) { e.Str(c.Name) })
		e.Field("iso_alpha3_code", func(e *jx.Encoder) { e.Str(c.ISOAlpha3Code) })
		e.Field("url", func(e *jx.Encoder) { e.Str(countryPath(c.ID)) })
	})
}

func encodeCountry(e *jx.Encoder, c *domain.CountryArea) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("country_area_id", func(e *jx.Encoder) { e.Int64(int64(c.ID)) })
		e.Field("country_area_name", func(e *jx.Encoder) { e.Str(c.Name) })
		e.Field("display_name", func(e *jx.Encoder) { e.Str(c.DisplayName()) })
		e.Field("m49_code", func(e *jx.Encoder) { e.Int(c.M49Code) })
		e.Field("iso_alpha3_code", func(e *jx.Encoder) { e.Str(c.ISOAlpha3Code) })
		e.Field("location", func(e *jx.Encoder) { e.Str(c.Location.Name()) })
		e.Field("region", func(e *jx.Encoder) {
			name, ok := c.RegionName()
			optName(e, name, ok)
		})
		e.Field("sub_region", func(e *jx.Encoder) {
			name, ok := c.SubRegionName()
			optName(e, name, ok)
		})
		e.Field("intermediate_region", func(e *jx.Encoder) {
			name, ok := c.IntermediateRegionName()
			optName(e, name, ok)
		})
		e.Field("dev_status", func(e *jx.Encoder) {
			if c.DevStatus == nil {
				e.Null()

				return
			}
			e.Str(c.DevStatus.Name)
		})
		e.Field("url", func(e *jx.Encoder) { e.Str(countryPath(c.ID)) })
	})
}

// encodeSiteSummary renders the columns shown in site listings.
func encodeSiteSummary(e *jx.Encoder, s *domain.HeritageSite) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("heritage_site_id", func(e *jx.Encoder) { e.Int64(int64(s.ID)) })
		e.Field("site_name", func(e *jx.Encoder) { e.Str(s.Name) })
		e.Field("heritage_site_category", func(e *jx.Encoder) { e.Str(s.Category.Name) })
		e.Field("date_inscribed", func(e *jx.Encoder) { optInt(e, s.DateInscribed) })
		e.Field("country_area_display", func(e *jx.Encoder) { e.Str(s.CountryAreaNames()) })
		e.Field("url", func(e *jx.Encoder) { e.Str(sitePath(s.ID)) })
	})
}

// encodeSite renders a site with its aggregated country and region names.
func encodeSite(e *jx.Encoder, s *domain.HeritageSite) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("heritage_site_id", func(e *jx.Encoder) { e.Int64(int64(s.ID)) })
		e.Field("site_name", func(e *jx.Encoder) { e.Str(s.Name) })
		e.Field("description", func(e *jx.Encoder) { e.Str(s.Description) })
		e.Field("justification", func(e *jx.Encoder) { optStr(e, s.Justification) })
		e.Field("date_inscribed", func(e *jx.Encoder) { optInt(e, s.DateInscribed) })
		e.Field("longitude", func(e *jx.Encoder) { optDecimal(e, s.Longitude) })
		e.Field("latitude", func(e *jx.Encoder) { optDecimal(e, s.Latitude) })
		e.Field("area_hectares", func(e *jx.Encoder) { optFloat(e, s.AreaHectares) })
		e.Field("heritage_site_category", func(e *jx.Encoder) { encodeCategory(e, &s.Category) })
		e.Field("transboundary", func(e *jx.Encoder) { e.Bool(s.Transboundary) })
		e.Field("country_area", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, c := range s.Countries() {
					encodeCountryRef(e, c)
				}
			})
		})
		e.Field("country_area_display", func(e *jx.Encoder) { e.Str(s.CountryAreaNames()) })
		e.Field("region_display", func(e *jx.Encoder) { e.Str(s.RegionNames()) })
		e.Field("sub_region_display", func(e *jx.Encoder) { e.Str(s.SubRegionNames()) })
		e.Field("intermediate_region_display", func(e *jx.Encoder) { e.Str(s.IntermediateRegionNames()) })
		e.Field("url", func(e *jx.Encoder) { e.Str(sitePath(s.ID)) })
	})
}

type choice struct {
	id   int64
	name string
}

func encodeChoiceList(e *jx.Encoder, choices []choice) {
	e.Arr(func(e *jx.Encoder) {
		for _, c := range choices {
			e.Obj(func(e *jx.Encoder) {
				e.Field("id", func(e *jx.Encoder) { e.Int64(c.id) })
				e.Field("name", func(e *jx.Encoder) { e.Str(c.name) })
			})
		}
	})
}

func toChoices[T any](items []T, conv func(*T) choice) []choice {
	out := make([]choice, 0, len(items))
	for i := range items {
		out = append(out, conv(&items[i]))
	}

	return out
}

// encodeChoices renders the choice lists that are set. Site forms only
// carry categories and countries.
func encodeChoices(e *jx.Encoder, c *domain.FilterChoices) {
	e.Obj(func(e *jx.Encoder) {
		if c.Categories != nil {
			e.Field(fieldCategory, func(e *jx.Encoder) {
				encodeChoiceList(e, toChoices(c.Categories, func(v *domain.HeritageSiteCategory) choice {
					return choice{int64(v.ID), v.Name}
				}))
			})
		}
		if c.Regions != nil {
			e.Field(fieldRegion, func(e *jx.Encoder) {
				encodeChoiceList(e, toChoices(c.Regions, func(v *domain.Region) choice {
					return choice{int64(v.ID), v.Name}
				}))
			})
		}
		if c.SubRegions != nil {
			e.Field(fieldSubRegion, func(e *jx.Encoder) {
				encodeChoiceList(e, toChoices(c.SubRegions, func(v *domain.SubRegion) choice {
					return choice{int64(v.ID), v.Name}
				}))
			})
		}
		if c.IntermediateRegions != nil {
			e.Field(fieldIntermediateRegion, func(e *jx.Encoder) {
				encodeChoiceList(e, toChoices(c.IntermediateRegions, func(v *domain.IntermediateRegion) choice {
					return choice{int64(v.ID), v.Name}
				}))
			})
		}
		if c.Countries != nil {
			e.Field(fieldCountryArea, func(e *jx.Encoder) {
				encodeChoiceList(e, toChoices(c.Countries, func(v *domain.CountryArea) choice {
					return choice{int64(v.ID), v.DisplayName()}
				}))
			})
		}
	})
}

func encodeCountryDetail(e *jx.Encoder, d *registry.CountryDetail) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("country_area", func(e *jx.Encoder) { encodeCountry(e, &d.Country) })
		e.Field("location", func(e *jx.Encoder) { e.Str(d.LocationName) })
		e.Field("heritage_sites", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range d.Sites {
					encodeSiteSummary(e, &d.Sites[i])
				}
			})
		})
	})
}

func encodeFieldErrors(e *jx.Encoder, fields serrors.FieldErrors) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	e.Obj(func(e *jx.Encoder) {
		for _, name := range names {
			e.Field(name, func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, msg := range fields[name] {
						e.Str(msg)
					}
				})
			})
		}
	})
}
