package v1handler

import (
	"heritage/pkg/domain"
	"net/http"

	"github.com/go-faster/jx"
)

// ListCountries returns a page of countries or areas ordered by name.
func (h Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	page, err := h.deps.Registry.Countries(r.Context(), r.URL.Query().Get(fieldPage))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodePage(e, r, page, encodeCountry)
	})
}

// GetCountry returns a country with the sites under its jurisdiction.
func (h Handler) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	detail, err := h.deps.Registry.Country(r.Context(), domain.CountryAreaID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCountryDetail(e, detail) })
}
