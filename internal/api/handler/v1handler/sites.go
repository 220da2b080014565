package v1handler

import (
	"heritage/pkg/domain"
	"net/http"

	"github.com/go-faster/jx"
)

// ListSites returns a page of every heritage site ordered by name.
func (h Handler) ListSites(w http.ResponseWriter, r *http.Request) {
	page, err := h.deps.Registry.Sites(r.Context(), r.URL.Query().Get(fieldPage))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodePage(e, r, page, encodeSiteSummary)
	})
}

// GetSite returns a site with its aggregated country and region names.
func (h Handler) GetSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	site, err := h.deps.Registry.Site(r.Context(), domain.SiteID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSite(e, site) })
}

// NewSiteForm returns the choices a new site can reference.
func (h Handler) NewSiteForm(w http.ResponseWriter, r *http.Request) {
	choices, err := h.deps.Registry.SiteForm(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("choices", func(e *jx.Encoder) { encodeChoices(e, choices) })
		})
	})
}

// CreateSite validates and stores a new site. The response points at the
// new site's detail URL.
func (h Handler) CreateSite(w http.ResponseWriter, r *http.Request) {
	values, err := readValues(w, r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	in, err := parseSiteInput(values)
	if err != nil {
		writeError(w, r, err)

		return
	}

	site, err := h.deps.Registry.CreateSite(r.Context(), in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	w.Header().Set("Location", sitePath(site.ID))
	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeSite(e, site) })
}

// EditSiteForm returns the current site together with the form choices.
func (h Handler) EditSiteForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	site, err := h.deps.Registry.Site(r.Context(), domain.SiteID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}
	choices, err := h.deps.Registry.SiteForm(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("heritage_site", func(e *jx.Encoder) { encodeSite(e, site) })
			e.Field("choices", func(e *jx.Encoder) { encodeChoices(e, choices) })
		})
	})
}

// UpdateSite validates and overwrites a site, replacing its countries.
func (h Handler) UpdateSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	values, err := readValues(w, r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	in, err := parseSiteInput(values)
	if err != nil {
		writeError(w, r, err)

		return
	}

	site, err := h.deps.Registry.UpdateSite(r.Context(), domain.SiteID(id), in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Location", sitePath(site.ID))
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSite(e, site) })
}

// ConfirmDeleteSite describes what a delete would remove.
func (h Handler) ConfirmDeleteSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	site, err := h.deps.Registry.Site(r.Context(), domain.SiteID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("heritage_site", func(e *jx.Encoder) { encodeSiteSummary(e, site) })
			e.Field("message", func(e *jx.Encoder) {
				e.Str(`Are you sure you want to delete "` + site.Name + `"?`)
			})
		})
	})
}

// DeleteSite deletes a site and its country links.
func (h Handler) DeleteSite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Registry.DeleteSite(r.Context(), domain.SiteID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Search returns the page of sites matching the query string criteria
// together with the choices each criterion accepts.
func (h Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := parseSiteFilter(query)
	if err != nil {
		writeError(w, r, err)

		return
	}

	choices, err := h.deps.Registry.SearchChoices(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}
	page, err := h.deps.Registry.Search(r.Context(), filter, query.Get(fieldPage))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("choices", func(e *jx.Encoder) { encodeChoices(e, choices) })
			e.Field("results", func(e *jx.Encoder) { encodePage(e, r, page, encodeSiteSummary) })
		})
	})
}
