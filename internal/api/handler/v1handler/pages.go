package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

const aboutText = "A catalog of UNESCO World Heritage Sites classified by the " +
	"UN Statistics Division M49 geographic hierarchy."

// Home returns the catalog's counts and entry points.
func (h Handler) Home(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Registry.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("site_count", func(e *jx.Encoder) { e.Int64(stats.Sites) })
			e.Field("country_count", func(e *jx.Encoder) { e.Int64(stats.Countries) })
			e.Field("links", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("about", func(e *jx.Encoder) { e.Str("/about/") })
					e.Field("sites", func(e *jx.Encoder) { e.Str("/sites/") })
					e.Field("countries", func(e *jx.Encoder) { e.Str("/countries/") })
					e.Field("search", func(e *jx.Encoder) { e.Str("/search/") })
					e.Field("docs", func(e *jx.Encoder) { e.Str("/docs/") })
				})
			})
		})
	})
}

// About describes the catalog.
func (h Handler) About(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("title", func(e *jx.Encoder) { e.Str("About UNESCO Heritage Sites") })
			e.Field("description", func(e *jx.Encoder) { e.Str(aboutText) })
		})
	})
}
