package v1handler

import (
	"github.com/go-chi/chi/v5"
)

// Routes registers the catalog and login endpoints. Browsing countries and
// every site mutation require a session.
func Routes(r chi.Router, h *Handler, sec *SecHandler) {
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Home)
	r.Get("/about/", h.About)
	r.Get("/sites/", h.ListSites)
	r.Get("/sites/{id:[0-9]+}/", h.GetSite)
	r.Get("/search/", h.Search)

	r.Group(func(r chi.Router) {
		r.Use(sec.RequireLogin)

		r.Get("/countries/", h.ListCountries)
		r.Get("/countries/{id:[0-9]+}/", h.GetCountry)
		r.Get("/sites/new/", h.NewSiteForm)
		r.Post("/sites/new/", h.CreateSite)
		r.Get("/sites/{id:[0-9]+}/update/", h.EditSiteForm)
		r.Post("/sites/{id:[0-9]+}/update/", h.UpdateSite)
		r.Get("/sites/{id:[0-9]+}/delete/", h.ConfirmDeleteSite)
		r.Post("/sites/{id:[0-9]+}/delete/", h.DeleteSite)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login/google-oauth2/", sec.Login)
		r.Get("/complete/google-oauth2/", sec.Complete)
		r.Get("/logout/", sec.Logout)
		r.Post("/logout/", sec.Logout)
	})
}
