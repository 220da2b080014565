package v1handler

import (
	"fmt"
	"heritage/internal/auth"
	"heritage/internal/config"
	"heritage/pkg/domain"
	"heritage/pkg/logger"
	"heritage/pkg/serrors"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// SecHandlerOptions configure authentication of catalog visitors.
type SecHandlerOptions struct {
	Sessions auth.SessionOptions
	Google   auth.GoogleOptions
	// Provider replaces the Google provider built from Google when set.
	Provider auth.Provider

	// CookieName is the name of the session cookie.
	CookieName string
	// CookieSecure marks cookies as HTTPS only.
	CookieSecure bool
	// LoginURL is where visitors without a session are sent.
	LoginURL string
	// LoginRedirectURL is where visitors land after logging in or out.
	LoginRedirectURL string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		Sessions:         auth.NewSessionOptions(cfg),
		Google:           auth.NewGoogleOptions(cfg),
		CookieName:       cfg.Auth.CookieName,
		CookieSecure:     cfg.Auth.CookieSecure,
		LoginURL:         cfg.Auth.LoginURL,
		LoginRedirectURL: cfg.Auth.LoginRedirectURL,
	}
}

type SecHandler struct {
	options  *SecHandlerOptions
	sessions *auth.Sessions
	provider auth.Provider
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	sessions, err := auth.NewSessions(options.Sessions)
	if err != nil {
		return nil, fmt.Errorf("could not create sessions: %w", err)
	}

	provider := options.Provider
	if provider == nil {
		provider = auth.NewGoogle(options.Google)
	}

	return &SecHandler{
		options:  options,
		sessions: sessions,
		provider: provider,
	}, nil
}

// Authenticate returns the user of the request's session. The token is read
// from the Authorization bearer header, falling back to the session cookie.
func (s *SecHandler) Authenticate(r *http.Request) (*domain.User, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return nil, serrors.With(serrors.ErrUnauthorized, "unsupported authorization scheme")
		}

		return s.sessions.Verify(strings.TrimSpace(token)) //nolint: wrapcheck
	}

	cookie, err := r.Cookie(s.options.CookieName)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "no session")
	}

	return s.sessions.Verify(cookie.Value) //nolint: wrapcheck
}

// RequireLogin lets requests with a valid session through and stores the
// user in their context. API clients presenting an invalid bearer token get
// a 401; everybody else is redirected to the login page and brought back
// afterwards.
func (s *SecHandler) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.Authenticate(r)
		if err == nil {
			ctx := logger.WithFields(auth.WithUser(r.Context(), user), zap.String("userID", user.ID))
			next.ServeHTTP(w, r.WithContext(ctx))

			return
		}

		if r.Header.Get("Authorization") != "" {
			writeError(w, r, err)

			return
		}

		target := s.options.LoginURL + "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
		http.Redirect(w, r, target, http.StatusFound)
	})
}

// safeNext returns next when it is a path on this site, otherwise fallback.
func safeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return fallback
	}

	return next
}
