package v1handler

import (
	"crypto/subtle"
	"heritage/internal/auth"
	"heritage/pkg/logger"
	"heritage/pkg/serrors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	stateCookie    = "heritage_oauth_state"
	verifierCookie = "heritage_oauth_verifier"
	nextCookie     = "heritage_oauth_next"

	oauthCookiePath = "/auth/"
	oauthCookieTTL  = 10 * time.Minute
)

func (s *SecHandler) setCookie(w http.ResponseWriter, name, value, path string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.options.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SecHandler) clearCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.options.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Login starts the authorization code flow. The state and PKCE verifier are
// kept in short-lived cookies scoped to the callback.
func (s *SecHandler) Login(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	verifier := auth.NewVerifier()
	next := safeNext(r.URL.Query().Get("next"), s.options.LoginRedirectURL)

	s.setCookie(w, stateCookie, state, oauthCookiePath, oauthCookieTTL)
	s.setCookie(w, verifierCookie, verifier, oauthCookiePath, oauthCookieTTL)
	s.setCookie(w, nextCookie, next, oauthCookiePath, oauthCookieTTL)

	http.Redirect(w, r, s.provider.AuthCodeURL(state, verifier), http.StatusFound)
}

// Complete is the OAuth2 callback. It checks the state, exchanges the code
// and starts a session.
func (s *SecHandler) Complete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if reason := query.Get("error"); reason != "" {
		writeError(w, r, serrors.With(serrors.ErrUnauthorized, "login was not completed: %s", reason))

		return
	}

	state, err := r.Cookie(stateCookie)
	if err != nil || subtle.ConstantTimeCompare([]byte(state.Value), []byte(query.Get("state"))) != 1 {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid login state"))

		return
	}
	verifier, err := r.Cookie(verifierCookie)
	if err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "missing login verifier"))

		return
	}

	user, err := s.provider.Exchange(r.Context(), query.Get("code"), verifier.Value)
	if err != nil {
		logger.Warn(r.Context(), "oauth exchange failed", zap.Error(err))
		writeError(w, r, serrors.Wrap(serrors.ErrUnauthorized, err, "could not log in"))

		return
	}

	token, expiresAt, err := s.sessions.Issue(*user)
	if err != nil {
		writeError(w, r, err)

		return
	}

	next := s.options.LoginRedirectURL
	if c, err := r.Cookie(nextCookie); err == nil {
		next = safeNext(c.Value, next)
	}

	s.clearCookie(w, stateCookie, oauthCookiePath)
	s.clearCookie(w, verifierCookie, oauthCookiePath)
	s.clearCookie(w, nextCookie, oauthCookiePath)
	s.setCookie(w, s.options.CookieName, token, "/", time.Until(expiresAt))

	logger.Info(r.Context(), "user logged in", zap.String("userID", user.ID))
	http.Redirect(w, r, next, http.StatusFound)
}

// Logout ends the session.
func (s *SecHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s.clearCookie(w, s.options.CookieName, "/")
	http.Redirect(w, r, s.options.LoginRedirectURL, http.StatusFound)
}
