package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"heritage/internal/auth"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newGoogleServer(t *testing.T, verifier string, userInfo string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}
		if r.PostForm.Get("code") != "good-code" || r.PostForm.Get("code_verifier") != verifier {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userInfo))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newGoogle(srv *httptest.Server) *auth.Google {
	return auth.NewGoogle(auth.GoogleOptions{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/auth/complete/google-oauth2/",
		Endpoint: oauth2.Endpoint{
			AuthURL:   srv.URL + "/auth",
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		UserInfoURL: srv.URL + "/userinfo",
	})
}

func TestGoogle_AuthCodeURL(t *testing.T) {
	g := auth.NewGoogle(auth.GoogleOptions{ClientID: "client", RedirectURL: "http://localhost/cb"})
	verifier := auth.NewVerifier()

	u, err := url.Parse(g.AuthCodeURL("state-1", verifier))
	require.NoError(t, err)
	require.Equal(t, "accounts.google.com", u.Host)

	q := u.Query()
	require.Equal(t, "state-1", q.Get("state"))
	require.Equal(t, "client", q.Get("client_id"))
	require.Equal(t, "code", q.Get("response_type"))
	require.Equal(t, "S256", q.Get("code_challenge_method"))
	require.Equal(t, oauth2.S256ChallengeFromVerifier(verifier), q.Get("code_challenge"))
	require.Contains(t, q.Get("scope"), "email")
}

func TestGoogle_Exchange(t *testing.T) {
	verifier := auth.NewVerifier()
	srv := newGoogleServer(t, verifier, `{"sub":"1080","email":"ada@example.com","email_verified":true,"name":"Ada","picture":"https://x"}`)
	g := newGoogle(srv)

	user, err := g.Exchange(context.Background(), "good-code", verifier)
	require.NoError(t, err)
	require.Equal(t, "1080", user.ID)
	require.Equal(t, "ada@example.com", user.Email)
	require.Equal(t, "Ada", user.Name)
}

func TestGoogle_Exchange_Errors(t *testing.T) {
	verifier := auth.NewVerifier()

	t.Run("bad code", func(t *testing.T) {
		g := newGoogle(newGoogleServer(t, verifier, `{"sub":"1"}`))
		_, err := g.Exchange(context.Background(), "bad-code", verifier)
		require.Error(t, err)
	})

	t.Run("wrong verifier", func(t *testing.T) {
		g := newGoogle(newGoogleServer(t, verifier, `{"sub":"1"}`))
		_, err := g.Exchange(context.Background(), "good-code", auth.NewVerifier())
		require.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		g := newGoogle(newGoogleServer(t, verifier, `{"email":"ada@example.com"}`))
		_, err := g.Exchange(context.Background(), "good-code", verifier)
		require.Error(t, err)
	})

	t.Run("malformed user info", func(t *testing.T) {
		g := newGoogle(newGoogleServer(t, verifier, `{"sub":1}`))
		_, err := g.Exchange(context.Background(), "good-code", verifier)
		require.Error(t, err)
	})
}
