package v1handler_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"heritage/internal/api/handler/v1handler"
	"heritage/internal/auth"
	"heritage/pkg/domain"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockauth "heritage/internal/auth/mock"
	mockregistry "heritage/internal/registry/mock"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	cookieName = "heritage_session"
	loginURL   = "/auth/login/google-oauth2/"
)

type testEnv struct {
	registry *mockregistry.MockRegistry
	provider *mockauth.MockProvider
	sessions *auth.Sessions
	router   http.Handler
}

// helper to generate a PEM encoded RSA private key.
func genPrivateKeyPEM(tb testing.TB) string {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")

	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	}))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		registry: mockregistry.NewMockRegistry(ctrl),
		provider: mockauth.NewMockProvider(ctrl),
	}

	sessionOptions := auth.SessionOptions{
		PrivateKey: genPrivateKeyPEM(t),
		Issuer:     "heritage",
		TTL:        time.Hour,
	}
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{
		Sessions:         sessionOptions,
		Provider:         env.provider,
		CookieName:       cookieName,
		LoginURL:         loginURL,
		LoginRedirectURL: "/",
	})
	require.NoError(t, err)
	env.sessions, err = auth.NewSessions(sessionOptions)
	require.NoError(t, err)

	r := chi.NewRouter()
	v1handler.Routes(r, v1handler.New(v1handler.Deps{Registry: env.registry}), sec)
	env.router = r

	return env
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()

	token, _, err := e.sessions.Issue(domain.User{ID: "user-1", Email: "ada@example.org"})
	require.NoError(t, err)

	return token
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

// doAuthed sends the request with a valid session cookie.
func (e *testEnv) doAuthed(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.AddCookie(&http.Cookie{Name: cookieName, Value: e.token(t)})

	return e.do(req)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))

	return out
}
