package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"heritage/internal/api"
	"heritage/internal/api/handler/v1handler"
	"heritage/internal/auth"
	"heritage/internal/registry"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockregistry "heritage/internal/registry/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testOptions(t *testing.T) api.Options {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			Sessions: auth.SessionOptions{
				PrivateKey: string(pem.EncodeToMemory(&pem.Block{
					Type:  "RSA PRIVATE KEY",
					Bytes: x509.MarshalPKCS1PrivateKey(key),
				})),
				Issuer: "heritage",
				TTL:    time.Hour,
			},
			Google: auth.GoogleOptions{
				ClientID:     "client",
				ClientSecret: "secret",
				RedirectURL:  "http://localhost:8080/auth/complete/google-oauth2/",
			},
			CookieName:       "heritage_session",
			LoginURL:         "/auth/login/google-oauth2/",
			LoginRedirectURL: "/",
		},
		Addr:           ":0",
		RequestTimeout: time.Second,
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{"*"},
	}
}

func newTestServer(t *testing.T, opts api.Options) (*mockregistry.MockRegistry, http.Handler) {
	t.Helper()

	reg := mockregistry.NewMockRegistry(gomock.NewController(t))
	srv, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Registry: reg}}, opts)
	require.NoError(t, err)
	require.Equal(t, ":0", srv.Addr)

	return reg, srv.Handler
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestNewServer_InvalidKey(t *testing.T) {
	opts := testOptions(t)
	opts.SecHandlerOptions.Sessions.PrivateKey = "not a key"

	_, err := api.NewServer(api.Deps{}, opts)
	require.Error(t, err)
}

func TestServer_Specs(t *testing.T) {
	_, h := newTestServer(t, testOptions(t))

	rec := serve(h, http.MethodGet, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	require.Contains(t, rec.Body.String(), "/sites/{id}/update/")

	rec = serve(h, http.MethodGet, "/docs/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "UNESCO Heritage Sites")
}

func TestServer_MetricsAndPprof(t *testing.T) {
	_, h := newTestServer(t, testOptions(t))

	// produce at least one request sample
	serve(h, http.MethodGet, "/specs/v1.yaml")

	rec := serve(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "heritage_http_request_duration_seconds")

	rec = serve(h, http.MethodGet, "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CatalogRoutes(t *testing.T) {
	reg, h := newTestServer(t, testOptions(t))

	reg.EXPECT().Stats(gomock.Any()).Return(&registry.Stats{Sites: 3, Countries: 2}, nil)

	rec := serve(h, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	require.Contains(t, rec.Body.String(), `"site_count":3`)

	rec = serve(h, http.MethodGet, "/sites/new/")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/auth/login/google-oauth2/?next=%2Fsites%2Fnew%2F", rec.Header().Get("Location"))

	rec = serve(h, http.MethodGet, "/auth/login/google-oauth2/")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Contains(t, rec.Header().Get("Location"), "https://accounts.google.com/")

	rec = serve(h, http.MethodOptions, "/sites/")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_RequestTimeout(t *testing.T) {
	opts := testOptions(t)
	opts.RequestTimeout = 50 * time.Millisecond
	reg, h := newTestServer(t, opts)

	reg.EXPECT().Stats(gomock.Any()).DoAndReturn(func(ctx context.Context) (*registry.Stats, error) {
		<-ctx.Done()

		return nil, ctx.Err()
	})

	rec := serve(h, http.MethodGet, "/")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"code":"TIMEOUT","message":"request timed out"}`, rec.Body.String())
}
