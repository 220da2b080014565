package v1handler_test

import (
	"context"
	"errors"
	"heritage/internal/api/handler/v1handler"
	"heritage/internal/auth"
	"heritage/pkg/domain"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)

	return nil
}

func TestNewSecHandler_RequiresKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{})
	require.Error(t, err)
}

func TestRequireLogin_InvalidBearerToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/countries/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := env.do(req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "UNAUTHORIZED", decodeBody(t, rec)["code"])
}

func TestRequireLogin_TokenFromOtherKey(t *testing.T) {
	env := newTestEnv(t)

	other, err := auth.NewSessions(auth.SessionOptions{
		PrivateKey: genPrivateKeyPEM(t),
		Issuer:     "heritage",
		TTL:        time.Hour,
	})
	require.NoError(t, err)
	token, _, err := other.Issue(domain.User{ID: "mallory"})
	require.NoError(t, err)

	// a forged cookie is treated like no session at all
	req := httptest.NewRequest(http.MethodGet, "/countries/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})

	rec := env.do(req)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, loginURL+"?next=%2Fcountries%2F", rec.Header().Get("Location"))
}

func TestLogin_RedirectsToProvider(t *testing.T) {
	env := newTestEnv(t)

	var gotState, gotVerifier string
	env.provider.EXPECT().AuthCodeURL(gomock.Any(), gomock.Any()).DoAndReturn(
		func(state, verifier string) string {
			gotState, gotVerifier = state, verifier

			return "https://accounts.example.com/auth?state=" + url.QueryEscape(state)
		},
	)

	rec := env.do(httptest.NewRequest(http.MethodGet, loginURL+"?next=%2Fsites%2Fnew%2F", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://accounts.example.com/auth?state="+url.QueryEscape(gotState), rec.Header().Get("Location"))

	require.Equal(t, gotState, findCookie(t, rec, "heritage_oauth_state").Value)
	require.Equal(t, gotVerifier, findCookie(t, rec, "heritage_oauth_verifier").Value)
	require.Equal(t, "/sites/new/", findCookie(t, rec, "heritage_oauth_next").Value)
	require.True(t, findCookie(t, rec, "heritage_oauth_state").HttpOnly)
}

func TestLogin_RejectsOffsiteNext(t *testing.T) {
	env := newTestEnv(t)

	env.provider.EXPECT().AuthCodeURL(gomock.Any(), gomock.Any()).Return("https://accounts.example.com/auth")

	rec := env.do(httptest.NewRequest(http.MethodGet, loginURL+"?next=%2F%2Fevil.example.com%2F", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", findCookie(t, rec, "heritage_oauth_next").Value)
}

func completeRequest(state, code string) *http.Request {
	req := httptest.NewRequest(http.MethodGet,
		"/auth/complete/google-oauth2/?state="+url.QueryEscape(state)+"&code="+url.QueryEscape(code), nil)
	req.AddCookie(&http.Cookie{Name: "heritage_oauth_state", Value: "state-1"})
	req.AddCookie(&http.Cookie{Name: "heritage_oauth_verifier", Value: "verifier-1"})
	req.AddCookie(&http.Cookie{Name: "heritage_oauth_next", Value: "/countries/"})

	return req
}

func TestComplete_StartsSession(t *testing.T) {
	env := newTestEnv(t)

	env.provider.EXPECT().Exchange(gomock.Any(), "code-1", "verifier-1").
		Return(&domain.User{ID: "google-42", Email: "ada@example.org", Name: "Ada"}, nil)

	rec := env.do(completeRequest("state-1", "code-1"))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/countries/", rec.Header().Get("Location"))

	session := findCookie(t, rec, cookieName)
	require.Equal(t, "/", session.Path)
	require.True(t, session.HttpOnly)

	user, err := env.sessions.Verify(session.Value)
	require.NoError(t, err)
	require.Equal(t, "google-42", user.ID)
	require.Equal(t, "ada@example.org", user.Email)

	require.Equal(t, -1, findCookie(t, rec, "heritage_oauth_state").MaxAge)
}

func TestComplete_StateMismatch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(completeRequest("forged", "code-1"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComplete_ProviderError(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/auth/complete/google-oauth2/?error=access_denied", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env.provider.EXPECT().Exchange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (*domain.User, error) {
			return nil, errors.New("invalid_grant")
		})
	rec = env.do(completeRequest("state-1", "code-1"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "could not log in", decodeBody(t, rec)["message"])
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := env.doAuthed(t, httptest.NewRequest(method, "/auth/logout/", nil))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/", rec.Header().Get("Location"))
		require.Equal(t, -1, findCookie(t, rec, cookieName).MaxAge)
	}
}
