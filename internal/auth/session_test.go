package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"heritage/internal/auth"
	"heritage/pkg/domain"
	"heritage/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// genRSAKeys generates an RSA key pair and returns both keys PEM encoded.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return priv, string(privPEM), string(pubPEM)
}

func newSessions(t *testing.T, privPEM, pubPEM string) *auth.Sessions {
	t.Helper()
	s, err := auth.NewSessions(auth.SessionOptions{
		PrivateKey: privPEM,
		PublicKey:  pubPEM,
		Issuer:     "heritage",
		TTL:        time.Hour,
	})
	require.NoError(t, err)

	return s
}

func signRS256(tb testing.TB, priv *rsa.PrivateKey, claims jwt.Claims) string {
	tb.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestSessions_IssueAndVerify(t *testing.T) {
	_, privPEM, pubPEM := genRSAKeys(t)
	s := newSessions(t, privPEM, pubPEM)

	user := domain.User{ID: "1234567890", Email: "ada@example.com", Name: "Ada"}
	token, exp, err := s.Issue(user)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	got, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user, *got)
}

func TestSessions_VerifyOnly(t *testing.T) {
	_, privPEM, pubPEM := genRSAKeys(t)
	issuer := newSessions(t, privPEM, "")
	verifier := newSessions(t, "", pubPEM)

	token, _, err := issuer.Issue(domain.User{ID: "42"})
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "42", got.ID)

	_, _, err = verifier.Issue(domain.User{ID: "42"})
	require.ErrorIs(t, err, auth.ErrNoSigningKey)
}

func TestNewSessions_Errors(t *testing.T) {
	_, err := auth.NewSessions(auth.SessionOptions{})
	require.Error(t, err)

	_, err = auth.NewSessions(auth.SessionOptions{PublicKey: "not a key"})
	require.Error(t, err)

	_, err = auth.NewSessions(auth.SessionOptions{PrivateKey: "not a key"})
	require.Error(t, err)
}

func TestSessions_Verify_Rejects(t *testing.T) {
	priv, privPEM, pubPEM := genRSAKeys(t)
	s := newSessions(t, privPEM, pubPEM)
	otherPriv, _, _ := genRSAKeys(t)
	now := time.Now()

	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Issuer:    "heritage",
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name: "invalid signature",
			token: func() string {
				return signRS256(t, otherPriv, valid())
			},
		},
		{
			name: "expired",
			token: func() string {
				c := valid()
				c.IssuedAt = jwt.NewNumericDate(now.Add(-2 * time.Hour))
				c.NotBefore = c.IssuedAt
				c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour))

				return signRS256(t, priv, c)
			},
		},
		{
			name: "no expiry",
			token: func() string {
				c := valid()
				c.ExpiresAt = nil

				return signRS256(t, priv, c)
			},
		},
		{
			name: "wrong issuer",
			token: func() string {
				c := valid()
				c.Issuer = "someone-else"

				return signRS256(t, priv, c)
			},
		},
		{
			name: "no subject",
			token: func() string {
				c := valid()
				c.Subject = ""

				return signRS256(t, priv, c)
			},
		},
		{
			name: "wrong algorithm",
			token: func() string {
				signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, valid()).SignedString([]byte("secret"))
				require.NoError(t, err)

				return signed
			},
		},
		{
			name: "garbage",
			token: func() string {
				return "not.a.token"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Verify(tt.token())
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestUserFromContext(t *testing.T) {
	require.Nil(t, auth.UserFromContext(context.Background()))

	user := &domain.User{ID: "1"}
	ctx := auth.WithUser(context.Background(), user)
	require.Equal(t, user, auth.UserFromContext(ctx))
}
