// Package auth authenticates visitors through Google's OAuth2 code flow and
// keeps them logged in with RS256 signed session tokens.
package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"heritage/internal/config"
	"heritage/pkg/domain"
	"heritage/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSigningKey = errors.New("no private key configured")

// SessionOptions configure how session tokens are signed and verified.
type SessionOptions struct {
	// PrivateKey is the PEM encoded RSA key used to sign tokens. It may be
	// empty for processes that only verify tokens.
	PrivateKey string
	// PublicKey is the PEM encoded RSA key used to verify tokens. When empty
	// it is derived from PrivateKey.
	PublicKey string
	// Issuer is written to and required on every token.
	Issuer string
	// TTL is the lifetime of issued tokens.
	TTL time.Duration
}

// NewSessionOptions constructs SessionOptions from the application config.
func NewSessionOptions(cfg *config.Config) SessionOptions {
	return SessionOptions{
		PrivateKey: cfg.JWT.PrivateKey,
		PublicKey:  cfg.JWT.PublicKey,
		Issuer:     cfg.JWT.Issuer,
		TTL:        cfg.Auth.SessionTTL,
	}
}

// Claims are the JWT claims of a session token. The subject is the identity
// provider's user ID.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Sessions issues and verifies session tokens.
type Sessions struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

// NewSessions parses the configured keys. At least one key is required.
func NewSessions(options SessionOptions) (*Sessions, error) {
	s := &Sessions{
		issuer: options.Issuer,
		ttl:    options.TTL,
		now:    time.Now,
	}

	if options.PrivateKey != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
		s.privateKey = key
		s.publicKey = &key.PublicKey
	}
	if options.PublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA public key: %w", err)
		}
		s.publicKey = key
	}
	if s.publicKey == nil {
		return nil, errors.New("a JWT public or private key is required")
	}

	return s, nil
}

// TTL returns the lifetime of issued tokens.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Issue signs a session token for the user. It returns the token and its
// expiry.
func (s *Sessions) Issue(user domain.User) (string, time.Time, error) {
	if s.privateKey == nil {
		return "", time.Time{}, ErrNoSigningKey
	}

	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Email: user.Email,
		Name:  user.Name,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign session token: %w", err)
	}

	return signed, exp, nil
}

// Verify parses a session token and returns the user it was issued for.
// Every failure is reported as serrors.ErrUnauthorized.
func (s *Sessions) Verify(token string) (*domain.User, error) {
	var claims Claims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.publicKey, nil
	}, opts...)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}
	if claims.Subject == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "session token has no subject")
	}

	return &domain.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

type userKey struct{}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user, or nil for anonymous
// requests.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey{}).(*domain.User)

	return user
}
