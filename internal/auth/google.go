package auth

import (
	"context"
	"fmt"
	"heritage/internal/config"
	"heritage/pkg/domain"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// Provider is an OAuth2 identity provider using the authorization code flow
// with PKCE.
//
//go:generate mockgen -package mockauth -source=google.go -destination=mock/mockauth.go *
type Provider interface {
	// AuthCodeURL returns the provider's consent page URL.
	AuthCodeURL(state, verifier string) string
	// Exchange trades an authorization code for the user's identity.
	Exchange(ctx context.Context, code, verifier string) (*domain.User, error)
}

// GoogleOptions configure the Google provider. Endpoint and UserInfoURL
// default to Google's production endpoints.
type GoogleOptions struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Endpoint     oauth2.Endpoint
	UserInfoURL  string
}

// NewGoogleOptions constructs GoogleOptions from the application config.
func NewGoogleOptions(cfg *config.Config) GoogleOptions {
	return GoogleOptions{
		ClientID:     cfg.Auth.GoogleClientID,
		ClientSecret: cfg.Auth.GoogleClientSecret,
		RedirectURL:  cfg.Auth.RedirectURL,
	}
}

// Google logs users in with their Google account.
type Google struct {
	config      *oauth2.Config
	userInfoURL string
}

var _ Provider = (*Google)(nil)

func NewGoogle(options GoogleOptions) *Google {
	endpoint := options.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = endpoints.Google
	}
	userInfoURL := options.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = googleUserInfoURL
	}

	return &Google{
		config: &oauth2.Config{
			ClientID:     options.ClientID,
			ClientSecret: options.ClientSecret,
			RedirectURL:  options.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: userInfoURL,
	}
}

func (g *Google) AuthCodeURL(state, verifier string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline, oauth2.S256ChallengeOption(verifier))
}

func (g *Google) Exchange(ctx context.Context, code, verifier string) (*domain.User, error) {
	token, err := g.config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("could not exchange authorization code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("could not create user info request: %w", err)
	}

	resp, err := g.config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request failed with status %d", resp.StatusCode)
	}

	user, err := decodeUserInfo(jx.Decode(resp.Body, 1024))
	if err != nil {
		return nil, err
	}

	return user, nil
}

// decodeUserInfo reads the OpenID Connect userinfo document. Only the
// subject is required.
func decodeUserInfo(d *jx.Decoder) (*domain.User, error) {
	var user domain.User
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "sub":
			user.ID, err = d.Str()
		case "email":
			user.Email, err = d.Str()
		case "name":
			user.Name, err = d.Str()
		default:
			return d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode user info")
	}
	if user.ID == "" {
		return nil, errors.New("user info has no subject")
	}

	return &user, nil
}

// NewVerifier returns a fresh PKCE code verifier.
func NewVerifier() string {
	return oauth2.GenerateVerifier()
}
