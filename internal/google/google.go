// Package google links user accounts to Google via OAuth2 and exposes
// thin Gmail and Tasks clients over the granted tokens.
package google

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/mainakmishra/equinox/internal/domain"
	"github.com/mainakmishra/equinox/internal/repository"
)

const issuerURL = "https://accounts.google.com"

var scopes = []string{
	oidc.ScopeOpenID,
	"email",
	"profile",
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/gmail.send",
	"https://www.googleapis.com/auth/tasks",
}

// Service manages the OAuth2 flow and per-user token storage.
type Service struct {
	oauth    *oauth2.Config
	verifier *oidc.IDTokenVerifier
	tokens   repository.TokenRepository
}

// NewService discovers the Google OIDC endpoints and builds the OAuth2 config.
// Returns nil when clientID is empty so callers can treat the integration as
// disabled, mirroring how the LLM client degrades.
func NewService(ctx context.Context, clientID, clientSecret, redirectURL string, tokens repository.TokenRepository) (*Service, error) {
	if clientID == "" {
		return nil, nil
	}

	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("discover google oidc: %w", err)
	}

	return &Service{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       scopes,
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
		tokens:   tokens,
	}, nil
}

// AuthURL returns the consent page URL for the given CSRF state.
// Offline access is requested so we receive a refresh token.
func (s *Service) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// GenerateState returns a random URL-safe state value.
func GenerateState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

// HandleCallback exchanges the authorization code, verifies the ID token, and
// persists the token for the user. Returns the verified email address.
func (s *Service) HandleCallback(ctx context.Context, userID uuid.UUID, code string) (string, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return "", fmt.Errorf("no id_token in token response")
	}

	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", fmt.Errorf("verify id_token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return "", fmt.Errorf("parse claims: %w", err)
	}

	stored := &domain.GoogleToken{UserID: userID}
	stored.FromOAuth2(token)
	if err := s.tokens.Save(ctx, stored); err != nil {
		return "", err
	}

	return claims.Email, nil
}

// Linked reports whether the user has a stored Google token.
func (s *Service) Linked(ctx context.Context, userID uuid.UUID) bool {
	if s == nil {
		return false
	}
	_, err := s.tokens.GetByUserID(ctx, userID)
	return err == nil
}

// Unlink removes the stored token for the user.
func (s *Service) Unlink(ctx context.Context, userID uuid.UUID) error {
	return s.tokens.Delete(ctx, userID)
}

// LinkedUserIDs returns every user with a stored token.
func (s *Service) LinkedUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	return s.tokens.ListLinkedUserIDs(ctx)
}

// ClientFor returns an HTTP client that authenticates as the user and
// persists refreshed tokens back to storage.
func (s *Service) ClientFor(ctx context.Context, userID uuid.UUID) (*http.Client, error) {
	if s == nil {
		return nil, domain.ErrGoogleNotLinked
	}

	stored, err := s.tokens.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrGoogleNotLinked
		}
		return nil, err
	}

	source := &persistingTokenSource{
		ctx:     ctx,
		userID:  userID,
		tokens:  s.tokens,
		wrapped: s.oauth.TokenSource(ctx, stored.ToOAuth2()),
		last:    stored.ToOAuth2(),
	}

	return oauth2.NewClient(ctx, source), nil
}

// persistingTokenSource writes refreshed tokens back to the repository so a
// refresh survives process restarts.
type persistingTokenSource struct {
	ctx     context.Context
	userID  uuid.UUID
	tokens  repository.TokenRepository
	wrapped oauth2.TokenSource
	last    *oauth2.Token
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := p.wrapped.Token()
	if err != nil {
		return nil, err
	}

	if p.last == nil || token.AccessToken != p.last.AccessToken {
		stored := &domain.GoogleToken{UserID: p.userID}
		stored.FromOAuth2(token)
		if saveErr := p.tokens.Save(p.ctx, stored); saveErr == nil {
			p.last = token
		}
	}

	return token, nil
}
