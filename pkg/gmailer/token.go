package gmailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	pkgLog "formation-management/pkg/log"
)

// TokenCache holds the single access token used to authenticate outbound
// mail, refreshing it through the OAuth2 refresh-grant flow when it comes
// within TokenSafetyMargin of expiry. Refreshes are serialized: concurrent
// callers that observe a stale token block on the mutex and reuse the one
// refresh instead of racing the identity provider.
type TokenCache struct {
	conf         *oauth2.Config
	refreshToken string
	l            pkgLog.Logger

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time

	now func() time.Time
}

var _ oauth2.TokenSource = (*TokenCache)(nil)

// NewTokenCache builds a cache against Google's token endpoint.
func NewTokenCache(cfg Config, l pkgLog.Logger) *TokenCache {
	return newTokenCache(cfg, google.Endpoint, l)
}

func newTokenCache(cfg Config, endpoint oauth2.Endpoint, l pkgLog.Logger) *TokenCache {
	return &TokenCache{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
		},
		refreshToken: cfg.RefreshToken,
		l:            l,
		now:          time.Now,
	}
}

// AccessToken returns a usable access token, refreshing at most once.
func (c *TokenCache) AccessToken(ctx context.Context) (string, error) {
	token, _, err := c.currentToken(ctx)
	return token, err
}

// Token implements oauth2.TokenSource so the cache can authenticate a
// Google API service directly.
func (c *TokenCache) Token() (*oauth2.Token, error) {
	token, expiry, err := c.currentToken(context.Background())
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: token, Expiry: expiry}, nil
}

func (c *TokenCache) currentToken(ctx context.Context) (string, time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Before(c.expiresAt.Add(-TokenSafetyMargin)) {
		return c.accessToken, c.expiresAt, nil
	}

	tok, err := c.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.refreshToken}).Token()
	if err != nil {
		return "", time.Time{}, c.classifyRefreshError(ctx, err)
	}
	if tok.AccessToken == "" {
		c.l.Errorf(ctx, "gmailer: identity provider returned no access token")
		return "", time.Time{}, ErrAuthentication
	}

	c.accessToken = tok.AccessToken
	if tok.Expiry.IsZero() {
		c.expiresAt = c.now().Add(DefaultTokenLifetime)
	} else {
		c.expiresAt = tok.Expiry
	}

	return c.accessToken, c.expiresAt, nil
}

// classifyRefreshError logs the raw provider failure and maps it onto the
// caller-safe taxonomy. The structured error code takes precedence; the
// substring match stays as a fallback for prose-only provider responses.
func (c *TokenCache) classifyRefreshError(ctx context.Context, err error) error {
	code := ""
	detail := err.Error()

	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) {
		code = rErr.ErrorCode
		if len(rErr.Body) > 0 {
			detail = string(rErr.Body)
		}
	}

	c.l.Errorf(ctx, "gmailer: token refresh failed (code=%q): %s", code, detail)

	lowered := strings.ToLower(code + " " + err.Error())
	if code == "invalid_grant" || strings.Contains(lowered, "invalid_grant") || strings.Contains(lowered, "expired") {
		return fmt.Errorf("%w: %w", ErrAuthentication, ErrRefreshCredentialExpired)
	}
	return ErrAuthentication
}
