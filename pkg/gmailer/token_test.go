package gmailer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func testConfig() Config {
	return Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "https://localhost/callback",
		RefreshToken: "refresh-token",
		Sender:       "noreply@formation.fr",
	}
}

func newCacheAgainst(tokenURL string) *TokenCache {
	return newTokenCache(testConfig(), oauth2.Endpoint{TokenURL: tokenURL}, &mockLogger{})
}

func TestTokenCache(t *testing.T) {
	t.Run("Reuses Fresh Token Without Network Call", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer ts.Close()

		now := time.Now()
		cache := newCacheAgainst(ts.URL)
		cache.now = func() time.Time { return now }
		cache.accessToken = "cached-token"
		cache.expiresAt = now.Add(TokenSafetyMargin + time.Minute)

		got, err := cache.AccessToken(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "cached-token" {
			t.Errorf("expected cached token, got %q", got)
		}
		if n := atomic.LoadInt32(&calls); n != 0 {
			t.Errorf("expected 0 refresh calls, got %d", n)
		}
	})

	t.Run("Refreshes Inside Safety Margin", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"fresh-token","token_type":"Bearer","expires_in":3600}`))
		}))
		defer ts.Close()

		now := time.Now()
		cache := newCacheAgainst(ts.URL)
		cache.now = func() time.Time { return now }
		cache.accessToken = "stale-token"
		cache.expiresAt = now.Add(TokenSafetyMargin) // exactly at the boundary

		got, err := cache.AccessToken(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "fresh-token" {
			t.Errorf("expected refreshed token, got %q", got)
		}
		if n := atomic.LoadInt32(&calls); n != 1 {
			t.Errorf("expected exactly 1 refresh call, got %d", n)
		}
	})

	t.Run("Defaults Lifetime When Provider Omits Expiry", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"fresh-token","token_type":"Bearer"}`))
		}))
		defer ts.Close()

		now := time.Now()
		cache := newCacheAgainst(ts.URL)
		cache.now = func() time.Time { return now }

		if _, err := cache.AccessToken(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cache.expiresAt.Equal(now.Add(DefaultTokenLifetime)) {
			t.Errorf("expected expiry %v, got %v", now.Add(DefaultTokenLifetime), cache.expiresAt)
		}
	})

	t.Run("Classifies Invalid Grant", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`))
		}))
		defer ts.Close()

		cache := newCacheAgainst(ts.URL)
		_, err := cache.AccessToken(context.Background())
		if !errors.Is(err, ErrRefreshCredentialExpired) {
			t.Fatalf("expected refresh-credential-expired, got %v", err)
		}
		if !errors.Is(err, ErrAuthentication) {
			t.Error("refresh-credential-expired must still be an authentication error")
		}
	})

	t.Run("Classifies Generic Refresh Failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		cache := newCacheAgainst(ts.URL)
		_, err := cache.AccessToken(context.Background())
		if !errors.Is(err, ErrAuthentication) {
			t.Fatalf("expected authentication error, got %v", err)
		}
		if errors.Is(err, ErrRefreshCredentialExpired) {
			t.Error("a 500 must not be classified as an expired credential")
		}
	})

	t.Run("Serializes Concurrent Refresh", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			time.Sleep(20 * time.Millisecond)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"fresh-token","token_type":"Bearer","expires_in":3600}`))
		}))
		defer ts.Close()

		cache := newCacheAgainst(ts.URL)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := cache.AccessToken(context.Background()); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		if n := atomic.LoadInt32(&calls); n != 1 {
			t.Errorf("expected the refresh to be shared, got %d calls", n)
		}
	})
}
