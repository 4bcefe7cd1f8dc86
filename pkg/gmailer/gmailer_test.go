package gmailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

func newTestMailer(t *testing.T, handler http.HandlerFunc) (*Mailer, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	svc, err := gmail.NewService(context.Background(),
		option.WithEndpoint(ts.URL),
		option.WithoutAuthentication(),
	)
	if err != nil {
		t.Fatalf("failed to create gmail service: %v", err)
	}

	return &Mailer{svc: svc, sender: "noreply@formation.fr", l: &mockLogger{}}, ts
}

// decodeRaw extracts and decodes the raw RFC822 payload from a send request.
func decodeRaw(t *testing.T, r *http.Request) string {
	t.Helper()
	var req struct {
		Raw string `json:"raw"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Fatalf("failed to decode send request: %v", err)
	}
	decoded, err := base64.RawURLEncoding.DecodeString(req.Raw)
	if err != nil {
		t.Fatalf("raw payload is not base64url: %v", err)
	}
	return string(decoded)
}

func TestSendMail(t *testing.T) {
	var captured string
	mailer, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = decodeRaw(t, r)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg-1"}`))
	})

	receipt, err := mailer.SendMail(context.Background(), "stagiaire@example.com", "<p>Bienvenue</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.Id != "msg-1" {
		t.Errorf("expected provider receipt id msg-1, got %q", receipt.Id)
	}

	for _, want := range []string{
		"From: noreply@formation.fr",
		"To: stagiaire@example.com",
		"Subject: Votre mot de passe",
		"Content-Type: text/html; charset=UTF-8",
		"<p>Bienvenue</p>",
	} {
		if !strings.Contains(captured, want) {
			t.Errorf("message missing %q:\n%s", want, captured)
		}
	}
}

func TestSendMailWithAttachment(t *testing.T) {
	var captured string
	mailer, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		captured = decodeRaw(t, r)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg-2"}`))
	})

	attachments := []Attachment{{
		Filename:    "programme.pdf",
		ContentType: "application/pdf",
		Data:        []byte("fake pdf bytes"),
	}}

	_, err := mailer.SendMailWithAttachment(context.Background(),
		"stagiaire@example.com", "Documents de formation", "<p>Voir pièce jointe</p>", attachments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"multipart/mixed",
		`filename="programme.pdf"`,
		"Content-Transfer-Encoding: base64",
		base64.StdEncoding.EncodeToString([]byte("fake pdf bytes")),
	} {
		if !strings.Contains(captured, want) {
			t.Errorf("message missing %q:\n%s", want, captured)
		}
	}
}

func TestSendMailFailures(t *testing.T) {
	t.Run("Relay Failure Is Wrapped", func(t *testing.T) {
		mailer, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":{"message":"internal relay detail"}}`))
		})

		_, err := mailer.SendMail(context.Background(), "stagiaire@example.com", "<p>x</p>")
		if !errors.Is(err, ErrDelivery) {
			t.Fatalf("expected delivery error, got %v", err)
		}
		if strings.Contains(err.Error(), "internal relay detail") {
			t.Error("provider detail must not leak to callers")
		}
	})

	t.Run("Empty Recipient Rejected", func(t *testing.T) {
		mailer, _ := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no network call expected for an empty recipient")
		})

		if _, err := mailer.SendMail(context.Background(), "   ", "<p>x</p>"); err == nil {
			t.Fatal("expected an error for empty recipient")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	if err := testConfig().Validate(); err != nil {
		t.Fatalf("complete config should validate: %v", err)
	}

	mutations := map[string]func(*Config){
		"client id":     func(c *Config) { c.ClientID = "" },
		"client secret": func(c *Config) { c.ClientSecret = "" },
		"redirect":      func(c *Config) { c.RedirectURL = "" },
		"refresh token": func(c *Config) { c.RefreshToken = "" },
		"sender":        func(c *Config) { c.Sender = "" },
	}
	for name, mutate := range mutations {
		cfg := testConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("missing %s should fail validation", name)
		}
	}
}
