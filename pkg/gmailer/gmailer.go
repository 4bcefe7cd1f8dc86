package gmailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	pkgLog "formation-management/pkg/log"
)

// Mailer implements IMailer on top of the Gmail API, authenticated by a
// TokenCache. One invocation performs exactly one send call; the identity
// provider is only contacted on a token-cache miss.
type Mailer struct {
	svc    *gmail.Service
	sender string
	l      pkgLog.Logger
}

var _ IMailer = (*Mailer)(nil)

// New validates the sender identity and builds the Gmail service. A config
// error here is fatal at boot: the caller must not serve without it.
func New(ctx context.Context, cfg Config, l pkgLog.Logger, opts ...option.ClientOption) (*Mailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cache := NewTokenCache(cfg, l)
	all := append([]option.ClientOption{option.WithTokenSource(cache)}, opts...)

	svc, err := gmail.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("gmailer: failed to create gmail service: %w", err)
	}

	return &Mailer{svc: svc, sender: cfg.Sender, l: l}, nil
}

// SendMail sends a password notification: fixed subject, HTML body.
func (m *Mailer) SendMail(ctx context.Context, recipient, htmlBody string) (*gmail.Message, error) {
	return m.send(ctx, recipient, SubjectPassword, htmlBody, nil)
}

// SendMailWithAttachment sends a caller-titled HTML mail with zero or more
// attachments.
func (m *Mailer) SendMailWithAttachment(ctx context.Context, recipient, subject, htmlBody string, attachments []Attachment) (*gmail.Message, error) {
	return m.send(ctx, recipient, subject, htmlBody, attachments)
}

func (m *Mailer) send(ctx context.Context, recipient, subject, htmlBody string, attachments []Attachment) (*gmail.Message, error) {
	if strings.TrimSpace(recipient) == "" {
		return nil, fmt.Errorf("gmailer: recipient is required")
	}

	raw := buildMessage(m.sender, recipient, subject, htmlBody, attachments)

	sent, err := m.svc.Users.Messages.Send(gmailUserID, &gmail.Message{
		Raw: base64.RawURLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		// Full provider detail stays in the logs; callers get the taxonomy.
		m.l.Errorf(ctx, "gmailer: send to %s failed: %v", recipient, err)
		switch {
		case errors.Is(err, ErrRefreshCredentialExpired):
			return nil, fmt.Errorf("%w: %w", ErrDelivery, ErrRefreshCredentialExpired)
		case errors.Is(err, ErrAuthentication):
			return nil, fmt.Errorf("%w: %w", ErrDelivery, ErrAuthentication)
		default:
			return nil, fmt.Errorf("%w: the mail relay rejected the message", ErrDelivery)
		}
	}

	m.l.Infof(ctx, "gmailer: message %s delivered to %s", sent.Id, recipient)
	return sent, nil
}

// buildMessage assembles the RFC822 payload: a plain HTML message, or a
// multipart/mixed message when attachments are present.
func buildMessage(from, to, subject, htmlBody string, attachments []Attachment) []byte {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", mime.QEncoding.Encode("UTF-8", sanitizeHeader(subject))),
		fmt.Sprintf("Date: %s", time.Now().Format(time.RFC1123Z)),
		"MIME-Version: 1.0",
	}

	if len(attachments) == 0 {
		headers = append(headers, "Content-Type: text/html; charset=UTF-8")
		return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody + "\r\n")
	}

	boundary := fmt.Sprintf("formation-mail-%d", time.Now().UnixNano())
	headers = append(headers, fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q", boundary))

	var builder strings.Builder
	builder.WriteString(strings.Join(headers, "\r\n"))
	builder.WriteString("\r\n\r\n")

	builder.WriteString("--" + boundary + "\r\n")
	builder.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	builder.WriteString(htmlBody)
	builder.WriteString("\r\n")

	for _, att := range attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		filename := sanitizeHeader(att.Filename)

		builder.WriteString("--" + boundary + "\r\n")
		builder.WriteString(fmt.Sprintf("Content-Type: %s; name=%q\r\n", contentType, filename))
		builder.WriteString("Content-Transfer-Encoding: base64\r\n")
		builder.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", filename))
		builder.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(att.Data)))
		builder.WriteString("\r\n")
	}

	builder.WriteString("--" + boundary + "--\r\n")
	return []byte(builder.String())
}

func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}

// wrapBase64 folds encoded content at the 76-column MIME limit.
func wrapBase64(encoded string) string {
	const lineLen = 76
	var builder strings.Builder
	for len(encoded) > lineLen {
		builder.WriteString(encoded[:lineLen])
		builder.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	builder.WriteString(encoded)
	return builder.String()
}
