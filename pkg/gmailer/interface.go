package gmailer

import (
	"context"

	"google.golang.org/api/gmail/v1"
)

// IMailer defines the interface for the Gmail dispatcher
type IMailer interface {
	SendMail(ctx context.Context, recipient, htmlBody string) (*gmail.Message, error)
	SendMailWithAttachment(ctx context.Context, recipient, subject, htmlBody string, attachments []Attachment) (*gmail.Message, error)
}
