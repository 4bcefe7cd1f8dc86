package usecase

import (
	"context"
	"strings"

	"formation-management/internal/notification"
)

// SendPassword delivers a password notification with the fixed subject.
func (uc *implUseCase) SendPassword(ctx context.Context, input notification.PasswordInput) (notification.Output, error) {
	if strings.TrimSpace(input.Recipient) == "" {
		return notification.Output{}, notification.ErrEmptyRecipient
	}

	receipt, err := uc.mailer.SendMail(ctx, input.Recipient, input.HTMLBody)
	if err != nil {
		return notification.Output{}, err
	}

	uc.l.Infof(ctx, "notification.SendPassword: delivered %s to %s", receipt.Id, input.Recipient)
	return notification.Output{MessageID: receipt.Id}, nil
}

// SendDocuments delivers a caller-titled mail with optional attachments.
func (uc *implUseCase) SendDocuments(ctx context.Context, input notification.DocumentsInput) (notification.Output, error) {
	if strings.TrimSpace(input.Recipient) == "" {
		return notification.Output{}, notification.ErrEmptyRecipient
	}
	if strings.TrimSpace(input.Subject) == "" {
		return notification.Output{}, notification.ErrEmptySubject
	}

	receipt, err := uc.mailer.SendMailWithAttachment(ctx, input.Recipient, input.Subject, input.HTMLBody, input.Attachments)
	if err != nil {
		return notification.Output{}, err
	}

	uc.l.Infof(ctx, "notification.SendDocuments: delivered %s to %s (%d attachments)",
		receipt.Id, input.Recipient, len(input.Attachments))
	return notification.Output{MessageID: receipt.Id}, nil
}
