package notification

import "formation-management/pkg/gmailer"

// PasswordInput requests a password notification mail (fixed subject).
type PasswordInput struct {
	Recipient string
	HTMLBody  string
}

// DocumentsInput requests a mail with caller-chosen subject and optional
// attachments.
type DocumentsInput struct {
	Recipient   string
	Subject     string
	HTMLBody    string
	Attachments []gmailer.Attachment
}

// Output carries the provider's delivery receipt id.
type Output struct {
	MessageID string
}
