package gmailer

import "time"

const (
	// TokenSafetyMargin is subtracted from the provider-reported expiry:
	// a cached token is only reused while now < expiry - margin.
	TokenSafetyMargin = 5 * time.Minute

	// DefaultTokenLifetime applies when the provider omits expires_in.
	DefaultTokenLifetime = time.Hour

	// SubjectPassword is the fixed subject of password notification mails.
	SubjectPassword = "Votre mot de passe"

	// gmailUserID addresses the authenticated mailbox in the Gmail API.
	gmailUserID = "me"
)
