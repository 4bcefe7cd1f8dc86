package gmailer

import "errors"

var (
	// ErrAuthentication indicates the identity provider rejected the
	// refresh flow. The message is caller-safe; provider detail is logged.
	ErrAuthentication = errors.New("mail identity authentication failed")

	// ErrRefreshCredentialExpired is a sub-signal of ErrAuthentication:
	// the long-lived refresh credential is invalid or expired and must be
	// reissued out of band. Not auto-recoverable.
	ErrRefreshCredentialExpired = errors.New("refresh credential expired or revoked, reissue it")

	// ErrDelivery indicates the mail relay refused or failed the send.
	ErrDelivery = errors.New("mail delivery failed")
)
