package gmailer

import "fmt"

// Config holds the Gmail OAuth2 sender identity. Every field is required:
// the service refuses to boot without a complete mail identity.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	RefreshToken string
	Sender       string
}

// Validate reports the first missing credential field.
func (c Config) Validate() error {
	switch {
	case c.ClientID == "":
		return fmt.Errorf("gmailer: client id is required")
	case c.ClientSecret == "":
		return fmt.Errorf("gmailer: client secret is required")
	case c.RedirectURL == "":
		return fmt.Errorf("gmailer: redirect url is required")
	case c.RefreshToken == "":
		return fmt.Errorf("gmailer: refresh token is required")
	case c.Sender == "":
		return fmt.Errorf("gmailer: sender address is required")
	}
	return nil
}

// Attachment is one file joined to an outgoing message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}
