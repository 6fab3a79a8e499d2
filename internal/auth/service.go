// Package auth implements the shared-credential login scheme: a credential
// store parsed from configuration and a stateless, reversible bearer token
// validated on every request.
package auth

import (
	"time"

	"github.com/imagebed/service/internal/config"
)

// LoginResult holds a freshly issued token and the identity it was issued for.
type LoginResult struct {
	Token    string
	Username string
}

// Service contains the business logic for credential-based authentication.
// It holds no session state: tokens are validated against the configured
// credentials and the current wall clock on each call.
type Service struct {
	cfg *config.Config
	now func() time.Time
}

// NewService creates a new auth Service.
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg, now: time.Now}
}

// Credentials returns the current credential set, parsed fresh from
// configuration so credential rotation needs no process restart.
func (s *Service) Credentials() map[string]string {
	return ParseCredentials(s.cfg.UploadUsers)
}

// Login issues a token for the given credentials. Username may be empty, in
// which case the password alone is matched against the credential set
// (single-password mode).
func (s *Service) Login(username, password string) (*LoginResult, error) {
	creds := s.Credentials()

	if username != "" {
		token, err := IssueToken(username, password, creds, s.now())
		if err != nil {
			return nil, err
		}
		return &LoginResult{Token: token, Username: username}, nil
	}

	token, matched, err := IssueTokenByPassword(password, creds, s.now())
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Username: matched}, nil
}

// Verify reports whether the given token is currently valid.
func (s *Service) Verify(token string) bool {
	if token == "" {
		return false
	}
	return ValidateToken(token, s.Credentials(), s.now())
}
