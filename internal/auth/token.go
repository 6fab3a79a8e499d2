package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TokenTTL is the lifetime of an issued token. Expiry is the only way a
// token leaves the valid state; there is no revocation.
const TokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned when the supplied credentials do not
// match any configured entry.
var ErrInvalidCredentials = errors.New("invalid username or password")

// IssueToken issues a bearer token for the given username/password pair.
// The token is a reversible base64 encoding of "username:password:issuedAtMillis";
// it carries no server-side state and is validated purely against the
// configured credentials and the wall clock.
func IssueToken(username, password string, creds map[string]string, now time.Time) (string, error) {
	if p, ok := creds[username]; !ok || p != password {
		return "", ErrInvalidCredentials
	}
	return encodeToken(username, password, now), nil
}

// IssueTokenByPassword issues a token given only a password, scanning the
// credential set for the first entry with that password. It exists for
// legacy single-password deployments. If two usernames share a password the
// winner depends on map iteration order; that ambiguity is inherent to
// single-password mode and deliberately left as-is.
func IssueTokenByPassword(password string, creds map[string]string, now time.Time) (token, username string, err error) {
	for user, pass := range creds {
		if pass == password {
			return encodeToken(user, pass, now), user, nil
		}
	}
	return "", "", ErrInvalidCredentials
}

// ValidateToken reports whether token is currently valid: it must decode,
// its credential pair must match an entry in creds, and it must be no older
// than TokenTTL at the supplied wall-clock instant. Malformed input yields
// false, never an error.
func ValidateToken(token string, creds map[string]string, now time.Time) bool {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}

	// username is everything before the first colon, the issue timestamp
	// everything after the last, so passwords containing colons round-trip.
	s := string(decoded)
	first := strings.Index(s, ":")
	last := strings.LastIndex(s, ":")
	if first < 0 || last <= first {
		return false
	}
	username := s[:first]
	password := s[first+1 : last]

	issuedMillis, err := strconv.ParseInt(s[last+1:], 10, 64)
	if err != nil {
		return false
	}

	if p, ok := creds[username]; !ok || p != password {
		return false
	}

	age := now.UnixMilli() - issuedMillis
	return age <= TokenTTL.Milliseconds()
}

func encodeToken(username, password string, now time.Time) string {
	raw := fmt.Sprintf("%s:%s:%d", username, password, now.UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}
