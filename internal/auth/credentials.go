package auth

import "strings"

// ParseCredentials parses the configured credential string into a
// username→password map. The string is either comma-separated "user:pass"
// pairs, or a bare password with no colon, which maps to the implicit
// "admin" identity (legacy single-password mode).
//
// Pairs are split on the first colon so passwords may contain colons.
// Malformed pairs (missing user or pass) are discarded; on duplicate
// usernames the last occurrence wins. Never fails.
func ParseCredentials(raw string) map[string]string {
	creds := make(map[string]string)

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return creds
	}

	if !strings.Contains(raw, ":") {
		creds["admin"] = raw
		return creds
	}

	for _, pair := range strings.Split(raw, ",") {
		user, pass, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			continue
		}
		user = strings.TrimSpace(user)
		pass = strings.TrimSpace(pass)
		if user == "" || pass == "" {
			continue
		}
		creds[user] = pass
	}
	return creds
}
