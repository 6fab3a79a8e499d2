package auth

import (
	"encoding/base64"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = map[string]string{
	"alice": "one",
	"bob":   "two",
}

func TestIssueAndValidate(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := IssueToken("alice", "one", testCreds, issued)
	require.NoError(t, err)

	assert.True(t, ValidateToken(token, testCreds, issued))
	assert.True(t, ValidateToken(token, testCreds, issued.Add(time.Hour)))
	// Exactly at the TTL boundary the token is still valid.
	assert.True(t, ValidateToken(token, testCreds, issued.Add(TokenTTL)))
	// One millisecond past it, it is not.
	assert.False(t, ValidateToken(token, testCreds, issued.Add(TokenTTL+time.Millisecond)))
}

func TestIssueRejectsBadCredentials(t *testing.T) {
	now := time.Now()

	_, err := IssueToken("alice", "wrong", testCreds, now)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = IssueToken("mallory", "one", testCreds, now)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateRejectsUnknownCredentials(t *testing.T) {
	now := time.Now()

	// A structurally valid token built from credentials outside the set.
	forged := base64.StdEncoding.EncodeToString([]byte("mallory:pw:" + nowMillis(now)))
	assert.False(t, ValidateToken(forged, testCreds, now))

	// Right username, wrong password.
	forged = base64.StdEncoding.EncodeToString([]byte("alice:wrong:" + nowMillis(now)))
	assert.False(t, ValidateToken(forged, testCreds, now))
}

func TestValidateRejectsMalformedTokens(t *testing.T) {
	now := time.Now()

	for _, token := range []string{
		"",
		"not base64!!",
		base64.StdEncoding.EncodeToString([]byte("no-delimiters")),
		base64.StdEncoding.EncodeToString([]byte("alice:one")),
		base64.StdEncoding.EncodeToString([]byte("alice:one:not-a-number")),
	} {
		assert.False(t, ValidateToken(token, testCreds, now), "token %q should be invalid", token)
	}
}

func TestTokenWithColonPassword(t *testing.T) {
	creds := map[string]string{"carol": "pa:ss:wd"}
	now := time.Now()

	token, err := IssueToken("carol", "pa:ss:wd", creds, now)
	require.NoError(t, err)
	assert.True(t, ValidateToken(token, creds, now))
}

func TestIssueByPassword(t *testing.T) {
	now := time.Now()

	token, username, err := IssueTokenByPassword("two", testCreds, now)
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
	assert.True(t, ValidateToken(token, testCreds, now))

	_, _, err = IssueTokenByPassword("nope", testCreds, now)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func nowMillis(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
