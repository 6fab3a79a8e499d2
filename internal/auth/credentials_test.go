package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCredentials(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{
			name: "multiple pairs",
			raw:  "alice:one,bob:two",
			want: map[string]string{"alice": "one", "bob": "two"},
		},
		{
			name: "single pair",
			raw:  "alice:one",
			want: map[string]string{"alice": "one"},
		},
		{
			name: "bare password maps to admin",
			raw:  "hunter2",
			want: map[string]string{"admin": "hunter2"},
		},
		{
			name: "whitespace trimmed",
			raw:  " alice : one , bob : two ",
			want: map[string]string{"alice": "one", "bob": "two"},
		},
		{
			name: "malformed pairs discarded",
			raw:  "alice:one,nodpass:,:nouser,junk",
			want: map[string]string{"alice": "one"},
		},
		{
			name: "duplicate username last wins",
			raw:  "alice:one,alice:two",
			want: map[string]string{"alice": "two"},
		},
		{
			name: "password containing colon",
			raw:  "alice:pa:ss",
			want: map[string]string{"alice": "pa:ss"},
		},
		{
			name: "empty input",
			raw:  "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCredentials(tt.raw))
		})
	}
}
