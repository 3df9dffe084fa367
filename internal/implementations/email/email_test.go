package email

import (
	"net/url"
	"resetme/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResetLink(t *testing.T) {
	cases := []struct {
		id       string
		base     string
		token    string
		expected string
	}{
		{
			id:       "plain base",
			base:     "https://app.example.com/reset-password",
			token:    "abc123",
			expected: "https://app.example.com/reset-password?token=abc123",
		},
		{
			id:       "base with existing query",
			base:     "https://app.example.com/reset-password?lang=en",
			token:    "abc123",
			expected: "https://app.example.com/reset-password?lang=en&token=abc123",
		},
		{
			id:       "localhost with port",
			base:     "http://localhost:3000/reset-password",
			token:    "deadbeef",
			expected: "http://localhost:3000/reset-password?token=deadbeef",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			base, err := url.Parse(testcase.base)
			require.NoError(t, err)
			require.Equal(t, testcase.expected, resetLink(*base, user.ResetToken(testcase.token)))
		})
	}
}
