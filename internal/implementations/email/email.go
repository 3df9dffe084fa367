package email

import (
	"net/url"
	"resetme/internal/core/domain/user"
)

// resetLink embeds the token as a query parameter on the configured base
// URL, e.g. https://app.example.com/reset-password?token=<token>.
func resetLink(base url.URL, token user.ResetToken) string {
	q := base.Query()
	q.Set("token", string(token))
	base.RawQuery = q.Encode()
	return base.String()
}
