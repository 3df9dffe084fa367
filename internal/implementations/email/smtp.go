package email

import (
	"context"
	"fmt"
	"net/url"
	"resetme/internal/core/domain/user"

	"gopkg.in/gomail.v2"
)

const resetSubject = "Reset Your Password"

const resetBodyTemplate = "You requested a password reset. " +
	"Click the link below to reset your password:\n\n%s\n\n" +
	"If you did not request this, ignore this email."

// SMTPSender delivers reset tokens through a plain SMTP relay.
type SMTPSender struct {
	dialer       *gomail.Dialer
	from         string
	resetBaseURL url.URL
}

func NewSMTPSender(
	host string,
	port int,
	username string,
	password string,
	from string,
	resetBaseURL url.URL,
) *SMTPSender {
	return &SMTPSender{
		dialer:       gomail.NewDialer(host, port, username, password),
		from:         from,
		resetBaseURL: resetBaseURL,
	}
}

func (s *SMTPSender) SendResetToken(ctx context.Context, account user.Account, token user.ResetToken) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", string(account.Email))
	msg.SetHeader("Subject", resetSubject)
	msg.SetBody("text/plain", fmt.Sprintf(resetBodyTemplate, resetLink(s.resetBaseURL, token)))
	return s.dialer.DialAndSend(msg)
}
