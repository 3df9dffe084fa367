package requestpasswordreset

import (
	"context"
	c "resetme/internal/core/domain/common"
	"resetme/internal/core/domain/logging"
	"resetme/internal/core/domain/user"
	"resetme/internal/core/services"
	"testing"

	"github.com/stretchr/testify/require"
)

type sendingSuite struct {
	*suite
	sender *user.FakeResetTokenSender
}

func setupSendingSuite() *sendingSuite {
	return &sendingSuite{
		suite:  setupSuite(),
		sender: user.NewFakeResetTokenSender(),
	}
}

func (s *sendingSuite) createService() services.Service[Input, Result] {
	return NewWithResetTokenSending(s.log, s.sender, s.suite.createService())
}

func TestTokenIsSentAfterSuccessfulIssue(t *testing.T) {
	// Setup ---
	suite := setupSendingSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, 1, suite.sender.SentCount())
	require.Equal(t, result.Token, suite.sender.Sent[0])
	require.Equal(t, c.Email(EMAIL), suite.sender.LastSentTo().Email)
}

func TestTokenIsNotSentWhenIssueFails(t *testing.T) {
	// Setup ---
	suite := setupSendingSuite()
	suite.accountRepo.SetResetTokenError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	// Verify ---
	require.Error(t, err)
	require.Equal(t, 0, suite.sender.SentCount())
}

func TestTokenIsNotSentForUnknownAccount(t *testing.T) {
	// Setup ---
	suite := setupSendingSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail("ghost@example.com")})

	// Verify ---
	require.ErrorIs(t, err, user.ErrAccountDoesNotExist)
	require.Equal(t, 0, suite.sender.SentCount())
}

// Delivery is best-effort: the token is already durable, so a send failure
// is logged and not surfaced to the caller.
func TestSendFailureDoesNotFailTheRequest(t *testing.T) {
	// Setup ---
	suite := setupSendingSuite()
	suite.sender.ReturnError = true
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	// Verify ---
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.NotEmpty(t, suite.log.RecordsWithLevel(logging.ERROR))

	stored, getErr := suite.accountRepo.GetByEmail(context.Background(), c.NewEmail(EMAIL))
	require.NoError(t, getErr)
	require.True(t, stored.ResetToken.IsPresent)
}
