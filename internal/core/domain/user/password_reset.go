package user

import "context"

// ResetToken is an opaque high-entropy credential proving the holder
// received the reset email. It is compared by exact string equality.
type ResetToken string

type ResetTokenGenerator interface {
	GenerateResetToken() ResetToken
}

type ResetTokenSender interface {
	SendResetToken(ctx context.Context, account Account, token ResetToken) error
}
