package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "resetme/internal/core/domain/common"
	"sync"
	"time"
)

type FakeAccountRepository struct {
	Accounts           []Account
	ReturnError        bool
	SetResetTokenError bool
	ResetPasswordError bool
	lock               sync.Mutex
}

func NewFakeAccountRepository() *FakeAccountRepository {
	return &FakeAccountRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeAccountRepository) Create(ctx context.Context, input CreateAccountInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create account %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, a := range r.Accounts {
		if a.Email == input.Email {
			return a, &EmailAlreadyExistsError{Email: input.Email}
		}
		maxID = a.ID
	}
	a = Account{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func (r *FakeAccountRepository) GetByEmail(ctx context.Context, email c.Email) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account by email")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) GetByResetToken(ctx context.Context, token ResetToken) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account by reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.ResetToken.IsPresent && a.ResetToken.Value == token {
			return a, nil
		}
	}
	return a, ErrInvalidResetToken
}

func (r *FakeAccountRepository) SetResetToken(
	ctx context.Context,
	id ID,
	token ResetToken,
	expiry time.Time,
) error {
	if r.ReturnError || r.SetResetTokenError {
		return fmt.Errorf("could not set reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID == id {
			r.Accounts[ix].ResetToken = c.NewOptional(token, true)
			r.Accounts[ix].TokenExpiry = c.NewOptional(expiry, true)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) ResetPassword(
	ctx context.Context,
	id ID,
	token ResetToken,
	password PasswordHash,
) error {
	if r.ReturnError || r.ResetPasswordError {
		return fmt.Errorf("could not reset password")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID == id && a.ResetToken.IsPresent && a.ResetToken.Value == token {
			r.Accounts[ix].PasswordHash = password
			r.Accounts[ix].ResetToken = c.NewOptional(ResetToken(""), false)
			r.Accounts[ix].TokenExpiry = c.NewOptional(time.Time{}, false)
			return nil
		}
	}
	return ErrInvalidResetToken
}

type FakeResetTokenGenerator struct {
	Tokens    []ResetToken
	callCount int
	lock      sync.Mutex
}

func NewFakeResetTokenGenerator(tokens ...string) *FakeResetTokenGenerator {
	g := &FakeResetTokenGenerator{}
	for _, t := range tokens {
		g.Tokens = append(g.Tokens, ResetToken(t))
	}
	return g
}

func (g *FakeResetTokenGenerator) GenerateResetToken() ResetToken {
	g.lock.Lock()
	defer g.lock.Unlock()
	token := g.Tokens[g.callCount%len(g.Tokens)]
	g.callCount++
	return token
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeResetTokenSender struct {
	Sent        []ResetToken
	SentTo      []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetTokenSender() *FakeResetTokenSender {
	return &FakeResetTokenSender{}
}

func (s *FakeResetTokenSender) SendResetToken(ctx context.Context, account Account, token ResetToken) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset token")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	s.SentTo = append(s.SentTo, account)
	return nil
}

func (s *FakeResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeResetTokenSender) LastSentTo() Account {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.SentTo)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.SentTo[l-1]
}
