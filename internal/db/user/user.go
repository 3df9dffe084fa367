package user

import (
	"context"
	"database/sql"
	"errors"
	c "resetme/internal/core/domain/common"
	e "resetme/internal/core/domain/errors"
	"resetme/internal/core/domain/user"
	"resetme/internal/db"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "account_email_idx"

const accountColumns = "id, email, password_hash, reset_token, token_expiry, created_at"

type PgxAccountRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxAccountRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxAccountRepository{db: db}
}

func (r *PgxAccountRepository) Create(
	ctx context.Context,
	input user.CreateAccountInput,
) (a user.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO account (email, password_hash, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING `+accountColumns,
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
	)
	a, err = scanAccount(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return a, &user.EmailAlreadyExistsError{Email: input.Email}
		}
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxAccountRepository) GetByEmail(ctx context.Context, email c.Email) (a user.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE email = $1`,
		string(email),
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, user.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxAccountRepository) GetByResetToken(
	ctx context.Context,
	token user.ResetToken,
) (a user.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE reset_token = $1`,
		string(token),
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, user.ErrInvalidResetToken
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxAccountRepository) SetResetToken(
	ctx context.Context,
	id user.ID,
	token user.ResetToken,
	expiry time.Time,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE account SET reset_token = $2, token_expiry = $3 WHERE id = $1`,
		int64(id),
		string(token),
		expiry,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrAccountDoesNotExist
	}
	return nil
}

func (r *PgxAccountRepository) ResetPassword(
	ctx context.Context,
	id user.ID,
	token user.ResetToken,
	password user.PasswordHash,
) error {
	// The token guard makes the consume atomic: a concurrent request that
	// already cleared the token turns this write into a no-op.
	tag, err := r.db.Exec(
		ctx,
		`UPDATE account
		 SET password_hash = $3, reset_token = NULL, token_expiry = NULL
		 WHERE id = $1 AND reset_token = $2`,
		int64(id),
		string(token),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrInvalidResetToken
	}
	return nil
}

func scanAccount(row pgx.Row) (a user.Account, err error) {
	var (
		id           int64
		email        string
		passwordHash string
		resetToken   sql.NullString
		tokenExpiry  sql.NullTime
		createdAt    time.Time
	)
	err = row.Scan(&id, &email, &passwordHash, &resetToken, &tokenExpiry, &createdAt)
	if err != nil {
		return a, err
	}
	return user.Account{
		ID:           user.ID(id),
		Email:        c.Email(email),
		PasswordHash: user.PasswordHash(passwordHash),
		ResetToken:   c.NewOptional(user.ResetToken(resetToken.String), resetToken.Valid),
		TokenExpiry:  c.NewOptional(tokenExpiry.Time, tokenExpiry.Valid),
		CreatedAt:    createdAt,
	}, nil
}
