package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/workflow-tracker-server/internal/model"
)

const uniqueViolation = "23505"

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	if err := r.db.EnsureSchema(ctx); err != nil {
		return model.Account{}, err
	}

	query := `SELECT id, name, email, password, created_at
			  FROM accounts WHERE email = $1`

	account, err := r.scanOne(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Account{}, err
		}
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByCredentials(ctx context.Context, email, password string) (model.Account, error) {
	if err := r.db.EnsureSchema(ctx); err != nil {
		return model.Account{}, err
	}

	query := `SELECT id, name, email, password, created_at
			  FROM accounts WHERE email = $1 AND password = $2`

	account, err := r.scanOne(r.db.QueryRow(ctx, query, email, password))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Account{}, err
		}
		return model.Account{}, fmt.Errorf("failed to get account by credentials: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	if err := r.db.EnsureSchema(ctx); err != nil {
		return model.Account{}, err
	}

	query := `INSERT INTO accounts (id, name, email, password, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, name, email, password, created_at`

	saved, err := r.scanOne(r.db.QueryRow(ctx, query,
		account.ID, account.Name, account.Email, account.Password, account.CreatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.Account{}, model.ErrAlreadyExists
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return saved, nil
}

func (r *AccountRepository) scanOne(row pgx.Row) (model.Account, error) {
	var account model.Account
	err := row.Scan(&account.ID, &account.Name, &account.Email, &account.Password, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, err
	}
	return account, nil
}
