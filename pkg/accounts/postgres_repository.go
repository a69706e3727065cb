package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PostgresRepository implements Repository on the accounts table
// (migrations/notes_db.sql).
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL account repository
func NewPostgresRepository(db *pgxpool.Pool) (*PostgresRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &PostgresRepository{db: db}, nil
}

const createAccount = `
INSERT INTO accounts (id, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, email, password_hash, created_at`

func (r *PostgresRepository) Create(ctx context.Context, account Account) (Account, error) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	var created Account
	err := r.db.QueryRow(ctx, createAccount, account.ID, account.Email, account.PasswordHash).
		Scan(&created.ID, &created.Email, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Account{}, ErrAccountExists
		}
		return Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

const findAccountByEmail = `
SELECT id, email, password_hash, created_at
FROM accounts
WHERE email = $1`

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Account, error) {
	return r.findOne(ctx, findAccountByEmail, email)
}

const findAccountByID = `
SELECT id, email, password_hash, created_at
FROM accounts
WHERE id = $1`

func (r *PostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (Account, error) {
	return r.findOne(ctx, findAccountByID, id)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (Account, error) {
	var a Account
	err := r.db.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}
