package accounts

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	apperrors "github.com/tendant/simple-notes/pkg/errors"
	"github.com/tendant/simple-notes/pkg/validation"
	"golang.org/x/crypto/bcrypt"
)

// DefaultMinPasswordLength mirrors the client-side registration minimum
const DefaultMinPasswordLength = 8

// Service registers accounts and exchanges credentials for access tokens
type Service struct {
	repo              Repository
	issuer            *TokenIssuer
	minPasswordLength int
	hashCost          int
}

// Option configures a Service
type Option func(*Service)

// WithMinPasswordLength overrides DefaultMinPasswordLength
func WithMinPasswordLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minPasswordLength = n
		}
	}
}

// WithHashCost sets the bcrypt cost
func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.hashCost = cost
	}
}

func NewService(repo Repository, issuer *TokenIssuer, opts ...Option) *Service {
	s := &Service{
		repo:              repo,
		issuer:            issuer,
		minPasswordLength: DefaultMinPasswordLength,
		hashCost:          bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeEmail lower-cases an email for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// Register creates an account for email and password
func (s *Service) Register(ctx context.Context, email, password string) (Account, error) {
	if email == "" || password == "" {
		return Account{}, apperrors.New(apperrors.ErrCodeMissingRequired, "email and password are required")
	}
	if !validation.IsValidEmail(email) {
		return Account{}, apperrors.New(apperrors.ErrCodeInvalidEmail, "invalid email")
	}
	if utf8.RuneCountInString(password) < s.minPasswordLength {
		return Account{}, apperrors.Newf(apperrors.ErrCodePasswordTooShort,
			"password must be at least %d characters", s.minPasswordLength).
			WithDetail("min_length", s.minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return Account{}, apperrors.InternalWrap(err, "failed to hash password")
	}

	account, err := s.repo.Create(ctx, Account{
		ID:           uuid.New(),
		Email:        NormalizeEmail(email),
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, ErrAccountExists) {
			return Account{}, apperrors.Wrap(err, apperrors.ErrCodeUserAlreadyExists, "account already exists")
		}
		return Account{}, apperrors.InternalWrap(err, "failed to create account")
	}

	slog.Info("Account registered", "account_id", account.ID)
	return account, nil
}

// Login verifies the credentials and issues an access token. Unknown
// accounts and wrong passwords produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (Token, error) {
	if email == "" || password == "" {
		return Token{}, apperrors.New(apperrors.ErrCodeMissingRequired, "email and password are required")
	}

	account, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return Token{}, apperrors.New(apperrors.ErrCodeInvalidCredentials, "invalid credentials")
		}
		return Token{}, apperrors.InternalWrap(err, "failed to find account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		slog.Info("Login rejected", "account_id", account.ID)
		return Token{}, apperrors.New(apperrors.ErrCodeInvalidCredentials, "invalid credentials")
	}

	token, err := s.issuer.Issue(account)
	if err != nil {
		return Token{}, apperrors.InternalWrap(err, "failed to issue token")
	}
	slog.Info("Login succeeded", "account_id", account.ID)
	return token, nil
}

// Get returns the account with id
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return Account{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "account not found")
		}
		return Account{}, apperrors.InternalWrap(err, "failed to find account")
	}
	return account, nil
}
