package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]Account
	byEmail map[string]uuid.UUID
}

// NewInMemoryRepository creates a new in-memory account repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[uuid.UUID]Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Create stores a new account
func (r *InMemoryRepository) Create(ctx context.Context, account Account) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return Account{}, ErrAccountExists
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	r.byID[account.ID] = account
	r.byEmail[account.Email] = account.ID
	return account, nil
}

// FindByEmail retrieves an account by its normalized email
func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return r.byID[id], nil
}

// FindByID retrieves an account by ID
func (r *InMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return account, nil
}
