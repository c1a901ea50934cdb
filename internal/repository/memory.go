package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/statusfeed/statusfeed-go/internal/model"
)

// MemoryUserRepository is an in-memory UserRepository. It backs development
// runs without a reachable MySQL and the test suite. Nothing is durable.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
}

// NewMemoryUserRepository creates an empty MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]model.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	r.nextID++
	now := time.Now().UTC()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user

	return nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}

	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	user := u
	return &user, nil
}

// MemoryStatusRepository is the in-memory StatusRepository counterpart to
// MemoryUserRepository.
type MemoryStatusRepository struct {
	mu       sync.Mutex
	nextID   int64
	statuses map[int64]model.Status
}

// NewMemoryStatusRepository creates an empty MemoryStatusRepository.
func NewMemoryStatusRepository() *MemoryStatusRepository {
	return &MemoryStatusRepository{statuses: make(map[int64]model.Status)}
}

func (r *MemoryStatusRepository) Create(ctx context.Context, status *model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	status.ID = r.nextID
	status.UpdatedAt = time.Now().UTC()
	r.statuses[status.ID] = *status

	return nil
}

func (r *MemoryStatusRepository) GetByID(ctx context.Context, id int64) (*model.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.statuses[id]
	if !ok {
		return nil, ErrStatusNotFound
	}

	status := s
	return &status, nil
}

func (r *MemoryStatusRepository) ListByUser(ctx context.Context, userID int64) ([]model.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var statuses []model.Status
	for _, s := range r.statuses {
		if s.UserID == userID {
			statuses = append(statuses, s)
		}
	}

	// IDs are assigned monotonically, so sorting by ID restores insertion order.
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].ID < statuses[j].ID })

	return statuses, nil
}

func (r *MemoryStatusRepository) Update(ctx context.Context, status *model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.statuses[status.ID]
	if !ok {
		return ErrStatusNotFound
	}

	existing.Content = status.Content
	existing.UpdatedAt = time.Now().UTC()
	r.statuses[status.ID] = existing

	return nil
}

func (r *MemoryStatusRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.statuses[id]; !ok {
		return ErrStatusNotFound
	}

	delete(r.statuses, id)
	return nil
}
