package userservice

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"inventory/models"
)

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]models.User)}
}

func (r *MemoryUserRepository) GetUsers(ctx context.Context, filter UserFilter) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	text := strings.ToLower(strings.TrimSpace(filter.SearchText))
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if u.Role != models.UserRole {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(u.FullName), text) &&
			!strings.Contains(strings.ToLower(u.MobileNo), text) &&
			!strings.Contains(strings.ToLower(u.Village), text) {
			continue
		}
		users = append(users, u)
	}
	slices.SortFunc(users, func(a, b models.User) int { return strings.Compare(a.FullName, b.FullName) })

	if filter.Offset > 0 {
		if filter.Offset >= len(users) {
			return []models.User{}, nil
		}
		users = users[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(users) {
		users = users[:filter.Limit]
	}
	return users, nil
}

func (r *MemoryUserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) GetUserByMobile(ctx context.Context, mobileNo string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.MobileNo == mobileNo {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *MemoryUserRepository) IsMobileTaken(ctx context.Context, mobileNo string, exceptID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mobileTakenLocked(mobileNo, exceptID), nil
}

func (r *MemoryUserRepository) mobileTakenLocked(mobileNo string, exceptID uuid.UUID) bool {
	for id, u := range r.users {
		if id != exceptID && u.MobileNo == mobileNo {
			return true
		}
	}
	return false
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mobileTakenLocked(user.MobileNo, user.ID) {
		return ErrMobileTaken
	}
	r.users[user.ID] = user
	return nil
}

func (r *MemoryUserRepository) UpdateUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}
	if r.mobileTakenLocked(user.MobileNo, user.ID) {
		return ErrMobileTaken
	}
	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = user
	return nil
}

func (r *MemoryUserRepository) DeleteUserByID(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *MemoryUserRepository) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimSpace(name)
	users := []models.User{}
	for _, u := range r.users {
		if strings.EqualFold(u.FullName, name) {
			users = append(users, u)
		}
	}
	return users, nil
}
