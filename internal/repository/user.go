package repository

import (
	"errors"
	"sync"

	"github.com/nearbuy/marketplace/internal/model"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")

type UserRepository interface {
	Create(user model.User) error
	GetByID(id string) (model.User, error)
}

type Users struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserRepository() UserRepository {
	return &Users{users: make(map[string]model.User)}
}

func (u *Users) Create(user model.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.users[user.ID] = user
	return nil
}

func (u *Users) GetByID(id string) (model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, ok := u.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user, nil
}
