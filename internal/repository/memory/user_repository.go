package memory

import (
	"context"
	"fmt"

	"notely-be/internal/entity"
	"notely-be/internal/repository/contract"
	"notely-be/internal/repository/specification"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.users[user.Id]; exists {
		return fmt.Errorf("memory: duplicate user id %s", user.Id)
	}
	r.store.users[user.Id] = cloneUser(user)
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.users[user.Id]; !exists {
		return fmt.Errorf("memory: unknown user id %s", user.Id)
	}
	r.store.users[user.Id] = cloneUser(user)
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		matched := true
		for _, spec := range specs {
			if !r.store.matchUser(u, spec) {
				matched = false
				break
			}
		}
		if matched {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}
