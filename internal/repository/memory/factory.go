package memory

import (
	"context"

	"notely-be/internal/repository/contract"
	"notely-be/internal/repository/unitofwork"
)

type factory struct {
	store *Store
}

// NewRepositoryFactory returns a unitofwork.RepositoryFactory backed by the
// in-memory store. Begin/Commit/Rollback are no-ops: single-record writes
// are already atomic under the store mutex.
func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &factory{store: store}
}

func (f *factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return NewUserRepository(u.store)
}

func (u *unitOfWork) EntryRepository() contract.EntryRepository {
	return NewEntryRepository(u.store)
}
