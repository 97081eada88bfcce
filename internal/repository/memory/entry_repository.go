package memory

import (
	"context"
	"fmt"

	"notely-be/internal/entity"
	"notely-be/internal/repository/contract"
	"notely-be/internal/repository/specification"
)

type entryRepository struct {
	store *Store
}

func NewEntryRepository(store *Store) contract.EntryRepository {
	return &entryRepository{store: store}
}

func (r *entryRepository) withAuthor(e *entity.Entry) *entity.Entry {
	c := cloneEntry(e)
	c.Author = cloneUser(r.store.users[e.AuthorId])
	return c
}

func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.entries[entry.Id]; exists {
		return fmt.Errorf("memory: duplicate entry id %s", entry.Id)
	}
	r.store.entries[entry.Id] = cloneEntry(entry)
	return nil
}

func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.entries[entry.Id]; !exists {
		return fmt.Errorf("memory: unknown entry id %s", entry.Id)
	}
	r.store.entries[entry.Id] = cloneEntry(entry)
	return nil
}

func (r *entryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, e := range r.store.entries {
		matched := true
		for _, spec := range specs {
			if !r.store.matchEntry(e, spec) {
				matched = false
				break
			}
		}
		if matched {
			return r.withAuthor(e), nil
		}
	}
	return nil, nil
}

func (r *entryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.Entry
	for _, e := range r.store.entries {
		matched := true
		for _, spec := range specs {
			if !r.store.matchEntry(e, spec) {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, r.withAuthor(e))
		}
	}
	sortEntries(result, specs)
	return result, nil
}
