// Package memory provides map-backed implementations of the repository
// contracts. They interpret the same query specifications the GORM
// implementations apply as SQL, which lets services and handlers run
// against them in tests without a database.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"notely-be/internal/entity"
	"notely-be/internal/repository/specification"

	"github.com/google/uuid"
)

type Store struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*entity.User
	entries map[uuid.UUID]*entity.Entry
}

func NewStore() *Store {
	return &Store{
		users:   make(map[uuid.UUID]*entity.User),
		entries: make(map[uuid.UUID]*entity.Entry),
	}
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Avatar != nil {
		a := *u.Avatar
		c.Avatar = &a
	}
	return &c
}

func cloneEntry(e *entity.Entry) *entity.Entry {
	if e == nil {
		return nil
	}
	c := *e
	c.Author = cloneUser(e.Author)
	return &c
}

func (s *Store) matchUser(u *entity.User, spec specification.Specification) bool {
	switch sp := spec.(type) {
	case specification.ByID:
		return u.Id == sp.ID
	case specification.ExcludingID:
		return u.Id != sp.ID
	case specification.ByIdentifier:
		return u.Email == sp.Value || u.Username == sp.Value
	case specification.ByEmailOrUsername:
		if sp.Email == "" && sp.Username == "" {
			return false
		}
		return (sp.Email != "" && u.Email == sp.Email) ||
			(sp.Username != "" && u.Username == sp.Username)
	default:
		panic(fmt.Sprintf("memory: unsupported user specification %T", spec))
	}
}

func (s *Store) matchEntry(e *entity.Entry, spec specification.Specification) bool {
	switch sp := spec.(type) {
	case specification.ByID:
		return e.Id == sp.ID
	case specification.NotDeleted:
		return !e.IsDeleted
	case specification.Deleted:
		return e.IsDeleted
	case specification.AuthoredBy:
		return e.AuthorId == sp.UserID
	case specification.MatchingSearch:
		term := strings.ToLower(sp.Term)
		if strings.Contains(strings.ToLower(e.Title), term) ||
			strings.Contains(strings.ToLower(e.Synopsis), term) ||
			strings.Contains(strings.ToLower(e.Content), term) {
			return true
		}
		author := s.users[e.AuthorId]
		return author != nil && strings.Contains(strings.ToLower(author.Username), term)
	case specification.OrderBy:
		return true // applied after filtering
	default:
		panic(fmt.Sprintf("memory: unsupported entry specification %T", spec))
	}
}

func sortEntries(entries []*entity.Entry, specs []specification.Specification) {
	for _, spec := range specs {
		order, ok := spec.(specification.OrderBy)
		if !ok {
			continue
		}
		var key func(e *entity.Entry) time.Time
		switch order.Field {
		case "entries.created_at":
			key = func(e *entity.Entry) time.Time { return e.CreatedAt }
		case "entries.updated_at":
			key = func(e *entity.Entry) time.Time { return e.UpdatedAt }
		default:
			panic(fmt.Sprintf("memory: unsupported order field %q", order.Field))
		}
		sort.SliceStable(entries, func(i, j int) bool {
			if order.Desc {
				return key(entries[i]).After(key(entries[j]))
			}
			return key(entries[i]).Before(key(entries[j]))
		})
	}
}
