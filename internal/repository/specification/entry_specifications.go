package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotDeleted keeps only active entries.
type NotDeleted struct{}

func (s NotDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entries.is_deleted = ?", false)
}

// Deleted keeps only soft-deleted (trashed) entries.
type Deleted struct{}

func (s Deleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entries.is_deleted = ?", true)
}

// AuthoredBy filters entries by their author.
type AuthoredBy struct {
	UserID uuid.UUID
}

func (s AuthoredBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entries.author_id = ?", s.UserID)
}

// MatchingSearch does a case-insensitive substring match against title,
// synopsis, content, or the author's username (OR-combined).
// Using ILIKE for Postgres (case insensitive).
type MatchingSearch struct {
	Term string
}

func (s MatchingSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Joins("JOIN users ON users.id = entries.author_id").
		Where("entries.title ILIKE ? OR entries.synopsis ILIKE ? OR entries.content ILIKE ? OR users.username ILIKE ?",
			pattern, pattern, pattern, pattern)
}
