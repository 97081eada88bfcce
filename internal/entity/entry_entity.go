package entity

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a note record. "Note" and "entry" are synonymous; the storage
// layer keeps the historical "entries" table name while the API speaks of
// notes.
type Entry struct {
	Id        uuid.UUID
	Title     string
	Synopsis  string
	Content   string
	AuthorId  uuid.UUID
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Author is populated on reads for response shaping. Only its public
	// fields are ever serialized.
	Author *User
}
