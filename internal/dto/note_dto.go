package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
	Content  string `json:"content"`
}

type UpdateNoteRequest struct {
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
	Content  string `json:"content"`
}

// AuthorDTO is the subset of the author embedded in note responses.
type AuthorDTO struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Synopsis  string     `json:"synopsis"`
	Content   string     `json:"content"`
	AuthorId  uuid.UUID  `json:"authorId"`
	IsDeleted bool       `json:"isDeleted"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Author    *AuthorDTO `json:"author,omitempty"`
}

type NoteEnvelope struct {
	Message string       `json:"message"`
	Note    NoteResponse `json:"note"`
}

type NotesEnvelope struct {
	Message string         `json:"message"`
	Notes   []NoteResponse `json:"notes"`
}
