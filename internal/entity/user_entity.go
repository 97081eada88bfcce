package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	// Avatar is a *string to support database NULLs (no avatar set).
	Avatar            *string
	DateJoined        time.Time
	LastProfileUpdate time.Time
}
