package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password          string    `gorm:"type:varchar(255);not null"`
	FirstName         string    `gorm:"type:varchar(255);not null"`
	LastName          string    `gorm:"type:varchar(255);not null"`
	Avatar            *string   `gorm:"type:text"`
	DateJoined        time.Time `gorm:"autoCreateTime"`
	LastProfileUpdate time.Time `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
