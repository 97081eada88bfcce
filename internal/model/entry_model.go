package model

import (
	"time"

	"github.com/google/uuid"
)

// Entry uses an explicit IsDeleted flag instead of gorm.DeletedAt: trashed
// rows must stay addressable for the restore and trash-listing queries,
// which a global soft-delete scope would hide.
type Entry struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Synopsis  string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorId  uuid.UUID `gorm:"type:uuid;not null;index"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null"`

	Author *User `gorm:"foreignKey:AuthorId"`
}

func (Entry) TableName() string {
	return "entries"
}
