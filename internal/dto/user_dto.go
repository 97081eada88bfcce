package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserDTO is the sanitized user representation. There is deliberately no
// password field anywhere in this struct.
type UserDTO struct {
	Id                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Avatar            *string   `json:"avatar"`
	DateJoined        time.Time `json:"dateJoined"`
	LastProfileUpdate time.Time `json:"lastProfileUpdate"`
}

type ProfileResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

// UpdateProfileRequest carries a partial update: every field is
// independently present-or-absent, and absent fields are left untouched.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Avatar    *string `json:"avatar"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type UploadAvatarResponse struct {
	Message   string  `json:"message"`
	User      UserDTO `json:"user"`
	AvatarUrl string  `json:"avatarUrl"`
}
