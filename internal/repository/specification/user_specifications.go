package specification

import "gorm.io/gorm"

// ByIdentifier matches a user by email or username in one shot, the way
// the login form accepts either.
type ByIdentifier struct {
	Value string
}

func (s ByIdentifier) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ? OR username = ?", s.Value, s.Value)
}

// ByEmailOrUsername matches any user holding either value. Empty fields are
// skipped, so it can express "email taken", "username taken", or both.
type ByEmailOrUsername struct {
	Email    string
	Username string
}

func (s ByEmailOrUsername) Apply(db *gorm.DB) *gorm.DB {
	switch {
	case s.Email != "" && s.Username != "":
		return db.Where("email = ? OR username = ?", s.Email, s.Username)
	case s.Email != "":
		return db.Where("email = ?", s.Email)
	case s.Username != "":
		return db.Where("username = ?", s.Username)
	default:
		// Nothing to match against; force an empty result instead of
		// silently matching everyone.
		return db.Where("1 = 0")
	}
}
