package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost matches the work factor the rest of the account data was hashed
// with; changing it invalidates nothing but slows or weakens new hashes.
const hashCost = 12

// Hash applies a salted adaptive hash to the plaintext.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. A mismatch is not
// an error; only a malformed stored hash is.
func Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
