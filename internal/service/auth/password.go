package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a learner's plaintext password against the stored
// hash. A nil error means the password matches.
type PasswordVerifier interface {
	Compare(hashedPassword, password string) error
}

// BcryptVerifier checks hashes produced by the learner stores.
type BcryptVerifier struct{}

var _ PasswordVerifier = (*BcryptVerifier)(nil)

func NewBcryptVerifier() *BcryptVerifier { return &BcryptVerifier{} }

// Compare returns bcrypt.ErrMismatchedHashAndPassword on a wrong password and
// a different error when the stored hash is malformed.
func (*BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
