package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plain password with bcrypt. Used by cmd/seed to
// produce the ADMIN_PASSWORD_HASH value.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword checks a candidate password against the stored
// admin credential hash.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
