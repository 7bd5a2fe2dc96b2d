package security

import "golang.org/x/crypto/bcrypt"

// bcryptCost is deliberately above the library default to keep brute
// forcing leaked hashes expensive
const bcryptCost = 12

func HashPassword(p string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword compares a plaintext password with a stored bcrypt hash
func VerifyPassword(p, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(p)) == nil
}
