package validators

import "errors"

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrPasswordEmpty    = errors.New("no password provided")
)

// PasswordValidator only enforces length. Composition rules live in the
// frontend, the backend deliberately accepts anything long enough.
func PasswordValidator(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) < 8 {
		return ErrPasswordTooShort
	}

	// bcrypt refuses anything longer than 72 bytes
	if len(p) > 72 {
		return ErrPasswordTooLong
	}

	return nil
}
