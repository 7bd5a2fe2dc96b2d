package validators

import (
	"errors"
	"strings"
)

var ErrNameTooShort = errors.New("name must be at least 2 characters long")

func NameValidator(n string) error {
	if len(strings.TrimSpace(n)) < 2 {
		return ErrNameTooShort
	}

	return nil
}
