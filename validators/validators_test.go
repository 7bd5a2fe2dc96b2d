package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	tests := []struct {
		email string
		want  error
	}{
		{"", ErrEmailEmpty},
		{"not-an-email", ErrEmailInvalid},
		{"a@b.com", nil},
		{"with.dots+tag@example.org", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EmailValidator(tt.email), "email %q", tt.email)
	}
}

func TestPasswordValidator(t *testing.T) {
	tests := []struct {
		password string
		want     error
	}{
		{"", ErrPasswordEmpty},
		{"short", ErrPasswordTooShort},
		{"1234567", ErrPasswordTooShort},
		{"12345678", nil},
		{strings.Repeat("a", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PasswordValidator(tt.password))
	}
}

func TestNameValidator(t *testing.T) {
	assert.Equal(t, ErrNameTooShort, NameValidator(""))
	assert.Equal(t, ErrNameTooShort, NameValidator(" a "))
	assert.NoError(t, NameValidator("Ann"))
}

func TestNoteValidators(t *testing.T) {
	assert.Equal(t, ErrTitleEmpty, NoteTitleValidator(""))
	assert.Equal(t, ErrTitleTooLong, NoteTitleValidator(strings.Repeat("x", 501)))
	assert.NoError(t, NoteTitleValidator("Groceries"))

	assert.Equal(t, ErrContentEmpty, NoteContentValidator(""))
	assert.NoError(t, NoteContentValidator("milk, eggs"))
}
