package validators

import "errors"

var (
	ErrTitleEmpty   = errors.New("title is required")
	ErrTitleTooLong = errors.New("title must be less than 500 characters")
	ErrContentEmpty = errors.New("content is required")
)

func NoteTitleValidator(t string) error {
	if t == "" {
		return ErrTitleEmpty
	}

	if len(t) > 500 {
		return ErrTitleTooLong
	}

	return nil
}

func NoteContentValidator(c string) error {
	if c == "" {
		return ErrContentEmpty
	}

	return nil
}
