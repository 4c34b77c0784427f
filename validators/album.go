package validators

import (
	"errors"
	"strings"
)

var (
	ErrTitleEmpty   = errors.New("album title can't be empty")
	ErrTitleTooLong = errors.New("album title is too long")
)

func AlbumTitleValidator(t string) error {
	if strings.TrimSpace(t) == "" {
		return ErrTitleEmpty
	}

	if len(t) > 200 {
		return ErrTitleTooLong
	}

	return nil
}
