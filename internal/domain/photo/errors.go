package photo

import "errors"

var (
	ErrNoFile           = errors.New("no photo file provided")
	ErrUserNameRequired = errors.New("user name is required")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
)
