package blog

import "errors"

var (
	// ErrNotFound covers missing rows and rows the viewer may not see.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an edit attempt by a non-author; handlers redirect on it.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidForm wraps validation failures of submitted forms.
	ErrInvalidForm = errors.New("invalid form")
	// ErrInvalidCredentials is returned for unknown users and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken is returned when registering or renaming to an occupied username.
	ErrUsernameTaken = errors.New("username already taken")
)
