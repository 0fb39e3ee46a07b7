package repositories

import "errors"

var (
	// ErrNotFound is returned when a referenced entity id is absent.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateEmail is returned when creating a user whose email
	// already exists in the credential store.
	ErrDuplicateEmail = errors.New("email already registered")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicateEmailError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}
