package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks input that can never be stored as given.
var ErrValidation = errors.New("validation failed")

// NotFoundError reports a cart or item id that does not exist.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %d", e.Kind, e.ID)
}

func cartNotFound(id uint) error {
	return &NotFoundError{Kind: "Cart", ID: id}
}

func itemNotFound(id uint) error {
	return &NotFoundError{Kind: "Item", ID: id}
}

// IsNotFound reports whether err is, or wraps, a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
