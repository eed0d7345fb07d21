package usecase

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest wraps every request that fails DTO validation.
var ErrInvalidRequest = errors.New("invalid request")

func invalidRequest(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
