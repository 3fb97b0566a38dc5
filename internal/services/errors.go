package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned for missing or invalid input.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownCuisine is returned when a cuisine name does not resolve.
	ErrUnknownCuisine = fmt.Errorf("%w: unknown cuisine", ErrValidation)
	// ErrUnknownTag is returned when at least one tag name does not resolve.
	ErrUnknownTag = fmt.Errorf("%w: unknown tag", ErrValidation)

	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRecipeNotFound is returned when no recipe matches the given id.
	ErrRecipeNotFound = errors.New("recipe not found")
)
