package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrIncompleteStep indicates a checkout step is missing required fields.
	ErrIncompleteStep = errors.New("step incomplete")
	// ErrInvalidTransition indicates a checkout step change the wizard does not allow.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrSubmitted indicates the checkout session already reached its terminal state.
	ErrSubmitted = errors.New("checkout already submitted")
)
