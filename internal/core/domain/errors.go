package domain

import "errors"

// Errors shared across services. Workflow-specific errors live with the
// service that owns the workflow.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRole  = errors.New("invalid admin role")
)
