package domain

import (
	"context"
	"errors"
)

// SubmissionRequest represents a booking form submission.
// Services keeps the order in which options were checked on the page.
type SubmissionRequest struct {
	Name     string   `json:"name" binding:"required" validate:"required"`
	Contact  string   `json:"contact" binding:"required" validate:"required"`
	Services []string `json:"services" binding:"required,min=1" validate:"required,min=1"`
}

// SubmissionUsecase defines the interface for relaying form submissions
type SubmissionUsecase interface {
	// Submit validates the request and forwards it to the operator channel
	Submit(ctx context.Context, req *SubmissionRequest) error
}

// Notifier delivers a rendered notification to the operator channel
type Notifier interface {
	Send(ctx context.Context, text string) error
	IsConfigured() bool
}

// ErrNotConfigured is returned when the notifier is missing its credentials,
// so the handler can answer 503 instead of a misleading relay failure.
var ErrNotConfigured = errors.New("notifier is not configured")

// ValidationError rejects a submission before any relay attempt is made.
// Its message is safe to show to the end user.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}
