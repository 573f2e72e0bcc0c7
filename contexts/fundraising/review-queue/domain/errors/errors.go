package errors

import (
	"errors"
	"strings"
)

var (
	ErrReviewNotFound     = errors.New("review item not found")
	ErrReviewNotPending   = errors.New("review item is not pending")
	ErrInvalidReviewInput = errors.New("invalid review input")
)

// VerificationIncompleteError reports every failing verification check so an
// admin sees the full picture instead of fixing gates one at a time.
type VerificationIncompleteError struct {
	Missing []string
}

func (e *VerificationIncompleteError) Error() string {
	return "verification incomplete: " + strings.Join(e.Missing, ", ")
}
