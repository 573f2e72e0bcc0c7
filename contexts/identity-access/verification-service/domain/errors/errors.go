package errors

import "errors"

var (
	ErrProfileNotFound       = errors.New("creator profile not found")
	ErrInvalidProfileInput   = errors.New("invalid creator profile input")
	ErrCreatorNotEligible    = errors.New("creator may not submit campaigns")
	ErrUnsupportedCheckValue = errors.New("unsupported verification check")
)
