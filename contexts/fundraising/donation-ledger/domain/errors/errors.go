package errors

import "errors"

var (
	ErrDonationNotFound       = errors.New("donation not found")
	ErrInvalidDonationInput   = errors.New("invalid donation input")
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrCampaignFullyFunded    = errors.New("campaign has already reached its goal")
	ErrDonationAlreadySettled = errors.New("donation has already been settled")
	ErrDonationAlreadyFailed  = errors.New("donation has already been marked failed")
	ErrReferenceCodeTaken     = errors.New("donation reference code already in use")
	ErrReferenceCodeExhausted = errors.New("could not allocate a unique reference code")
)
