package errors

import "errors"

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrInvalidCampaignInput = errors.New("invalid campaign input")
	ErrCampaignNotPublished = errors.New("campaign is not published yet")
)
