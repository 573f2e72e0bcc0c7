package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ReviewDTO struct {
	ReviewID    string `json:"review_id"`
	CreatorID   string `json:"creator_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FullText    string `json:"full_text"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Goal        string `json:"goal"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

type SubmitReviewRequest struct {
	CreatorID   string `json:"creator_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FullText    string `json:"full_text"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Goal        string `json:"goal"`
}

type SubmitReviewResponse struct {
	Review ReviewDTO `json:"review"`
}

type ApproveReviewResponse struct {
	CampaignID string `json:"campaign_id"`
}

type GetReviewResponse struct {
	Review ReviewDTO `json:"review"`
}

type ListReviewsResponse struct {
	Items []ReviewDTO `json:"items"`
}
