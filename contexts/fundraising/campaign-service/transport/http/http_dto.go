package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CampaignDTO struct {
	CampaignID  string `json:"campaign_id"`
	CreatorID   string `json:"creator_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FullText    string `json:"full_text"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Goal        string `json:"goal"`
	Raised      string `json:"raised"`
	Backers     int    `json:"backers"`
	Verified    bool   `json:"verified"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CreateCampaignRequest struct {
	CreatorID   string `json:"creator_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FullText    string `json:"full_text"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Goal        string `json:"goal"`
}

type CreateCampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type UpdateTextRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FullText    *string `json:"full_text"`
	Category    *string `json:"category"`
}

type SetHoldRequest struct {
	OnHold bool `json:"on_hold"`
}

type GetCampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type ListCampaignsResponse struct {
	Items []CampaignDTO `json:"items"`
}
