package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CampaignSummaryDTO struct {
	CampaignID string `json:"campaign_id"`
	CreatorID  string `json:"creator_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Goal       string `json:"goal"`
	Raised     string `json:"raised"`
	Backers    int    `json:"backers"`
	Verified   bool   `json:"verified"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type ReviewSummaryDTO struct {
	ReviewID    string `json:"review_id"`
	CreatorID   string `json:"creator_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Goal        string `json:"goal"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

type DonationSummaryDTO struct {
	DonationID    string `json:"donation_id"`
	ReferenceCode string `json:"reference_code"`
	CampaignID    string `json:"campaign_id"`
	DonorName     string `json:"donor_name"`
	Amount        string `json:"amount"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type ProfileSummaryDTO struct {
	CreatorID        string `json:"creator_id"`
	DisplayName      string `json:"display_name"`
	Email            string `json:"email"`
	PhoneVerified    bool   `json:"phone_verified"`
	IdentityVerified bool   `json:"identity_verified"`
	AddressVerified  bool   `json:"address_verified"`
	Disabled         bool   `json:"disabled"`
	OnHold           bool   `json:"on_hold"`
}

type ListCampaignSummariesResponse struct {
	Items []CampaignSummaryDTO `json:"items"`
}

type ListReviewSummariesResponse struct {
	Items []ReviewSummaryDTO `json:"items"`
}

type ListDonationSummariesResponse struct {
	Items []DonationSummaryDTO `json:"items"`
}

type ListProfileSummariesResponse struct {
	Items []ProfileSummaryDTO `json:"items"`
}
