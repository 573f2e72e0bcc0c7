package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DonationDTO struct {
	DonationID    string `json:"donation_id"`
	ReferenceCode string `json:"reference_code"`
	CampaignID    string `json:"campaign_id"`
	Amount        string `json:"amount"`
	DonorName     string `json:"donor_name,omitempty"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	Note          string `json:"note,omitempty"`
	CreatedAt     string `json:"created_at"`
	SettledAt     string `json:"settled_at,omitempty"`
}

type RecordDonationRequest struct {
	Amount     string `json:"amount"`
	DonorName  string `json:"donor_name"`
	DonorEmail string `json:"donor_email"`
	Method     string `json:"method"`
	Note       string `json:"note"`
}

type RecordDonationResponse struct {
	Donation DonationDTO `json:"donation"`
}

type ApproveDonationResponse struct {
	Donation DonationDTO `json:"donation"`
}

type GetDonationResponse struct {
	Donation DonationDTO `json:"donation"`
}

type ListDonationsResponse struct {
	Items []DonationDTO `json:"items"`
}
