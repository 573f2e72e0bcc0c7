package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ProfileDTO struct {
	CreatorID        string `json:"creator_id"`
	DisplayName      string `json:"display_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	PhoneVerified    bool   `json:"phone_verified"`
	IdentityVerified bool   `json:"identity_verified"`
	AddressVerified  bool   `json:"address_verified"`
	Disabled         bool   `json:"disabled"`
	OnHold           bool   `json:"on_hold"`
}

type SetVerificationRequest struct {
	Check    string `json:"check"`
	Verified bool   `json:"verified"`
}

type SetVerificationResponse struct {
	Profile ProfileDTO `json:"profile"`
}
