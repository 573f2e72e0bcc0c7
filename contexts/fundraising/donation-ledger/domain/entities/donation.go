package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DonationStatus string
type PaymentMethod string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"

	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodWallet       PaymentMethod = "wallet"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// Donation is a single contribution record. Its amount is applied to the
// campaign counters exactly once, at the moment status becomes completed.
type Donation struct {
	DonationID    string
	ReferenceCode string
	CampaignID    string
	Amount        decimal.Decimal
	DonorName     string
	DonorEmail    string
	Method        PaymentMethod
	Status        DonationStatus
	Note          string
	CreatedAt     time.Time
	SettledAt     *time.Time
}

func (d Donation) ValidateBasics() bool {
	return strings.TrimSpace(d.CampaignID) != "" &&
		d.Amount.IsPositive() &&
		IsSupportedMethod(d.Method) &&
		len(strings.TrimSpace(d.DonorName)) <= 120 &&
		len(strings.TrimSpace(d.Note)) <= 500
}

func (d Donation) Anonymous() bool {
	return strings.TrimSpace(d.DonorName) == "" && strings.TrimSpace(d.DonorEmail) == ""
}

func IsSupportedMethod(value PaymentMethod) bool {
	switch value {
	case PaymentMethodCard, PaymentMethodWallet, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

// RequiresManualConfirmation reports whether a method settles later through
// an explicit admin approval instead of at creation time.
func RequiresManualConfirmation(value PaymentMethod) bool {
	return value == PaymentMethodBankTransfer
}

func IsSupportedDonationStatus(value DonationStatus) bool {
	switch value {
	case DonationStatusPending, DonationStatusCompleted, DonationStatusFailed:
		return true
	default:
		return false
	}
}
