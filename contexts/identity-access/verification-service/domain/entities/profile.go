package entities

import (
	"strings"
	"time"
)

// CreatorProfile carries the verification flags a creator must hold before a
// campaign submission can be published. This context is the only writer of
// the flags; the review queue reads them through a port.
type CreatorProfile struct {
	CreatorID        string
	DisplayName      string
	Email            string
	Phone            string
	PhoneVerified    bool
	IdentityVerified bool
	AddressVerified  bool
	Disabled         bool
	OnHold           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// VerificationCheck names one of the independent publication gates.
type VerificationCheck string

const (
	CheckPhone    VerificationCheck = "phone"
	CheckIdentity VerificationCheck = "identity"
	CheckAddress  VerificationCheck = "address"
)

// MissingChecks lists every failing gate, in a stable order.
func (p CreatorProfile) MissingChecks() []VerificationCheck {
	missing := make([]VerificationCheck, 0, 3)
	if !p.PhoneVerified {
		missing = append(missing, CheckPhone)
	}
	if !p.IdentityVerified {
		missing = append(missing, CheckIdentity)
	}
	if !p.AddressVerified {
		missing = append(missing, CheckAddress)
	}
	return missing
}

func (p CreatorProfile) FullyVerified() bool {
	return len(p.MissingChecks()) == 0
}

// MaySubmit is the submission-time precondition: publication checks are
// deferred to approval, but a creator must at least have a phone on file and
// an account in good standing.
func (p CreatorProfile) MaySubmit() bool {
	return !p.Disabled && !p.OnHold && strings.TrimSpace(p.Phone) != ""
}

func IsSupportedCheck(value VerificationCheck) bool {
	switch value {
	case CheckPhone, CheckIdentity, CheckAddress:
		return true
	default:
		return false
	}
}
