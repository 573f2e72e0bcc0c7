package postgresadapter

import (
	"context"
	"crypto/rand"
	"fmt"
)

// refCodeAlphabet omits 0/O/1/I/L so codes survive being read aloud or
// copied by hand from a bank statement.
const refCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const refCodeLength = 8

// ReferenceGenerator produces donor-shareable codes like "DN-7FK29QZP".
// Uniqueness is enforced by the donations table; callers retry collisions.
type ReferenceGenerator struct{}

func (ReferenceGenerator) NewReferenceCode(_ context.Context) (string, error) {
	buf := make([]byte, refCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes for reference code: %w", err)
	}
	for i, b := range buf {
		buf[i] = refCodeAlphabet[int(b)%len(refCodeAlphabet)]
	}
	return "DN-" + string(buf), nil
}
