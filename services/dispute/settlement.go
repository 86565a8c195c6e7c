package dispute

import (
	"strings"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
)

// Claim types accepted by FileClaim.
const (
	ClaimDamage  = "DAMAGE"
	ClaimLoss    = "LOSS"
	ClaimDelay   = "DELAY"
	ClaimQuality = "QUALITY"
)

func ParseClaimType(s string) (string, error) {
	switch t := strings.ToUpper(strings.TrimSpace(s)); t {
	case ClaimDamage, ClaimLoss, ClaimDelay, ClaimQuality:
		return t, nil
	default:
		return "", ErrInvalidClaimType
	}
}

func ParseRecipient(s string) (string, error) {
	switch r := strings.ToUpper(strings.TrimSpace(s)); r {
	case db.RecipientClient, db.RecipientVendor:
		return r, nil
	default:
		return "", ErrInvalidRecipient
	}
}

// Split divides a compensation between the payer's held and available
// balances, drawing on held funds first.
func Split(compensationCents, heldCents int64) (fromHeld, fromAvailable int64) {
	fromHeld = compensationCents
	if heldCents < fromHeld {
		fromHeld = heldCents
	}
	if fromHeld < 0 {
		fromHeld = 0
	}
	return fromHeld, compensationCents - fromHeld
}

// Parties maps a recipient side to the paying and receiving user ids.
func Parties(p db.Project, recipient string) (payer, payee int64, err error) {
	if !p.VendorID.Valid {
		return 0, 0, ErrNoCounterparty
	}
	switch recipient {
	case db.RecipientClient:
		return p.VendorID.Int64, p.ClientID, nil
	case db.RecipientVendor:
		return p.ClientID, p.VendorID.Int64, nil
	default:
		return 0, 0, ErrInvalidRecipient
	}
}
