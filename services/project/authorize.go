package project

import (
	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
)

// IsParty reports whether the actor is the project's client or its
// assigned vendor.
func IsParty(p db.Project, actor models.Actor) bool {
	switch actor.Role {
	case utils.RoleClient:
		return p.ClientID == actor.UserID
	case utils.RoleVendor:
		return p.VendorID.Valid && p.VendorID.Int64 == actor.UserID
	}
	return false
}

// CanView lets admins and both parties read a project.
func CanView(p db.Project, actor models.Actor) bool {
	return actor.IsAdmin() || IsParty(p, actor)
}

// RequireParty checks that the actor holds one of roles and, unless that
// role is ADMIN, is the matching party on p.
func RequireParty(p db.Project, actor models.Actor, roles ...string) error {
	for _, r := range roles {
		if actor.Role != r {
			continue
		}
		if r == utils.RoleAdmin || IsParty(p, actor) {
			return nil
		}
	}
	return NewProjectError(ErrForbidden, p.ID)
}

// PartyIDs returns the client id and, when assigned, the vendor id.
func PartyIDs(p db.Project) []int64 {
	ids := []int64{p.ClientID}
	if p.VendorID.Valid {
		ids = append(ids, p.VendorID.Int64)
	}
	return ids
}
