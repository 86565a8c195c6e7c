package models

import "github.com/SwiftFiat/SwiftFiat-Escrow/utils"

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID int64
	Role   string
}

func ActorFromToken(t utils.TokenObject) Actor {
	return Actor{UserID: t.UserID, Role: t.Role}
}

func (a Actor) IsAdmin() bool  { return a.Role == utils.RoleAdmin }
func (a Actor) IsClient() bool { return a.Role == utils.RoleClient }
func (a Actor) IsVendor() bool { return a.Role == utils.RoleVendor }
