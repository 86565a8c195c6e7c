package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// ActiveUserKey is the gin context key the auth middleware stores the
// verified TokenObject under.
const ActiveUserKey = "user"

func GetActiveUser(ctx *gin.Context) (TokenObject, error) {
	value, exists := ctx.Get(ActiveUserKey)
	if !exists {
		return TokenObject{}, fmt.Errorf("error occurred, not authorized to access this resource")
	}

	user, ok := value.(TokenObject)
	if !ok {
		return TokenObject{}, fmt.Errorf("an error occurred")
	}

	return user, nil
}

// HasRole reports whether user carries one of roles.
func (t TokenObject) HasRole(roles ...string) bool {
	for _, r := range roles {
		if t.Role == r {
			return true
		}
	}
	return false
}
