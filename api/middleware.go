package api

import (
	"net/http"
	"strings"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/gin-gonic/gin"
)

func (s *Server) AuthenticatedMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, basemodels.NewError(apistrings.Unauthorized))
			return
		}

		tokenSplit := strings.Split(token, " ")
		if len(tokenSplit) != 2 || strings.ToLower(tokenSplit[0]) != "bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, basemodels.NewError(apistrings.InvalidBearer))
			return
		}

		user, err := s.token.VerifyToken(tokenSplit[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, basemodels.NewError(err.Error()))
			return
		}

		ctx.Set("user_id", user.UserID)
		ctx.Set("user_role", user.Role)
		/// Accessible User Across the App
		ctx.Set(utils.ActiveUserKey, user)
		ctx.Next()
	}
}

// RoleMiddleware lets the request through only for the given roles. It must
// run after AuthenticatedMiddleware.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utils.GetActiveUser(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
			return
		}
		if !user.HasRole(roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, basemodels.NewError(apistrings.RoleNotPermitted))
			return
		}
		ctx.Next()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST,HEAD,PATCH,OPTIONS,GET,PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
