package middleware

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	activitylogs "github.com/SwiftFiat/SwiftFiat-Escrow/services/activity_logs"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/gin-gonic/gin"
)

// ActivityLogMiddleware writes an ADMIN_REQUEST audit row for every
// state-changing request an admin makes.
type ActivityLogMiddleware struct {
	activity *activitylogs.ActivityLog
	wg       sync.WaitGroup
}

func NewActivityLogMiddleware(activity *activitylogs.ActivityLog) *ActivityLogMiddleware {
	return &ActivityLogMiddleware{
		activity: activity,
	}
}

func (a *ActivityLogMiddleware) ActivityLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Process request first
		c.Next()

		if shouldSkipLogging(c.Request.Method) {
			return
		}
		user, err := utils.GetActiveUser(c)
		if err != nil || !user.IsAdmin() {
			return
		}

		entry := activitylogs.Entry{
			Type:    activitylogs.AdminRequest,
			ActorID: user.UserID,
			Summary: getActionFromRequest(c),
			Metadata: map[string]interface{}{
				"status":    c.Writer.Status(),
				"ip":        c.ClientIP(),
				"userAgent": c.Request.UserAgent(),
			},
		}

		// Create log in background to not block the response
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			a.activity.Record(ctx, entry)
		}()
	}
}

// Wait blocks until pending audit writes are done.
func (a *ActivityLogMiddleware) Wait() {
	a.wg.Wait()
}

func shouldSkipLogging(method string) bool {
	mutating := []string{
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	return !slices.Contains(mutating, method)
}

func getActionFromRequest(c *gin.Context) string {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	switch {
	case strings.HasPrefix(path, "/api/v1/admin/capital-advances"):
		return fmt.Sprintf("admin decided capital advance %s", c.Param("aid"))
	case strings.HasPrefix(path, "/api/v1/admin/claims"):
		return fmt.Sprintf("admin resolved claim %s", c.Param("did"))
	case strings.HasPrefix(path, "/api/v1/admin/users") && strings.HasSuffix(path, "/features"):
		return fmt.Sprintf("admin changed features of user %s", c.Param("uid"))
	case strings.HasPrefix(path, "/api/v1/admin/wallets/deposits"):
		return "admin credited a wallet deposit"
	default:
		return c.Request.Method + " " + path
	}
}
