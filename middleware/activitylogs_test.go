package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	activitylogs "github.com/SwiftFiat/SwiftFiat-Escrow/services/activity_logs"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuditedRouter(t *testing.T, user *utils.TokenObject) (*gin.Engine, *ActivityLogMiddleware, *activitylogs.ActivityLog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	activity := activitylogs.NewActivityLog(memstore.New(), logging.NewNopLogger())
	audit := NewActivityLogMiddleware(activity)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			c.Set(utils.ActiveUserKey, *user)
		}
		c.Next()
	})
	r.Use(audit.ActivityLogger())

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.PATCH("/api/v1/admin/claims/:did", ok)
	r.GET("/api/v1/admin/activity", ok)
	return r, audit, activity
}

func serve(r *gin.Engine, method, path string) {
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, path, nil))
}

func TestAdminMutationsAreRecorded(t *testing.T) {
	r, audit, activity := newAuditedRouter(t, &utils.TokenObject{UserID: 9, Role: utils.RoleAdmin})

	serve(r, http.MethodPatch, "/api/v1/admin/claims/abc")
	serve(r, http.MethodGet, "/api/v1/admin/activity")
	audit.Wait()

	logs, err := activity.GetRecent(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, activitylogs.AdminRequest, logs[0].Type)
	assert.Equal(t, "admin resolved claim abc", logs[0].Summary)
	assert.Equal(t, int64(9), logs[0].ActorID.Int64)
}

func TestNonAdminRequestsAreNotRecorded(t *testing.T) {
	r, audit, activity := newAuditedRouter(t, &utils.TokenObject{UserID: 1, Role: utils.RoleClient})

	serve(r, http.MethodPatch, "/api/v1/admin/claims/abc")
	audit.Wait()

	logs, err := activity.GetRecent(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestShouldSkipLogging(t *testing.T) {
	assert.True(t, shouldSkipLogging(http.MethodGet))
	assert.True(t, shouldSkipLogging(http.MethodHead))
	assert.False(t, shouldSkipLogging(http.MethodPost))
	assert.False(t, shouldSkipLogging(http.MethodDelete))
}
