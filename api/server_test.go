package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clientID int64 = 1
	vendorID int64 = 2
	adminID  int64 = 9
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

type testServer struct {
	t      *testing.T
	server *Server
	tokens map[int64]string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := &utils.Config{
		SigningKey:          "test-signing-key",
		DBDriver:            utils.DriverMemory,
		Currency:            "INR",
		AdvanceLimitPercent: 50,
		FeatureCacheTTL:     time.Second,
		WebhookTimeout:      time.Second,
		WebhookMaxAttempts:  3,
	}
	s := NewServer(c, memstore.New(), logging.NewNopLogger(), nil)
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	ts := &testServer{t: t, server: s, tokens: map[int64]string{}}
	for id, role := range map[int64]string{clientID: utils.RoleClient, vendorID: utils.RoleVendor, adminID: utils.RoleAdmin} {
		token, err := s.token.CreateToken(utils.TokenObject{UserID: id, Role: role, Verified: true}, time.Hour)
		require.NoError(t, err)
		ts.tokens[id] = token
	}
	return ts
}

func (ts *testServer) do(userID int64, method, path string, body interface{}) (int, envelope) {
	ts.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token, ok := ts.tokens[userID]; ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.server.Handler().ServeHTTP(w, req)

	var env envelope
	require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

// setupMilestone creates an assigned project with one 200.00 milestone.
func (ts *testServer) setupMilestone() (projectID, milestoneID string) {
	t := ts.t
	code, env := ts.do(clientID, http.MethodPost, "/api/v1/projects", gin.H{"title": "Hotel linen", "description": "Weekly laundry"})
	require.Equal(t, http.StatusCreated, code, env.Message)
	p := decode[apimodels.ProjectResponse](t, env)

	code, env = ts.do(clientID, http.MethodPost, "/api/v1/projects/"+p.ID.String()+"/assign", gin.H{"vendorId": apimodels.ID(vendorID).String()})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = ts.do(clientID, http.MethodPost, "/api/v1/projects/"+p.ID.String()+"/milestones", gin.H{"title": "Washing complete", "amountRupees": "200.00"})
	require.Equal(t, http.StatusCreated, code, env.Message)
	m := decode[apimodels.MilestoneResponse](t, env)
	assert.Equal(t, int64(20000), m.AmountCents)
	assert.Equal(t, "DRAFT", m.Status)

	return p.ID.String(), m.ID.String()
}

func (ts *testServer) action(userID int64, milestoneID string, body gin.H) (int, envelope) {
	return ts.do(userID, http.MethodPost, "/api/v1/milestones/"+milestoneID+"/actions", body)
}

func TestHealthRoute(t *testing.T) {
	ts := newTestServer(t)
	code, env := ts.do(0, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
}

func TestRequestsNeedBearerToken(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.do(0, http.MethodGet, "/api/v1/projects", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRoleGates(t *testing.T) {
	ts := newTestServer(t)

	code, _ := ts.do(vendorID, http.MethodPost, "/api/v1/projects", gin.H{"title": "Not mine"})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = ts.do(clientID, http.MethodGet, "/api/v1/admin/activity", nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestMilestoneLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	_, milestoneID := ts.setupMilestone()

	code, env := ts.action(clientID, milestoneID, gin.H{"action": "fund"})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "FUNDED", decode[apimodels.MilestoneResponse](t, env).Status)

	code, _ = ts.action(clientID, milestoneID, gin.H{"action": "submit"})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = ts.action(vendorID, milestoneID, gin.H{
		"action": "submit",
		"note":   "All sheets washed",
		"files":  []gin.H{{"fileName": "proof.jpg", "mimeType": "image/jpeg"}},
	})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = ts.do(adminID, http.MethodPut, "/api/v1/admin/users/"+apimodels.ID(clientID).String()+"/features", gin.H{"key": "partial_release", "enabled": true})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = ts.action(clientID, milestoneID, gin.H{"action": "approve", "releaseAmountRupees": "80"})
	require.Equal(t, http.StatusOK, code, env.Message)
	rel := decode[apimodels.ReleaseResponse](t, env)
	assert.Equal(t, int64(8000), rel.ReleasedAmountCents)
	assert.False(t, rel.FullyReleased)
	assert.Equal(t, "SUBMITTED", rel.Milestone.Status)

	code, env = ts.action(clientID, milestoneID, gin.H{"action": "approve"})
	require.Equal(t, http.StatusOK, code, env.Message)
	rel = decode[apimodels.ReleaseResponse](t, env)
	assert.Equal(t, int64(12000), rel.ReleasedAmountCents)
	assert.True(t, rel.FullyReleased)
	assert.Equal(t, "RELEASED", rel.Milestone.Status)

	code, env = ts.do(vendorID, http.MethodGet, "/api/v1/wallet", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(20000), decode[apimodels.WalletResponse](t, env).AvailableCents)

	code, env = ts.do(vendorID, http.MethodGet, "/api/v1/wallet/reconcile", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[apimodels.ReconciliationResponse](t, env).Balanced)

	code, env = ts.do(clientID, http.MethodGet, "/api/v1/milestones/"+milestoneID+"/ledger", nil)
	require.Equal(t, http.StatusOK, code)
	ledger := decode[[]apimodels.LedgerEntryResponse](t, env)
	require.Len(t, ledger, 4)
	assert.Equal(t, "DEPOSIT", ledger[0].Type)
	assert.Equal(t, "RELEASE", ledger[3].Type)

	code, env = ts.do(vendorID, http.MethodGet, "/api/v1/milestones/"+milestoneID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[apimodels.MilestoneDetailResponse](t, env).Evidence, 1)

	code, _ = ts.action(clientID, milestoneID, gin.H{"action": "approve"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestMilestoneActionValidation(t *testing.T) {
	ts := newTestServer(t)
	_, milestoneID := ts.setupMilestone()

	code, _ := ts.action(clientID, "not-a-uuid", gin.H{"action": "fund"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = ts.action(clientID, milestoneID, gin.H{"action": "teleport"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = ts.action(clientID, "2b7c1f5e-3a47-4a57-9e7b-2f1d6f1a0c11", gin.H{"action": "fund"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestReleaseAmountOnlyCheckedWithPartialRelease(t *testing.T) {
	ts := newTestServer(t)
	_, milestoneID := ts.setupMilestone()

	code, env := ts.action(clientID, milestoneID, gin.H{"action": "fund"})
	require.Equal(t, http.StatusOK, code, env.Message)
	code, env = ts.action(vendorID, milestoneID, gin.H{"action": "submit"})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = ts.do(adminID, http.MethodPut, "/api/v1/admin/users/"+apimodels.ID(clientID).String()+"/features", gin.H{"key": "PARTIAL_RELEASE", "enabled": true})
	require.Equal(t, http.StatusOK, code, env.Message)
	code, _ = ts.action(clientID, milestoneID, gin.H{"action": "approve", "releaseAmountRupees": "-4"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = ts.do(adminID, http.MethodPut, "/api/v1/admin/users/"+apimodels.ID(clientID).String()+"/features", gin.H{"key": "PARTIAL_RELEASE", "enabled": false})
	require.Equal(t, http.StatusOK, code, env.Message)
	code, env = ts.action(clientID, milestoneID, gin.H{"action": "approve", "releaseAmountRupees": "-4"})
	require.Equal(t, http.StatusOK, code, env.Message)
	rel := decode[apimodels.ReleaseResponse](t, env)
	assert.Equal(t, int64(20000), rel.ReleasedAmountCents)
	assert.True(t, rel.FullyReleased)
}

func TestDepositIsIdempotentPerReference(t *testing.T) {
	ts := newTestServer(t)
	body := gin.H{"userId": apimodels.ID(clientID).String(), "amountRupees": "500", "reference": "pg_123"}

	code, env := ts.do(adminID, http.MethodPost, "/api/v1/admin/wallets/deposits", body)
	require.Equal(t, http.StatusCreated, code, env.Message)
	first := decode[apimodels.DepositResponse](t, env)
	assert.False(t, first.Replayed)

	code, env = ts.do(adminID, http.MethodPost, "/api/v1/admin/wallets/deposits", body)
	require.Equal(t, http.StatusOK, code, env.Message)
	second := decode[apimodels.DepositResponse](t, env)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Transaction.ID, second.Transaction.ID)

	code, env = ts.do(clientID, http.MethodGet, "/api/v1/wallet", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(50000), decode[apimodels.WalletResponse](t, env).AvailableCents)

	code, env = ts.do(clientID, http.MethodGet, "/api/v1/wallet/transactions", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]apimodels.WalletTransactionResponse](t, env), 1)
}

func TestClaimFiledAndResolved(t *testing.T) {
	ts := newTestServer(t)
	projectID, milestoneID := ts.setupMilestone()

	code, env := ts.do(clientID, http.MethodPost, "/api/v1/projects/"+projectID+"/claims", gin.H{
		"claimType":   "damage",
		"reason":      "Two sheets torn",
		"milestoneId": milestoneID,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	claim := decode[apimodels.DisputeResponse](t, env)
	assert.Equal(t, "OPEN", claim.Status)

	code, env = ts.do(vendorID, http.MethodGet, "/api/v1/projects/"+projectID+"/claims", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]apimodels.DisputeResponse](t, env), 1)

	code, env = ts.do(adminID, http.MethodPatch, "/api/v1/admin/claims/"+claim.ID.String(), gin.H{"resolution": "Vendor to re-wash"})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "RESOLVED", decode[apimodels.DisputeResponse](t, env).Status)

	code, _ = ts.do(adminID, http.MethodPatch, "/api/v1/admin/claims/"+claim.ID.String(), gin.H{"resolution": "Again"})
	assert.Equal(t, http.StatusConflict, code)
}

func TestCapitalAdvanceOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	projectID, milestoneID := ts.setupMilestone()

	code, env := ts.action(clientID, milestoneID, gin.H{"action": "fund"})
	require.Equal(t, http.StatusOK, code, env.Message)

	path := "/api/v1/projects/" + projectID + "/capital-advances"
	code, env = ts.do(vendorID, http.MethodPost, path, gin.H{"requestedRupees": "150"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "maximum advance available is ₹100.00")

	code, env = ts.do(vendorID, http.MethodPost, path, gin.H{"requestedRupees": "60", "note": "Detergent stock"})
	require.Equal(t, http.StatusCreated, code, env.Message)
	requested := decode[apimodels.AdvanceRequestResponse](t, env)
	assert.Equal(t, int64(10000), requested.Limit.MaxAdvanceCents)

	code, env = ts.do(adminID, http.MethodPatch, "/api/v1/admin/capital-advances/"+requested.Advance.ID.String(), gin.H{"action": "approve", "approvedRupees": "50"})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "APPROVED", decode[apimodels.AdvanceResponse](t, env).Status)

	code, env = ts.do(clientID, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[apimodels.AdvanceListResponse](t, env)
	require.Len(t, list.Advances, 1)
	assert.Equal(t, int64(5000), list.Limit.OutstandingCents)

	code, env = ts.do(vendorID, http.MethodGet, "/api/v1/wallet", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(5000), decode[apimodels.WalletResponse](t, env).AvailableCents)
}

func TestWebhookRegistrationNeedsFeature(t *testing.T) {
	ts := newTestServer(t)
	body := gin.H{"url": "https://hooks.example.com/escrow", "secret": "s3cret", "eventTypes": []string{"milestone.released"}}

	code, _ := ts.do(vendorID, http.MethodPost, "/api/v1/webhooks", body)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := ts.do(adminID, http.MethodPut, "/api/v1/admin/users/"+apimodels.ID(vendorID).String()+"/features", gin.H{"key": "WEBHOOKS_ENABLED", "enabled": true})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = ts.do(vendorID, http.MethodPost, "/api/v1/webhooks", body)
	require.Equal(t, http.StatusCreated, code, env.Message)

	code, env = ts.do(vendorID, http.MethodGet, "/api/v1/webhooks", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]apimodels.WebhookEndpointResponse](t, env), 1)
}

func TestUnknownFeatureKey(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.do(adminID, http.MethodPut, "/api/v1/admin/users/"+apimodels.ID(clientID).String()+"/features", gin.H{"key": "TELEPORT", "enabled": true})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = ts.do(adminID, http.MethodPut, "/api/v1/admin/users/not-an-id/features", gin.H{"key": "WALLET_ENABLED", "enabled": true})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestNotificationsReachTheOtherParty(t *testing.T) {
	ts := newTestServer(t)
	_, milestoneID := ts.setupMilestone()

	code, env := ts.action(clientID, milestoneID, gin.H{"action": "fund"})
	require.Equal(t, http.StatusOK, code, env.Message)
	ts.server.hooks.Wait()

	code, env = ts.do(vendorID, http.MethodGet, "/api/v1/notifications", nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, decode[[]apimodels.NotificationResponse](t, env))
}
