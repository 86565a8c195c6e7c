package project

import (
	"context"
	"testing"

	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	client   = models.Actor{UserID: 1, Role: utils.RoleClient}
	vendor   = models.Actor{UserID: 2, Role: utils.RoleVendor}
	stranger = models.Actor{UserID: 3, Role: utils.RoleClient}
	admin    = models.Actor{UserID: 9, Role: utils.RoleAdmin}
)

func newService() *ProjectService {
	return NewProjectService(memstore.New(), logging.NewNopLogger())
}

func TestCreateProjectRequiresClient(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, vendor, "Laundry", "")
	assert.ErrorIs(t, err, ErrForbidden)

	p, err := svc.Create(ctx, client, "  Laundry  ", "weekly")
	require.NoError(t, err)
	assert.Equal(t, "Laundry", p.Title)
	assert.Equal(t, client.UserID, p.ClientID)
	assert.False(t, p.VendorID.Valid)
}

func TestAssignVendorAndView(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, client, "Laundry", "")
	require.NoError(t, err)

	_, err = svc.Get(ctx, vendor, p.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.AssignVendor(ctx, stranger, p.ID, vendor.UserID)
	assert.ErrorIs(t, err, ErrForbidden)

	p, err = svc.AssignVendor(ctx, client, p.ID, vendor.UserID)
	require.NoError(t, err)
	assert.Equal(t, vendor.UserID, p.VendorID.Int64)

	detail, err := svc.Get(ctx, vendor, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, detail.ID)
	assert.Empty(t, detail.Milestones)

	_, err = svc.Get(ctx, admin, p.ID)
	assert.NoError(t, err)
}

func TestCreateMilestone(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, client, "Laundry", "")
	require.NoError(t, err)

	_, err = svc.CreateMilestone(ctx, client, p.ID, "Wash", "", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	_, err = svc.CreateMilestone(ctx, vendor, p.ID, "Wash", "", 100)
	assert.ErrorIs(t, err, ErrForbidden)

	m, err := svc.CreateMilestone(ctx, client, p.ID, "Wash", "", 20000)
	require.NoError(t, err)
	assert.Equal(t, db.MilestoneDraft, m.Status)
	assert.EqualValues(t, 20000, m.AmountCents)
	assert.Zero(t, m.ReleasedCents)

	_, err = svc.CreateMilestone(ctx, admin, p.ID, "Dry", "", 5000)
	require.NoError(t, err)

	detail, err := svc.Get(ctx, client, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Milestones, 2)
	assert.Equal(t, "Wash", detail.Milestones[0].Title)
}

func TestMissingProject(t *testing.T) {
	svc := newService()
	_, err := svc.Get(context.Background(), admin, uuid.New())
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.Equal(t, models.KindNotFound, models.KindOf(err))
}

func TestRequireParty(t *testing.T) {
	p := db.Project{ClientID: client.UserID}
	assert.NoError(t, RequireParty(p, client, utils.RoleClient))
	assert.Error(t, RequireParty(p, stranger, utils.RoleClient))
	assert.Error(t, RequireParty(p, vendor, utils.RoleVendor))
	assert.Error(t, RequireParty(p, admin, utils.RoleClient, utils.RoleVendor))
	assert.NoError(t, RequireParty(p, admin, utils.RoleAdmin))
}
