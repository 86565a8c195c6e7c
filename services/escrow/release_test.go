package escrow

import (
	"testing"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cents(v int64) *int64 { return &v }

func TestComputeRelease(t *testing.T) {
	submitted := db.Milestone{AmountCents: 20000, Status: db.MilestoneSubmitted}

	tests := []struct {
		name    string
		m       db.Milestone
		partial *int64
		enabled bool
		want    ReleasePlan
		wantErr error
	}{
		{
			name: "full release",
			m:    submitted,
			want: ReleasePlan{Amount: 20000, NewReleased: 20000, FullyReleased: true, LedgerType: db.LedgerRelease, Status: db.MilestoneReleased},
		},
		{
			name:    "partial release",
			m:       submitted,
			partial: cents(8000),
			enabled: true,
			want:    ReleasePlan{Amount: 8000, NewReleased: 8000, LedgerType: db.LedgerPartialRelease, Status: db.MilestoneSubmitted},
		},
		{
			name:    "partial ignored when disabled",
			m:       submitted,
			partial: cents(8000),
			want:    ReleasePlan{Amount: 20000, NewReleased: 20000, FullyReleased: true, LedgerType: db.LedgerRelease, Status: db.MilestoneReleased},
		},
		{
			name:    "partial equal to remainder completes",
			m:       db.Milestone{AmountCents: 20000, ReleasedCents: 8000, Status: db.MilestoneSubmitted},
			partial: cents(12000),
			enabled: true,
			want:    ReleasePlan{Amount: 12000, NewReleased: 20000, FullyReleased: true, LedgerType: db.LedgerRelease, Status: db.MilestoneReleased},
		},
		{
			name:    "partial over remainder",
			m:       db.Milestone{AmountCents: 20000, ReleasedCents: 8000, Status: db.MilestoneSubmitted},
			partial: cents(12001),
			enabled: true,
			wantErr: ErrExceedsRemaining,
		},
		{
			name:    "zero partial",
			m:       submitted,
			partial: cents(0),
			enabled: true,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "not submitted",
			m:       db.Milestone{AmountCents: 20000, Status: db.MilestoneFunded},
			wantErr: ErrNotReleasable,
		},
		{
			name:    "nothing remaining",
			m:       db.Milestone{AmountCents: 20000, ReleasedCents: 20000, Status: db.MilestoneSubmitted},
			wantErr: ErrNotReleasable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeRelease(tc.m, tc.partial, tc.enabled)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
