// Package stage moves a project's order items along the processing
// pipeline when a milestone whose title names a later stage is paid out.
package stage

import (
	"context"
	"strings"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const AutoAdvanceNote = "Auto-advanced on milestone release"

// Inferrer maps a milestone title to a pipeline stage. ok is false when the
// title names no stage.
type Inferrer interface {
	Infer(title string) (stage string, ok bool)
}

// KeywordInferrer picks the furthest stage whose keyword occurs in the
// lower-cased title.
type KeywordInferrer struct {
	Keywords map[string]string
	Stages   []string
}

func DefaultInferrer() KeywordInferrer {
	return KeywordInferrer{
		Keywords: map[string]string{
			"pickup":   "SORTING",
			"sort":     "SORTING",
			"wash":     "WASHING",
			"dry":      "DRYING",
			"iron":     "PRESSING",
			"press":    "PRESSING",
			"qc":       "QC_CHECK",
			"quality":  "QC_CHECK",
			"inspect":  "QC_CHECK",
			"pack":     "PACKED",
			"deliver":  "DELIVERED",
			"dispatch": "DELIVERED",
			"ship":     "DELIVERED",
		},
		Stages: db.OrderStages,
	}
}

func (k KeywordInferrer) Infer(title string) (string, bool) {
	lower := strings.ToLower(title)
	best, bestIdx := "", -1
	for kw, st := range k.Keywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		if idx := Index(k.Stages, st); idx > bestIdx {
			best, bestIdx = st, idx
		}
	}
	return best, bestIdx >= 0
}

// Index is the position of stage in stages, or -1.
func Index(stages []string, stage string) int {
	for i, s := range stages {
		if s == stage {
			return i
		}
	}
	return -1
}

type Advancer struct {
	store    db.Store
	inferrer Inferrer
	logger   *logging.Logger
}

func NewAdvancer(store db.Store, inferrer Inferrer, logger *logging.Logger) *Advancer {
	return &Advancer{store: store, inferrer: inferrer, logger: logger}
}

// AdvanceForMilestone infers a stage from title and moves every order item
// of the project that is behind it. It returns how many items moved.
func (a *Advancer) AdvanceForMilestone(ctx context.Context, projectID uuid.UUID, title string, actorID int64) (int, error) {
	target, ok := a.inferrer.Infer(title)
	if !ok {
		return 0, nil
	}
	targetIdx := Index(db.OrderStages, target)
	if targetIdx < 0 {
		return 0, nil
	}

	items, err := a.store.ListOrderItemsByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, item := range items {
		if Index(db.OrderStages, item.CurrentStage) >= targetIdx {
			continue
		}
		err := a.store.ExecTx(ctx, func(q db.Querier) error {
			if _, err := q.UpdateOrderItemStage(ctx, db.UpdateOrderItemStageParams{ID: item.ID, CurrentStage: target}); err != nil {
				return err
			}
			_, err := q.CreateStageUpdate(ctx, db.CreateStageUpdateParams{
				OrderItemID: item.ID,
				Stage:       target,
				Note:        nullString(AutoAdvanceNote),
				ActorID:     nullInt64(actorID),
			})
			return err
		})
		if err != nil {
			return moved, err
		}
		moved++
	}

	if moved > 0 {
		a.logger.WithFields(logrus.Fields{"project_id": projectID, "stage": target, "items": moved}).Info("order items advanced")
	}
	return moved, nil
}
