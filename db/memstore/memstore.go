// Package memstore is an in-memory db.Store. It backs DB_DRIVER=memory and the
// service and handler tests. Transactions hold a store-wide lock and work on a
// copy of every table that replaces the live tables on commit.
package memstore

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type flagKey struct {
	userID int64
	key    string
}

type tables struct {
	projects      map[uuid.UUID]db.Project
	milestones    map[uuid.UUID]db.Milestone
	ledger        []db.EscrowLedgerEntry
	evidence      []db.EvidenceFile
	wallets       map[uuid.UUID]db.Wallet
	walletTxs     []db.WalletTransaction
	advances      map[uuid.UUID]db.CapitalAdvance
	disputes      map[uuid.UUID]db.Dispute
	flags         map[flagKey]db.FeatureFlag
	invoiceSeq    int64
	invoices      []db.Invoice
	notifications []db.Notification
	endpoints     map[uuid.UUID]db.WebhookEndpoint
	events        map[uuid.UUID]db.WebhookEvent
	activity      []db.ActivityLog
	orderItems    map[uuid.UUID]db.OrderItem
	stageUpdates  []db.StageUpdate
}

func newTables() *tables {
	return &tables{
		projects:   map[uuid.UUID]db.Project{},
		milestones: map[uuid.UUID]db.Milestone{},
		wallets:    map[uuid.UUID]db.Wallet{},
		advances:   map[uuid.UUID]db.CapitalAdvance{},
		disputes:   map[uuid.UUID]db.Dispute{},
		flags:      map[flagKey]db.FeatureFlag{},
		endpoints:  map[uuid.UUID]db.WebhookEndpoint{},
		events:     map[uuid.UUID]db.WebhookEvent{},
		orderItems: map[uuid.UUID]db.OrderItem{},
	}
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copySlice[T any](in []T) []T {
	return append([]T(nil), in...)
}

func (t *tables) clone() *tables {
	return &tables{
		projects:      copyMap(t.projects),
		milestones:    copyMap(t.milestones),
		ledger:        copySlice(t.ledger),
		evidence:      copySlice(t.evidence),
		wallets:       copyMap(t.wallets),
		walletTxs:     copySlice(t.walletTxs),
		advances:      copyMap(t.advances),
		disputes:      copyMap(t.disputes),
		flags:         copyMap(t.flags),
		invoiceSeq:    t.invoiceSeq,
		invoices:      copySlice(t.invoices),
		notifications: copySlice(t.notifications),
		endpoints:     copyMap(t.endpoints),
		events:        copyMap(t.events),
		activity:      copySlice(t.activity),
		orderItems:    copyMap(t.orderItems),
		stageUpdates:  copySlice(t.stageUpdates),
	}
}

// clock hands out strictly increasing timestamps so created_at ordering is
// total, the way a sequence-backed column would be.
type clock struct {
	mu   sync.Mutex
	last time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := time.Now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}

// Queries implements db.Querier over one set of tables. The Store's own
// Queries takes the store lock per call; the copy handed to ExecTx does not.
type Queries struct {
	mu    *sync.Mutex
	t     *tables
	clock *clock
}

func (q *Queries) lock() func() {
	if q.mu == nil {
		return func() {}
	}
	q.mu.Lock()
	return q.mu.Unlock
}

func (q *Queries) now() time.Time {
	return q.clock.now()
}

type Store struct {
	*Queries
	mu sync.Mutex
}

var _ db.Store = (*Store)(nil)

func New() *Store {
	s := &Store{}
	s.Queries = &Queries{mu: &s.mu, t: newTables(), clock: &clock{}}
	return s
}

func (s *Store) ExecTx(ctx context.Context, fq func(q db.Querier) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &Queries{t: s.Queries.t.clone(), clock: s.Queries.clock}
	if err := fq(tx); err != nil {
		return err
	}
	*s.Queries.t = *tx.t
	return nil
}

func duplicate(constraint string) error {
	return &pq.Error{Code: db.DuplicateEntry, Constraint: constraint, Message: "duplicate key value violates unique constraint \"" + constraint + "\""}
}

func checkViolation(constraint string) error {
	return &pq.Error{Code: db.CheckViolation, Constraint: constraint, Message: "new row violates check constraint \"" + constraint + "\""}
}

func foreignKey(constraint string) error {
	return &pq.Error{Code: "23503", Constraint: constraint, Message: "insert or update violates foreign key constraint \"" + constraint + "\""}
}

func sqlTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func noRows[T any]() (T, error) {
	var zero T
	return zero, sql.ErrNoRows
}

func page[T any](rows []T, limit, offset int32) []T {
	if offset < 0 {
		offset = 0
	}
	if int(offset) >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit >= 0 && int(limit) < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func sortByCreated[T any](rows []T, at func(T) time.Time, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return at(rows[i]).After(at(rows[j]))
		}
		return at(rows[i]).Before(at(rows[j]))
	})
}
