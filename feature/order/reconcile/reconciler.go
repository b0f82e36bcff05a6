package reconcile

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"order-manager/feature/order/models"
)

// Reconciler reconciles a submitted set of order lines against the persisted
// state of one order inside a single transaction.
type Reconciler struct {
	db  *gorm.DB
	log *zap.Logger
}

// New creates a Reconciler on top of an open gorm connection.
func New(db *gorm.DB, log *zap.Logger) *Reconciler {
	return &Reconciler{db: db, log: log}
}

// Reconcile applies the submitted items to the order identified by orderNo.
// Deletions run first, then updates, then insertions, then header propagation.
// Any failure rolls the whole batch back. The only non-fatal condition is a
// line update whose field map carries no updatable field, which is logged and
// counted as skipped.
func (r *Reconciler) Reconcile(ctx context.Context, orderNo string, items []Item) (*Result, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, &ValidationError{Reason: "order number is required"}
	}

	toInsert, toUpdate, toDelete := partition(items)
	if dropped := len(items) - len(toInsert) - len(toUpdate) - len(toDelete); dropped > 0 {
		r.log.Warn("dropping deletion requests without line id",
			zap.String("order_no", orderNo),
			zap.Int("dropped", dropped))
	}

	res := &Result{}
	header := HeaderFromItems(items)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := &mutator{tx: tx}

		exists, err := m.orderExists(orderNo)
		if err != nil {
			return err
		}
		if !exists && len(toInsert) == 0 {
			return &ValidationError{Reason: "order " + orderNo + " does not exist and no new lines were submitted"}
		}

		if err := r.applyDeletions(m, orderNo, toDelete, res); err != nil {
			return err
		}
		if err := r.applyUpdates(m, orderNo, exists, toUpdate, res); err != nil {
			return err
		}
		for _, it := range toInsert {
			line := BuildLine(orderNo, header, it.Fields)
			if err := m.insertRow(line); err != nil {
				return err
			}
			res.Inserted++
		}

		if header != nil && (exists || res.Inserted > 0) {
			if _, err := m.propagateHeader(orderNo, header); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rows, err := (&mutator{tx: r.db.WithContext(ctx)}).selectAll(orderNo)
	if err != nil {
		return nil, err
	}
	res.Rows = rows
	return res, nil
}

// applyDeletions verifies every requested line id against the order before
// issuing a single delete statement for the whole set.
func (r *Reconciler) applyDeletions(m *mutator, orderNo string, toDelete []Item, res *Result) error {
	if len(toDelete) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(toDelete))
	ids := make([]int64, 0, len(toDelete))
	for _, it := range toDelete {
		if _, ok := seen[*it.ID]; ok {
			continue
		}
		seen[*it.ID] = struct{}{}
		ids = append(ids, *it.ID)
	}

	found, err := m.idsByOrder(ids, orderNo)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		missing := missingIDs(ids, found)
		return &NotFoundError{OrderNo: orderNo, IDs: missing}
	}

	affected, err := m.deleteByIDs(ids, orderNo)
	if err != nil {
		return err
	}
	if affected != int64(len(ids)) {
		return &ConflictError{OrderNo: orderNo}
	}
	res.Deleted = len(ids)
	return nil
}

// applyUpdates processes line updates in input order. Each line is verified
// to exist and to belong to the order before its update statement runs, and
// fields equal to the persisted values are dropped so a resubmission of the
// current state stays a no-op.
func (r *Reconciler) applyUpdates(m *mutator, orderNo string, exists bool, toUpdate []Item, res *Result) error {
	for _, it := range toUpdate {
		id := *it.ID

		var current *models.OrderLine
		if exists {
			row, err := m.rowByID(id)
			if err != nil {
				return err
			}
			if row == nil {
				return &NotFoundError{OrderNo: orderNo, IDs: []int64{id}}
			}
			if row.OrderNo != orderNo {
				return &NotFoundError{OrderNo: orderNo, IDs: []int64{id}, FoundOrderNo: row.OrderNo}
			}
			current = row
		}

		fields := FilterUpdatable(it.Fields)
		if len(fields) == 0 {
			r.log.Warn("skipping line update with no updatable field",
				zap.String("order_no", orderNo),
				zap.Int64("id", id))
			res.Skipped++
			continue
		}
		if current != nil {
			fields = diffFields(current, fields)
			if len(fields) == 0 {
				continue
			}
		}

		affected, err := m.updateRow(id, orderNo, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &ConflictError{OrderNo: orderNo, ID: id}
		}
		res.Updated++
	}
	return nil
}

func missingIDs(requested, found []int64) []int64 {
	have := make(map[int64]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	var missing []int64
	for _, id := range requested {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
