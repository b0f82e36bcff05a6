package reconcile

// Row-level operations used by the reconciler, all scoped to one transaction.

import (
	"errors"

	"order-manager/feature/order/models"

	"gorm.io/gorm"
)

type mutator struct {
	tx *gorm.DB
}

// orderExists reports whether any line is persisted for the order.
func (m *mutator) orderExists(orderNo string) (bool, error) {
	var n int64
	err := m.tx.Model(&models.OrderLine{}).
		Where("order_no = ?", orderNo).
		Count(&n).Error
	if err != nil {
		return false, &StorageError{Op: "failed to look up order", Err: err}
	}
	return n > 0, nil
}

// idsByOrder returns which of the given ids belong to the order.
func (m *mutator) idsByOrder(ids []int64, orderNo string) ([]int64, error) {
	var found []int64
	err := m.tx.Model(&models.OrderLine{}).
		Where("id IN ? AND order_no = ?", ids, orderNo).
		Pluck("id", &found).Error
	if err != nil {
		return nil, &StorageError{Op: "failed to verify line ids", Err: err}
	}
	return found, nil
}

// rowByID fetches a single line by id regardless of order, nil when missing.
func (m *mutator) rowByID(id int64) (*models.OrderLine, error) {
	var line models.OrderLine
	err := m.tx.First(&line, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "failed to fetch line", Err: err}
	}
	return &line, nil
}

// deleteByIDs removes the given lines in one statement.
func (m *mutator) deleteByIDs(ids []int64, orderNo string) (int64, error) {
	result := m.tx.
		Where("id IN ? AND order_no = ?", ids, orderNo).
		Delete(&models.OrderLine{})
	if result.Error != nil {
		return 0, &StorageError{Op: "failed to delete lines", Err: result.Error}
	}
	return result.RowsAffected, nil
}

// updateRow applies a filtered field map to one line, scoped to id AND
// order_no even after verification.
func (m *mutator) updateRow(id int64, orderNo string, fields map[string]any) (int64, error) {
	result := m.tx.Model(&models.OrderLine{}).
		Where("id = ? AND order_no = ?", id, orderNo).
		Updates(fields)
	if result.Error != nil {
		return 0, &StorageError{Op: "failed to update line", Err: result.Error}
	}
	return result.RowsAffected, nil
}

// insertRow persists a new line and backfills its generated id.
func (m *mutator) insertRow(line *models.OrderLine) error {
	if err := m.tx.Create(line).Error; err != nil {
		return &StorageError{Op: "failed to insert line", Err: err}
	}
	return nil
}

// propagateHeader writes the common order-level fields to every line of the
// order, keeping the denormalized header consistent.
func (m *mutator) propagateHeader(orderNo string, header map[string]any) (int64, error) {
	result := m.tx.Model(&models.OrderLine{}).
		Where("order_no = ?", orderNo).
		Updates(header)
	if result.Error != nil {
		return 0, &StorageError{Op: "failed to propagate order header", Err: result.Error}
	}
	return result.RowsAffected, nil
}

// selectAll returns every line of the order, ordered by ascending id.
func (m *mutator) selectAll(orderNo string) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	err := m.tx.
		Where("order_no = ?", orderNo).
		Order("id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, &StorageError{Op: "failed to read order lines", Err: err}
	}
	return lines, nil
}
