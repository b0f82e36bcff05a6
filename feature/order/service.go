package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"order-manager/core/archive"
	"order-manager/feature/order/models"
	"order-manager/feature/order/reconcile"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when no line exists for the requested order.
var ErrOrderNotFound = errors.New("order not found")

// ErrSnapshotsDisabled is returned when the snapshot archive is not configured.
var ErrSnapshotsDisabled = errors.New("snapshot archive is disabled")

// Snapshot is the archived JSON document written after a reconciliation.
type Snapshot struct {
	OrderNo string             `json:"order_no"`
	SavedAt time.Time          `json:"saved_at"`
	Lines   []models.OrderLine `json:"lines"`
}

// Service handles order operations.
type Service struct {
	db         *gorm.DB
	logger     *zap.Logger
	reconciler *reconcile.Reconciler
	client     archive.Client
	bucket     string
}

// NewService creates a new order service. The archive client may be nil, in
// which case snapshots are disabled.
func NewService(db *gorm.DB, logger *zap.Logger, client archive.Client, bucket string) *Service {
	return &Service{
		db:         db,
		logger:     logger,
		reconciler: reconcile.New(db, logger),
		client:     client,
		bucket:     bucket,
	}
}

// ListOrders returns one summary per order. Order-level fields are identical
// on every line of an order, so the first line of each order carries the
// whole header.
func (s *Service) ListOrders(ctx context.Context) ([]models.OrderSummary, error) {
	db := s.db.WithContext(ctx)

	firstIDs := db.Model(&models.OrderLine{}).Select("MIN(id)").Group("order_no")
	var heads []models.OrderLine
	if err := db.Where("id IN (?)", firstIDs).Order("order_no ASC").Find(&heads).Error; err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	type lineCount struct {
		OrderNo   string
		LineCount int
	}
	var counts []lineCount
	err := db.Model(&models.OrderLine{}).
		Select("order_no, COUNT(*) AS line_count").
		Group("order_no").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("counting order lines: %w", err)
	}
	countByOrder := make(map[string]int, len(counts))
	for _, c := range counts {
		countByOrder[c.OrderNo] = c.LineCount
	}

	summaries := make([]models.OrderSummary, 0, len(heads))
	for _, head := range heads {
		summaries = append(summaries, models.OrderSummary{
			OrderNo:      head.OrderNo,
			CustomerCode: head.CustomerCode,
			CustomerName: head.CustomerName,
			Status:       head.Status,
			TotalAmount:  head.TotalAmount,
			LineCount:    countByOrder[head.OrderNo],
			UpdatedAt:    head.UpdatedAt,
		})
	}
	return summaries, nil
}

// GetOrder returns all lines of one order, sorted by ascending id.
func (s *Service) GetOrder(ctx context.Context, orderNo string) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	err := s.db.WithContext(ctx).
		Where("order_no = ?", orderNo).
		Order("id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("loading order %s: %w", orderNo, err)
	}
	if len(lines) == 0 {
		return nil, ErrOrderNotFound
	}
	return lines, nil
}

// Reconcile applies a submitted line set to one order and, on success,
// archives a snapshot of the resulting state. Snapshot failures are logged
// but never fail the reconciliation, which has already committed.
func (s *Service) Reconcile(ctx context.Context, orderNo string, items []reconcile.Item) (*reconcile.Result, error) {
	res, err := s.reconciler.Reconcile(ctx, orderNo, items)
	if err != nil {
		return nil, err
	}

	if s.client != nil {
		if err := s.archiveSnapshot(ctx, orderNo, res.Rows); err != nil {
			s.logger.Warn("Failed to archive order snapshot",
				zap.String("order_no", orderNo),
				zap.Error(err))
		}
	}
	return res, nil
}

// DeleteOrder removes every line of one order and its archived snapshot.
func (s *Service) DeleteOrder(ctx context.Context, orderNo string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("order_no = ?", orderNo).
		Delete(&models.OrderLine{})
	if result.Error != nil {
		return 0, fmt.Errorf("deleting order %s: %w", orderNo, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrOrderNotFound
	}

	if s.client != nil {
		if err := s.client.RemoveObject(ctx, s.bucket, snapshotObjectName(orderNo), minio.RemoveObjectOptions{}); err != nil {
			s.logger.Warn("Failed to remove order snapshot",
				zap.String("order_no", orderNo),
				zap.Error(err))
		}
	}
	return result.RowsAffected, nil
}

// GetSnapshot loads the archived snapshot of one order.
func (s *Service) GetSnapshot(ctx context.Context, orderNo string) (*Snapshot, error) {
	if s.client == nil {
		return nil, ErrSnapshotsDisabled
	}

	obj, err := s.client.GetObject(ctx, s.bucket, snapshotObjectName(orderNo), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("loading snapshot for %s: %w", orderNo, err)
	}
	defer obj.Close()

	var snap Snapshot
	if err := json.NewDecoder(obj).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot for %s: %w", orderNo, err)
	}
	return &snap, nil
}

func (s *Service) archiveSnapshot(ctx context.Context, orderNo string, lines []models.OrderLine) error {
	snap := Snapshot{
		OrderNo: orderNo,
		SavedAt: time.Now().UTC(),
		Lines:   lines,
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, snapshotObjectName(orderNo),
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	return err
}

func snapshotObjectName(orderNo string) string {
	return "orders/" + orderNo + ".json"
}
