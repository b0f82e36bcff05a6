package stock

import (
	"context"
	"errors"
	"fmt"

	"order-manager/core/validate"
	"order-manager/feature/stock/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrItemNotFound is returned when no stock item carries the requested code.
var ErrItemNotFound = errors.New("stock item not found")

// ErrItemExists is returned when a create collides with an existing code.
var ErrItemExists = errors.New("stock item code already exists")

// ItemInput carries the writable fields of a stock item.
type ItemInput struct {
	Code      string          `json:"code" validate:"required,max=40"`
	Name      string          `json:"name" validate:"required,max=120"`
	Unit      string          `json:"unit" validate:"max=20"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   int             `json:"tax_rate" validate:"gte=0,lte=100"`
	Remarks   string          `json:"remarks" validate:"max=500"`
}

// Service handles item master operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new stock service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// ListItems returns every stock item, sorted by code.
func (s *Service) ListItems(ctx context.Context) ([]models.StockItem, error) {
	var items []models.StockItem
	if err := s.db.WithContext(ctx).Order("code ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing stock items: %w", err)
	}
	return items, nil
}

// GetItem returns one stock item by code.
func (s *Service) GetItem(ctx context.Context, code string) (*models.StockItem, error) {
	var item models.StockItem
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading stock item %s: %w", code, err)
	}
	return &item, nil
}

// CreateItem validates and stores a new stock item.
func (s *Service) CreateItem(ctx context.Context, input ItemInput) (*models.StockItem, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.StockItem{}).Where("code = ?", input.Code).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("checking stock item %s: %w", input.Code, err)
	}
	if count > 0 {
		return nil, ErrItemExists
	}

	item := input.toModel()
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("creating stock item %s: %w", input.Code, err)
	}
	return item, nil
}

// UpdateItem validates and overwrites an existing stock item. The code in the
// path wins over the code in the body.
func (s *Service) UpdateItem(ctx context.Context, code string, input ItemInput) (*models.StockItem, error) {
	input.Code = code
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.GetItem(ctx, code)
	if err != nil {
		return nil, err
	}

	item := input.toModel()
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, fmt.Errorf("updating stock item %s: %w", code, err)
	}
	return item, nil
}

// DeleteItem removes one stock item by code.
func (s *Service) DeleteItem(ctx context.Context, code string) error {
	result := s.db.WithContext(ctx).Where("code = ?", code).Delete(&models.StockItem{})
	if result.Error != nil {
		return fmt.Errorf("deleting stock item %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (in ItemInput) toModel() *models.StockItem {
	return &models.StockItem{
		Code:      in.Code,
		Name:      in.Name,
		Unit:      in.Unit,
		UnitPrice: in.UnitPrice,
		TaxRate:   in.TaxRate,
		Remarks:   in.Remarks,
	}
}
