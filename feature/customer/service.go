package customer

import (
	"context"
	"errors"
	"fmt"

	"order-manager/core/validate"
	"order-manager/feature/customer/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrCustomerNotFound is returned when no customer carries the requested code.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrCustomerExists is returned when a create collides with an existing code.
var ErrCustomerExists = errors.New("customer code already exists")

// CustomerInput carries the writable fields of a customer record.
type CustomerInput struct {
	Code       string `json:"code" validate:"required,max=40"`
	Name       string `json:"name" validate:"required,max=120"`
	Kana       string `json:"kana" validate:"max=120"`
	PostalCode string `json:"postal_code" validate:"max=10"`
	Address    string `json:"address" validate:"max=255"`
	Phone      string `json:"phone" validate:"max=20"`
	Fax        string `json:"fax" validate:"max=20"`
	Email      string `json:"email" validate:"omitempty,email,max=255"`
	Remarks    string `json:"remarks" validate:"max=500"`
}

// Service handles customer master operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new customer service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// ListCustomers returns every customer, sorted by code.
func (s *Service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Order("code ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return customers, nil
}

// GetCustomer returns one customer by code.
func (s *Service) GetCustomer(ctx context.Context, code string) (*models.Customer, error) {
	var c models.Customer
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading customer %s: %w", code, err)
	}
	return &c, nil
}

// CreateCustomer validates and stores a new customer record.
func (s *Service) CreateCustomer(ctx context.Context, input CustomerInput) (*models.Customer, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Customer{}).Where("code = ?", input.Code).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("checking customer %s: %w", input.Code, err)
	}
	if count > 0 {
		return nil, ErrCustomerExists
	}

	c := input.toModel()
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, fmt.Errorf("creating customer %s: %w", input.Code, err)
	}
	return c, nil
}

// UpdateCustomer validates and overwrites an existing customer record. The
// code in the path wins over the code in the body.
func (s *Service) UpdateCustomer(ctx context.Context, code string, input CustomerInput) (*models.Customer, error) {
	input.Code = code
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.GetCustomer(ctx, code)
	if err != nil {
		return nil, err
	}

	c := input.toModel()
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, fmt.Errorf("updating customer %s: %w", code, err)
	}
	return c, nil
}

// DeleteCustomer removes one customer by code.
func (s *Service) DeleteCustomer(ctx context.Context, code string) error {
	result := s.db.WithContext(ctx).Where("code = ?", code).Delete(&models.Customer{})
	if result.Error != nil {
		return fmt.Errorf("deleting customer %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (in CustomerInput) toModel() *models.Customer {
	return &models.Customer{
		Code:       in.Code,
		Name:       in.Name,
		Kana:       in.Kana,
		PostalCode: in.PostalCode,
		Address:    in.Address,
		Phone:      in.Phone,
		Fax:        in.Fax,
		Email:      in.Email,
		Remarks:    in.Remarks,
	}
}
