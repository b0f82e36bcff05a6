package profile

import (
	"context"
	"errors"
	"fmt"

	"order-manager/core/validate"
	"order-manager/feature/profile/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrUnknownKind is returned for a kind outside admin, distributor, corporate.
var ErrUnknownKind = errors.New("unknown profile kind")

// ErrProfileNotFound is returned when a kind has no stored profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileInput carries the writable fields shared by all profile kinds.
type ProfileInput struct {
	Name           string `json:"name" validate:"required,max=120"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
	Phone          string `json:"phone" validate:"max=20"`
	Fax            string `json:"fax" validate:"max=20"`
	PostalCode     string `json:"postal_code" validate:"max=10"`
	Address        string `json:"address" validate:"max=255"`
	BankInfo       string `json:"bank_info" validate:"max=255"`
	ContactName    string `json:"contact_name" validate:"max=120"`
	RegistrationNo string `json:"registration_no" validate:"max=40"`
	Remarks        string `json:"remarks" validate:"max=500"`
}

// Service handles profile operations. Each kind is a singleton record in its
// own table, surfaced through the normalized Profile view.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new profile service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// GetProfile loads the stored profile of one kind.
func (s *Service) GetProfile(ctx context.Context, kind string) (*models.Profile, error) {
	if !models.IsValidKind(kind) {
		return nil, ErrUnknownKind
	}

	switch kind {
	case models.KindAdmin:
		var p models.AdminProfile
		return s.load(ctx, kind, &p, func() *models.Profile { return p.ToProfile() })
	case models.KindDistributor:
		var p models.DistributorProfile
		return s.load(ctx, kind, &p, func() *models.Profile { return p.ToProfile() })
	default:
		var p models.CorporateProfile
		return s.load(ctx, kind, &p, func() *models.Profile { return p.ToProfile() })
	}
}

// UpsertProfile validates and stores the profile of one kind, creating the
// singleton record on first write.
func (s *Service) UpsertProfile(ctx context.Context, kind string, input ProfileInput) (*models.Profile, error) {
	if !models.IsValidKind(kind) {
		return nil, ErrUnknownKind
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	in := &models.Profile{
		Kind:           kind,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Fax:            input.Fax,
		PostalCode:     input.PostalCode,
		Address:        input.Address,
		BankInfo:       input.BankInfo,
		ContactName:    input.ContactName,
		RegistrationNo: input.RegistrationNo,
		Remarks:        input.Remarks,
	}

	switch kind {
	case models.KindAdmin:
		var p models.AdminProfile
		return s.save(ctx, kind, &p, func() { p.FromProfile(in); p.ID = 1 }, func() *models.Profile { return p.ToProfile() })
	case models.KindDistributor:
		var p models.DistributorProfile
		return s.save(ctx, kind, &p, func() { p.FromProfile(in); p.ID = 1 }, func() *models.Profile { return p.ToProfile() })
	default:
		var p models.CorporateProfile
		return s.save(ctx, kind, &p, func() { p.FromProfile(in); p.ID = 1 }, func() *models.Profile { return p.ToProfile() })
	}
}

func (s *Service) load(ctx context.Context, kind string, dest any, view func() *models.Profile) (*models.Profile, error) {
	err := s.db.WithContext(ctx).First(dest, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s profile: %w", kind, err)
	}
	return view(), nil
}

func (s *Service) save(ctx context.Context, kind string, dest any, apply func(), view func() *models.Profile) (*models.Profile, error) {
	err := s.db.WithContext(ctx).First(dest, "id = ?", 1).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("loading %s profile: %w", kind, err)
	}

	apply()
	if err := s.db.WithContext(ctx).Save(dest).Error; err != nil {
		return nil, fmt.Errorf("saving %s profile: %w", kind, err)
	}
	return view(), nil
}
