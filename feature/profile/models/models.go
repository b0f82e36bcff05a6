// Package models defines the per-kind profile tables and their normalized view.
package models

import "time"

// Profile is the normalized view served over HTTP, independent of which
// profile table backs it.
type Profile struct {
	Kind           string    `json:"kind"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Fax            string    `json:"fax,omitempty"`
	PostalCode     string    `json:"postal_code,omitempty"`
	Address        string    `json:"address,omitempty"`
	BankInfo       string    `json:"bank_info,omitempty"`
	ContactName    string    `json:"contact_name,omitempty"`
	RegistrationNo string    `json:"registration_no,omitempty"`
	Remarks        string    `json:"remarks,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AdminProfile is the backoffice operator profile.
type AdminProfile struct {
	ID      int64  `gorm:"column:id;primaryKey" json:"id"`
	Name       string `gorm:"column:name;size:120" json:"name"`
	Email      string `gorm:"column:email;size:255" json:"email"`
	Phone      string `gorm:"column:phone;size:20" json:"phone"`
	Fax        string `gorm:"column:fax;size:20" json:"fax"`
	PostalCode string `gorm:"column:postal_code;size:10" json:"postal_code"`
	Address    string `gorm:"column:address;size:255" json:"address"`
	Remarks    string `gorm:"column:remarks;size:500" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for AdminProfile.
func (AdminProfile) TableName() string {
	return "admin_profiles"
}

// ToProfile converts the record into the normalized view.
func (p *AdminProfile) ToProfile() *Profile {
	return &Profile{
		Kind:       KindAdmin,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Fax:        p.Fax,
		PostalCode: p.PostalCode,
		Address:    p.Address,
		Remarks:    p.Remarks,
		UpdatedAt:  p.UpdatedAt,
	}
}

// FromProfile overwrites the record's fields from the normalized view.
func (p *AdminProfile) FromProfile(in *Profile) {
	p.Name = in.Name
	p.Email = in.Email
	p.Phone = in.Phone
	p.Fax = in.Fax
	p.PostalCode = in.PostalCode
	p.Address = in.Address
	p.Remarks = in.Remarks
}

// DistributorProfile is the distributor partner profile.
type DistributorProfile struct {
	ID          int64  `gorm:"column:id;primaryKey" json:"id"`
	CompanyName string `gorm:"column:company_name;size:120" json:"company_name"`
	ContactName string `gorm:"column:contact_name;size:120" json:"contact_name"`
	Email       string `gorm:"column:email;size:255" json:"email"`
	Phone       string `gorm:"column:phone;size:20" json:"phone"`
	Fax         string `gorm:"column:fax;size:20" json:"fax"`
	PostalCode  string `gorm:"column:postal_code;size:10" json:"postal_code"`
	Address     string `gorm:"column:address;size:255" json:"address"`
	BankInfo    string `gorm:"column:bank_info;size:255" json:"bank_info"`
	Remarks     string `gorm:"column:remarks;size:500" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for DistributorProfile.
func (DistributorProfile) TableName() string {
	return "distributor_profiles"
}

// ToProfile converts the record into the normalized view.
func (p *DistributorProfile) ToProfile() *Profile {
	return &Profile{
		Kind:        KindDistributor,
		Name:        p.CompanyName,
		ContactName: p.ContactName,
		Email:       p.Email,
		Phone:       p.Phone,
		Fax:         p.Fax,
		PostalCode:  p.PostalCode,
		Address:     p.Address,
		BankInfo:    p.BankInfo,
		Remarks:     p.Remarks,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromProfile overwrites the record's fields from the normalized view.
func (p *DistributorProfile) FromProfile(in *Profile) {
	p.CompanyName = in.Name
	p.ContactName = in.ContactName
	p.Email = in.Email
	p.Phone = in.Phone
	p.Fax = in.Fax
	p.PostalCode = in.PostalCode
	p.Address = in.Address
	p.BankInfo = in.BankInfo
	p.Remarks = in.Remarks
}

// CorporateProfile is the corporate account profile.
type CorporateProfile struct {
	ID             int64  `gorm:"column:id;primaryKey" json:"id"`
	CorporateName  string `gorm:"column:corporate_name;size:120" json:"corporate_name"`
	RegistrationNo string `gorm:"column:registration_no;size:40" json:"registration_no"`
	Email          string `gorm:"column:email;size:255" json:"email"`
	Phone          string `gorm:"column:phone;size:20" json:"phone"`
	Fax            string `gorm:"column:fax;size:20" json:"fax"`
	PostalCode     string `gorm:"column:postal_code;size:10" json:"postal_code"`
	BillingAddress string `gorm:"column:billing_address;size:255" json:"billing_address"`
	BankInfo       string `gorm:"column:bank_info;size:255" json:"bank_info"`
	Remarks        string `gorm:"column:remarks;size:500" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for CorporateProfile.
func (CorporateProfile) TableName() string {
	return "corporate_profiles"
}

// ToProfile converts the record into the normalized view.
func (p *CorporateProfile) ToProfile() *Profile {
	return &Profile{
		Kind:           KindCorporate,
		Name:           p.CorporateName,
		RegistrationNo: p.RegistrationNo,
		Email:          p.Email,
		Phone:          p.Phone,
		Fax:            p.Fax,
		PostalCode:     p.PostalCode,
		Address:        p.BillingAddress,
		BankInfo:       p.BankInfo,
		Remarks:        p.Remarks,
		UpdatedAt:      p.UpdatedAt,
	}
}

// FromProfile overwrites the record's fields from the normalized view.
func (p *CorporateProfile) FromProfile(in *Profile) {
	p.CorporateName = in.Name
	p.RegistrationNo = in.RegistrationNo
	p.Email = in.Email
	p.Phone = in.Phone
	p.Fax = in.Fax
	p.PostalCode = in.PostalCode
	p.BillingAddress = in.Address
	p.BankInfo = in.BankInfo
	p.Remarks = in.Remarks
}

// Profile kinds.
const (
	KindAdmin       = "admin"
	KindDistributor = "distributor"
	KindCorporate   = "corporate"
)

// Kinds lists every valid profile kind.
func Kinds() []string {
	return []string{KindAdmin, KindDistributor, KindCorporate}
}

// IsValidKind reports whether kind names a known profile table.
func IsValidKind(kind string) bool {
	switch kind {
	case KindAdmin, KindDistributor, KindCorporate:
		return true
	}
	return false
}
