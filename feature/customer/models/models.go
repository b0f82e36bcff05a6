// Package models defines the persistence types of the customer feature.
package models

import "time"

// Customer is one customer master record, keyed by its external code.
type Customer struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code       string `gorm:"column:code;size:40;uniqueIndex" json:"code"`
	Name       string `gorm:"column:name;size:120" json:"name"`
	Kana       string `gorm:"column:kana;size:120" json:"kana"`
	PostalCode string `gorm:"column:postal_code;size:10" json:"postal_code"`
	Address    string `gorm:"column:address;size:255" json:"address"`
	Phone      string `gorm:"column:phone;size:20" json:"phone"`
	Fax        string `gorm:"column:fax;size:20" json:"fax"`
	Email      string `gorm:"column:email;size:255" json:"email"`
	Remarks    string `gorm:"column:remarks;size:500" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for Customer.
func (Customer) TableName() string {
	return "customers"
}
