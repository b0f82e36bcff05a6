// Package models defines the persistence types of the stock feature.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is one sellable item of the item master, keyed by its code.
type StockItem struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code      string          `gorm:"column:code;size:40;uniqueIndex" json:"code"`
	Name      string          `gorm:"column:name;size:120" json:"name"`
	Unit      string          `gorm:"column:unit;size:20" json:"unit"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(14,2)" json:"unit_price"`
	TaxRate   int             `gorm:"column:tax_rate" json:"tax_rate"`
	Remarks   string          `gorm:"column:remarks;size:500" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for StockItem.
func (StockItem) TableName() string {
	return "stock_items"
}
