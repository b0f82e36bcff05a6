// Package models defines the persistence and response types of the order feature.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is one line of an order. There is no separate order header table:
// the order-level fields (customer identity, status, totals, order remarks)
// are replicated onto every line and kept consistent by the reconciler.
type OrderLine struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderNo string `gorm:"column:order_no;size:40;index" json:"order_no"`

	// Order-level fields, identical on every line of one order.
	CustomerCode   string          `gorm:"column:customer_code;size:40" json:"customer_code"`
	CustomerName   string          `gorm:"column:customer_name;size:120" json:"customer_name"`
	Status         string          `gorm:"column:status;size:20" json:"status"`
	SubtotalAmount decimal.Decimal `gorm:"column:subtotal_amount;type:decimal(14,2)" json:"subtotal_amount"`
	TaxAmount      decimal.Decimal `gorm:"column:tax_amount;type:decimal(14,2)" json:"tax_amount"`
	TotalAmount    decimal.Decimal `gorm:"column:total_amount;type:decimal(14,2)" json:"total_amount"`
	OrderRemarks   string          `gorm:"column:order_remarks;size:500" json:"order_remarks"`

	// Per-line fields.
	ItemCode     string          `gorm:"column:item_code;size:40" json:"item_code"`
	ItemName     string          `gorm:"column:item_name;size:120" json:"item_name"`
	Unit         string          `gorm:"column:unit;size:20" json:"unit"`
	Quantity     int             `gorm:"column:quantity" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"column:unit_price;type:decimal(14,2)" json:"unit_price"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(14,2)" json:"amount"`
	TaxRate      int             `gorm:"column:tax_rate" json:"tax_rate"`
	DeliveryDate string          `gorm:"column:delivery_date;size:10" json:"delivery_date"`
	Remarks      string          `gorm:"column:remarks;size:500" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for OrderLine.
func (OrderLine) TableName() string {
	return "order_lines"
}

// OrderSummary is one row of the order listing, aggregated per order number.
type OrderSummary struct {
	OrderNo      string          `json:"order_no"`
	CustomerCode string          `json:"customer_code"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	LineCount    int             `json:"line_count"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
