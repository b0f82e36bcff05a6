package reconcile

import (
	"order-manager/core/utils"
	"order-manager/feature/order/models"

	"github.com/shopspring/decimal"
)

// StatusPending is the default status of a freshly created order.
const StatusPending = "pending"

// Kind describes how a field value is normalized.
type Kind int

const (
	// KindString normalizes to string.
	KindString Kind = iota
	// KindInt normalizes to int.
	KindInt
	// KindDecimal normalizes to a decimal, for money and tax fields.
	KindDecimal
)

// FieldSpec describes one recognized business field.
type FieldSpec struct {
	// Column is the database column name. Wire field names match columns.
	Column string
	// Kind selects the normalization applied to submitted values.
	Kind Kind
	// Updatable marks per-line fields that may change through a line update.
	Updatable bool
	// OrderLevel marks header fields replicated onto every line of an order.
	OrderLevel bool
}

// fieldSchema is the single declarative schema consulted by the insert,
// update, and header-propagation paths. Identity fields (id, order_no) are
// deliberately absent: they are never writable through submitted field maps.
var fieldSchema = map[string]FieldSpec{
	// Order-level fields.
	"customer_code":   {Column: "customer_code", Kind: KindString, OrderLevel: true},
	"customer_name":   {Column: "customer_name", Kind: KindString, OrderLevel: true},
	"status":          {Column: "status", Kind: KindString, OrderLevel: true},
	"subtotal_amount": {Column: "subtotal_amount", Kind: KindDecimal, OrderLevel: true},
	"tax_amount":      {Column: "tax_amount", Kind: KindDecimal, OrderLevel: true},
	"total_amount":    {Column: "total_amount", Kind: KindDecimal, OrderLevel: true},
	"order_remarks":   {Column: "order_remarks", Kind: KindString, OrderLevel: true},

	// Per-line fields.
	"item_code":     {Column: "item_code", Kind: KindString, Updatable: true},
	"item_name":     {Column: "item_name", Kind: KindString, Updatable: true},
	"unit":          {Column: "unit", Kind: KindString, Updatable: true},
	"quantity":      {Column: "quantity", Kind: KindInt, Updatable: true},
	"unit_price":    {Column: "unit_price", Kind: KindDecimal, Updatable: true},
	"amount":        {Column: "amount", Kind: KindDecimal, Updatable: true},
	"tax_rate":      {Column: "tax_rate", Kind: KindInt, Updatable: true},
	"delivery_date": {Column: "delivery_date", Kind: KindString, Updatable: true},
	"remarks":       {Column: "remarks", Kind: KindString, Updatable: true},
}

// Schema returns the declarative field schema.
func Schema() map[string]FieldSpec {
	return fieldSchema
}

// normalize converts a submitted value to the field's storage type.
func normalize(spec FieldSpec, v any) any {
	switch spec.Kind {
	case KindInt:
		return utils.ToInt(v)
	case KindDecimal:
		return utils.ToDecimal(v)
	default:
		return utils.ToString(v)
	}
}

// DefaultHeader returns the default order-level fields, keyed by column:
// status "pending", zero totals, empty strings.
func DefaultHeader() map[string]any {
	header := make(map[string]any)
	for _, spec := range fieldSchema {
		if !spec.OrderLevel {
			continue
		}
		switch spec.Kind {
		case KindDecimal:
			header[spec.Column] = decimal.Zero
		case KindInt:
			header[spec.Column] = 0
		default:
			header[spec.Column] = ""
		}
	}
	header["status"] = StatusPending
	return header
}

// priorityItem selects the line that sources the common order-level fields:
// the first non-deletion line with a persisted id, else the first
// non-deletion line of any kind. Returns nil when every line is a deletion.
func priorityItem(items []Item) *Item {
	var firstAlive *Item
	for i := range items {
		it := &items[i]
		if it.Delete {
			continue
		}
		if it.ID != nil {
			return it
		}
		if firstAlive == nil {
			firstAlive = it
		}
	}
	return firstAlive
}

// HeaderFromItems computes the common order-level fields for a batch by
// overlaying the priority line's recognized header fields onto the defaults.
// Returns nil when the batch has no priority line.
func HeaderFromItems(items []Item) map[string]any {
	p := priorityItem(items)
	if p == nil {
		return nil
	}
	header := DefaultHeader()
	for name, spec := range fieldSchema {
		if !spec.OrderLevel {
			continue
		}
		if v, ok := p.Fields[name]; ok {
			header[spec.Column] = normalize(spec, v)
		}
	}
	return header
}

// FilterUpdatable reduces a submitted field map to the updatable per-line
// fields, normalized and keyed by column. Unknown and order-level fields are
// dropped; an empty result means the line has nothing valid to change.
func FilterUpdatable(fields map[string]any) map[string]any {
	out := make(map[string]any)
	for name, v := range fields {
		spec, ok := fieldSchema[name]
		if !ok || !spec.Updatable {
			continue
		}
		out[spec.Column] = normalize(spec, v)
	}
	return out
}

// diffFields reduces a filtered (column-keyed, normalized) field map to the
// columns whose values actually differ from the current line. Issuing updates
// only for real changes keeps a resubmission of the current state a no-op and
// keeps a zero-rows-affected update an unambiguous race signal.
func diffFields(line *models.OrderLine, fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for col, v := range fields {
		if !valueEqual(columnValue(line, col), v) {
			out[col] = v
		}
	}
	return out
}

// valueEqual compares two normalized values, decimal-aware.
func valueEqual(a, b any) bool {
	da, aok := a.(decimal.Decimal)
	db, bok := b.(decimal.Decimal)
	if aok && bok {
		return da.Equal(db)
	}
	return a == b
}

// columnValue reads the current normalized value of one column.
func columnValue(line *models.OrderLine, column string) any {
	switch column {
	case "customer_code":
		return line.CustomerCode
	case "customer_name":
		return line.CustomerName
	case "status":
		return line.Status
	case "subtotal_amount":
		return line.SubtotalAmount
	case "tax_amount":
		return line.TaxAmount
	case "total_amount":
		return line.TotalAmount
	case "order_remarks":
		return line.OrderRemarks
	case "item_code":
		return line.ItemCode
	case "item_name":
		return line.ItemName
	case "unit":
		return line.Unit
	case "quantity":
		return line.Quantity
	case "unit_price":
		return line.UnitPrice
	case "amount":
		return line.Amount
	case "tax_rate":
		return line.TaxRate
	case "delivery_date":
		return line.DeliveryDate
	case "remarks":
		return line.Remarks
	default:
		return nil
	}
}

// BuildLine assembles a full line for insertion: defaults, then the computed
// common header, then the line's own per-line fields.
func BuildLine(orderNo string, header map[string]any, fields map[string]any) *models.OrderLine {
	line := &models.OrderLine{
		OrderNo: orderNo,
		Status:  StatusPending,
	}
	for col, v := range header {
		applyColumn(line, col, v)
	}
	for name, raw := range fields {
		spec, ok := fieldSchema[name]
		if !ok || !spec.Updatable {
			continue
		}
		applyColumn(line, spec.Column, normalize(spec, raw))
	}
	return line
}

// applyColumn sets one normalized value on the line struct.
func applyColumn(line *models.OrderLine, column string, v any) {
	switch column {
	case "customer_code":
		line.CustomerCode = utils.ToString(v)
	case "customer_name":
		line.CustomerName = utils.ToString(v)
	case "status":
		line.Status = utils.ToString(v)
	case "subtotal_amount":
		line.SubtotalAmount = utils.ToDecimal(v)
	case "tax_amount":
		line.TaxAmount = utils.ToDecimal(v)
	case "total_amount":
		line.TotalAmount = utils.ToDecimal(v)
	case "order_remarks":
		line.OrderRemarks = utils.ToString(v)
	case "item_code":
		line.ItemCode = utils.ToString(v)
	case "item_name":
		line.ItemName = utils.ToString(v)
	case "unit":
		line.Unit = utils.ToString(v)
	case "quantity":
		line.Quantity = utils.ToInt(v)
	case "unit_price":
		line.UnitPrice = utils.ToDecimal(v)
	case "amount":
		line.Amount = utils.ToDecimal(v)
	case "tax_rate":
		line.TaxRate = utils.ToInt(v)
	case "delivery_date":
		line.DeliveryDate = utils.ToString(v)
	case "remarks":
		line.Remarks = utils.ToString(v)
	}
}
