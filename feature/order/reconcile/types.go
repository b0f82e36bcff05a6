package reconcile

import (
	"order-manager/core/utils"
	"order-manager/feature/order/models"
)

// Item is one submitted line of a reconciliation request.
type Item struct {
	// ID is the persisted line identifier; nil marks a new line.
	ID *int64
	// Delete requests removal of the persisted line.
	Delete bool
	// Fields holds the submitted business fields by wire name.
	Fields map[string]any
}

// ItemFromMap parses one wire-format line map. The control keys "id" and
// "is_deleted" are lifted out; everything else stays a business field.
func ItemFromMap(m map[string]any) Item {
	it := Item{Fields: make(map[string]any, len(m))}
	for k, v := range m {
		switch k {
		case "id":
			if v == nil {
				continue
			}
			if id := utils.ToInt64(v); id > 0 {
				it.ID = &id
			}
		case "is_deleted":
			it.Delete = utils.ToBool(v)
		default:
			it.Fields[k] = v
		}
	}
	return it
}

// ItemsFromMaps parses a submitted line list.
func ItemsFromMaps(maps []map[string]any) []Item {
	items := make([]Item, 0, len(maps))
	for _, m := range maps {
		items = append(items, ItemFromMap(m))
	}
	return items
}

// Result is the outcome of a reconciliation: the full re-read line set,
// sorted by ascending id, plus operation counts.
type Result struct {
	Rows     []models.OrderLine `json:"lines"`
	Inserted int                `json:"inserted"`
	Updated  int                `json:"updated"`
	Deleted  int                `json:"deleted"`
	Skipped  int                `json:"skipped"`
}

// Plan summarizes how a submitted batch partitions, without touching storage.
type Plan struct {
	OrderNo  string  `json:"order_no"`
	ToInsert int     `json:"to_insert"`
	ToUpdate []int64 `json:"to_update"`
	ToDelete []int64 `json:"to_delete"`
	// Dropped counts deletion requests without a persisted id. Nothing is
	// stored for them, so there is nothing to delete.
	Dropped int `json:"dropped"`
}

// partition splits the submitted lines into the three disjoint groups.
// A line with a deletion flag but no id belongs to none of them.
func partition(items []Item) (toInsert, toUpdate, toDelete []Item) {
	for _, it := range items {
		switch {
		case it.ID == nil && !it.Delete:
			toInsert = append(toInsert, it)
		case it.ID != nil && !it.Delete:
			toUpdate = append(toUpdate, it)
		case it.ID != nil && it.Delete:
			toDelete = append(toDelete, it)
		}
	}
	return toInsert, toUpdate, toDelete
}

// BuildPlan partitions a batch for dry-run inspection.
func BuildPlan(orderNo string, items []Item) Plan {
	ins, upd, del := partition(items)

	plan := Plan{
		OrderNo:  orderNo,
		ToInsert: len(ins),
		ToUpdate: make([]int64, 0, len(upd)),
		ToDelete: make([]int64, 0, len(del)),
	}
	for _, it := range upd {
		plan.ToUpdate = append(plan.ToUpdate, *it.ID)
	}
	for _, it := range del {
		plan.ToDelete = append(plan.ToDelete, *it.ID)
	}
	for _, it := range items {
		if it.Delete && it.ID == nil {
			plan.Dropped++
		}
	}
	return plan
}
