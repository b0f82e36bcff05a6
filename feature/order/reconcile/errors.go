package reconcile

import "fmt"

// ValidationError reports invalid input detected before any mutation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports line ids that do not exist for the requested order.
// When FoundOrderNo is set, the id exists but belongs to another order.
type NotFoundError struct {
	OrderNo      string
	IDs          []int64
	FoundOrderNo string
}

func (e *NotFoundError) Error() string {
	if e.FoundOrderNo != "" {
		return fmt.Sprintf("line %d belongs to order %q, not %q", e.IDs[0], e.FoundOrderNo, e.OrderNo)
	}
	return fmt.Sprintf("order %q has no lines with ids %v", e.OrderNo, e.IDs)
}

// ConflictError reports an update that affected no rows despite passing
// verification, i.e. a concurrent change between verify and update.
type ConflictError struct {
	OrderNo string
	ID      int64
}

func (e *ConflictError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("deletion in order %q affected fewer rows than verified", e.OrderNo)
	}
	return fmt.Sprintf("update of line %d in order %q affected no rows", e.ID, e.OrderNo)
}

// StorageError wraps an underlying database failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
