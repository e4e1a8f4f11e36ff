package order

// StructuralStateError reports a line-item-scoped operation invoked while no
// line item is open. Callers must open one with AddNewPosition first.
type StructuralStateError struct {
	Op string
}

func (e *StructuralStateError) Error() string {
	return "orderx: " + e.Op + " requires an open line item (call AddNewPosition first)"
}
