package ecs

import "fmt"

// EntityRef identifies a value stored in an Arena. It stays valid only
// while the slot it names still holds the same generation; once the value
// is removed the ref never resolves again, even after the slot is reused.
type EntityRef struct {
	Slot       int
	Generation uint32
}

// String renders the ref for logs.
func (r EntityRef) String() string {
	return fmt.Sprintf("EntityRef(%d:%d)", r.Slot, r.Generation)
}
