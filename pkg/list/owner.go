package list

import (
	"fmt"
	"unsafe"
)

// Owner recovers the record that encloses an Item, from the item's address
// alone. It is a pure coordinate transform: the field's byte offset within
// the record is captured once, at At, and applied by pointer subtraction on
// every From call. No state is stored in the item.
//
// Create one Owner per (record type, field) pair. Two fields of the same
// element type sit at different offsets and therefore need different
// Owners; their distinct tags keep them from being mixed up.
type Owner[T any, Tag any] struct {
	offset uintptr
}

// At returns the Owner for the Item field at byte offset off within T.
// Pass the offset of the field the Tag was declared for:
//
//	var vipOwner = list.At[foo, vipTag](unsafe.Offsetof(foo{}.vip))
//
// At panics if off cannot possibly address an Item inside a T. That is the
// only validation recovery ever gets: From trusts the offset entirely.
func At[T any, Tag any](off uintptr) Owner[T, Tag] {
	var rec T
	var it Item[T, Tag]
	if unsafe.Sizeof(it) > unsafe.Sizeof(rec) || off > unsafe.Sizeof(rec)-unsafe.Sizeof(it) {
		panic(fmt.Sprintf("list: offset %d is not a field offset inside a %d-byte record", off, unsafe.Sizeof(rec)))
	}
	return Owner[T, Tag]{offset: off}
}

// From returns the record enclosing it.
//
// Precondition: it must be the address of the exact field this Owner was
// created for, inside a live T. Any other address (a free-standing Item
// not embedded in a T, for instance) makes the result garbage. From
// cannot detect misuse: the item stores no tag or back-pointer to check
// against. Callers own this invariant.
func (o Owner[T, Tag]) From(it *Item[T, Tag]) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(it), -int(o.offset)))
}
