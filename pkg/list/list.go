// Package list implements a type-safe intrusive singly-linked list.
//
// Unlike container/list, the list does not allocate wrapper nodes: the
// link field lives inside the record itself, as an embedded Item. A record
// may carry several Item fields and so participate in several lists at
// once, and the type system keeps those lists apart even when the fields
// have the same element type.
//
// Each Item field is declared with its own tag type, a distinct (normally
// empty) named type that exists only at compile time:
//
//	type vipTag struct{}
//	type hipTag struct{}
//
//	type foo struct {
//		something int
//		vip       list.Item[foo, vipTag]
//		hip       list.Item[foo, hipTag]
//	}
//
// A Head is bound to one tag and accepts only items of that tag; inserting
// a.hip into a Head[foo, vipTag] is a compile error, not a runtime check:
//
//	var vipList list.Head[foo, vipTag]
//	vipList.Insert(&a.vip) // compiles
//	vipList.Insert(&a.hip) // does not
//
// Traversal yields *Item pointers; an Owner created with At maps each of
// them back to the enclosing record in O(1), with no back-pointer stored
// in the item:
//
//	var vipOwner = list.At[foo, vipTag](unsafe.Offsetof(foo{}.vip))
//
//	for q := range vipList.Items() {
//		vipOwner.From(q).something++
//	}
//
// The list never allocates and never synchronizes. A Head and every item
// reachable from it form one logical aggregate: callers that share them
// across goroutines must supply their own mutual exclusion. Records stay
// owned by whoever created them; a record must be unreachable from every
// Head before it is destroyed, or later traversal is undefined.
package list

import "iter"

// Item is the link field embedded in a record that participates in a list.
// Tag identifies the declaration site: give every Item field its own named
// tag type, so that no two fields are interchangeable, not even two fields
// of the same element type. The zero value is an unlinked item.
type Item[T any, Tag any] struct {
	next *Item[T, Tag]
}

// Next returns the successor item, or nil at the end of the chain.
func (it *Item[T, Tag]) Next() *Item[T, Tag] {
	return it.next
}

// Head references the first item of a chain of same-tag items. It does not
// own the records it links. The zero value is an empty list ready to use.
type Head[T any, Tag any] struct {
	first *Item[T, Tag]
}

// Insert pushes it onto the front of the list. O(1), no allocation.
//
// The item must not already be linked into any list: re-inserting a linked
// item silently corrupts the chain. Membership tracking is the caller's.
func (h *Head[T, Tag]) Insert(it *Item[T, Tag]) {
	it.next = h.first
	h.first = it
}

// Front returns the first item, or nil when the list is empty.
func (h *Head[T, Tag]) Front() *Item[T, Tag] {
	return h.first
}

// Empty reports whether the list has no items.
func (h *Head[T, Tag]) Empty() bool {
	return h.first == nil
}

// Items returns an iterator over the chain, front to back. Every call
// starts again from the current front, so it reflects inserts made between
// traversals; mutating the list during a traversal is undefined.
func (h *Head[T, Tag]) Items() iter.Seq[*Item[T, Tag]] {
	return func(yield func(*Item[T, Tag]) bool) {
		for q := h.first; q != nil; q = q.next {
			if !yield(q) {
				return
			}
		}
	}
}
