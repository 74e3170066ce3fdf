/*
Package ordlist implements a doubly linked list of items with a single traversal
cursor.

A list owns its entries: items appended with Append are released (see
simbase.Releaser) when they are removed from the list. Traversal is done through
the list's one and only Cursor:

    l := ordlist.New()
    l.Append(simbase.Int(1))
    l.Append(simbase.Int(2))
    for item := l.First(); item != nil; item = l.Next() {
        …
    }

Removing the current entry during traversal is fine: the following call to Next
moves on to the successor of the removed entry.

Lists are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordlist

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/simbase"
)

// tracer traces with key 'simbase.ordlist'.
func tracer() tracing.Trace {
	return tracing.Select("simbase.ordlist")
}

// node is a list entry. Links are navigational only, the chain is owned by
// the list.
type node struct {
	item     simbase.Item
	next     *node
	prev     *node
	borrowed bool // item not owned by the list
}

// List is a doubly linked list of items. The zero value is an empty list ready
// to use.
type List struct {
	head   *node
	tail   *node
	count  int
	cursor Cursor
}

// New creates an empty list.
func New() *List {
	return &List{}
}

// Len returns the number of entries in the list.
func (l *List) Len() int {
	return l.count
}

// Cursor returns the traversal cursor of l. There is exactly one cursor per list,
// every call returns the same instance.
func (l *List) Cursor() *Cursor {
	l.cursor.list = l
	return &l.cursor
}

// Append adds item at the end of the list. The list takes ownership of item.
// Appending nil is refused and returns false, leaving the list unchanged.
func (l *List) Append(item simbase.Item) bool {
	return l.append(item, false)
}

// AppendBorrowed adds item at the end of the list without taking ownership.
// The list will never release a borrowed item.
func (l *List) AppendBorrowed(item simbase.Item) bool {
	return l.append(item, true)
}

func (l *List) append(item simbase.Item, borrowed bool) bool {
	if item == nil {
		tracer().Errorf("cannot append nil item to list")
		return false
	}
	n := &node{item: item, borrowed: borrowed}
	if l.head == nil {
		l.head = n
	} else {
		l.tail.next = n
		n.prev = l.tail
	}
	l.tail = n
	l.count++
	l.Cursor().appended()
	return true
}

// RemoveCurrent removes the entry at the cursor position and releases its item.
// If no traversal is active, RemoveCurrent returns false and does nothing.
func (l *List) RemoveCurrent() bool {
	return l.Cursor().Remove()
}

// RemoveAll removes every entry and leaves the cursor unset.
func (l *List) RemoveAll() {
	c := l.Cursor()
	for l.head != nil {
		c.current = l.head
		c.Remove()
	}
	c.reset()
}

// First positions the cursor at the first entry and returns its item, or nil if
// the list is empty.
func (l *List) First() simbase.Item {
	return l.Cursor().First()
}

// Next advances the cursor and returns the item there. Next returns nil past the
// end of the list; it does not wrap around.
func (l *List) Next() simbase.Item {
	return l.Cursor().Next()
}

// Previous moves the cursor back one entry. If no traversal is active, Previous
// returns nil.
func (l *List) Previous() simbase.Item {
	return l.Cursor().Previous()
}

// Nth positions the cursor at entry n (counting from 0) and returns its item,
// or nil if n is out of range.
func (l *List) Nth(n int) simbase.Item {
	return l.Cursor().Nth(n)
}

// Find returns the first item in the list which equals item, or nil.
func (l *List) Find(item simbase.Item) simbase.Item {
	return l.Cursor().Find(item)
}

// Values returns the items of the list in order. It does not touch the cursor.
func (l *List) Values() []simbase.Item {
	values := make([]simbase.Item, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.item)
	}
	return values
}

// Dump is a debugging helper
func (l *List) Dump() {
	tracer().Debugf("--- list (%d entries) ---", l.count)
	i := 0
	for n := l.head; n != nil; n = n.next {
		mark := " "
		if n == l.cursor.current {
			mark = ">"
		}
		tracer().Debugf("%s[%3d] %s", mark, i, simbase.ItemString(n.item))
		i++
	}
	tracer().Debugf("-------------------------")
}
