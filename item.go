package simbase

import (
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/utils"
)

// --- The item capability ---------------------------------------------------

// Item is the capability every value stored into a container has to provide.
// Containers never look inside an item, they only call these two methods.
//
// Compare returns -1, 0 or +1 and has to be a strict total order. A result of 0
// signals equality and has to agree with Equals. Values which cannot be totally
// ordered (think of NaN) must not be used as keys.
type Item interface {
	Equals(other Item) bool
	Compare(other Item) int
}

// Cloner is an optional capability for items which are able to create an
// independent copy of themselves.
type Cloner interface {
	Clone() Item
}

// Releaser is an optional capability for items which hold resources. A container
// calls Release exactly once, at the moment it destroys an item it owns.
type Releaser interface {
	Release()
}

// Clone returns a copy of item, if item is a Cloner. Otherwise it returns nil and
// false.
func Clone(item Item) (Item, bool) {
	if c, ok := item.(Cloner); ok {
		return c.Clone(), true
	}
	return nil, false
}

// Release releases item, if item is a Releaser. It is a no-op otherwise.
func Release(item Item) {
	if r, ok := item.(Releaser); ok {
		r.Release()
	}
}

// Comparator compares two items and is usable wherever a gods comparator is
// expected, e.g.
//
//    m := treemap.NewWith(simbase.Comparator)
//
// Both arguments must be Items.
func Comparator(a, b interface{}) int {
	return a.(Item).Compare(b.(Item))
}

var _ utils.Comparator = Comparator

// --- Stock items -----------------------------------------------------------

// Stock items of different kinds are ordered by kind first (Int < String), then
// by value. Items of foreign types are placed behind all stock items.
const (
	intKind = iota + 1
	stringKind
	foreignKind
)

func kindOf(item Item) int {
	switch item.(type) {
	case Int:
		return intKind
	case String:
		return stringKind
	}
	return foreignKind
}

func sign(a, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Int is an integer item.
type Int int64

// Equals is part of interface Item.
func (i Int) Equals(other Item) bool {
	o, ok := other.(Int)
	return ok && o == i
}

// Compare is part of interface Item.
func (i Int) Compare(other Item) int {
	o, ok := other.(Int)
	if !ok {
		return sign(intKind, kindOf(other))
	}
	if i < o {
		return -1
	} else if i > o {
		return 1
	}
	return 0
}

// Clone is part of interface Cloner.
func (i Int) Clone() Item {
	return i
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// String is a string item.
type String string

// Equals is part of interface Item.
func (s String) Equals(other Item) bool {
	o, ok := other.(String)
	return ok && o == s
}

// Compare is part of interface Item.
func (s String) Compare(other Item) int {
	o, ok := other.(String)
	if !ok {
		return sign(stringKind, kindOf(other))
	}
	if s < o {
		return -1
	} else if s > o {
		return 1
	}
	return 0
}

// Clone is part of interface Cloner.
func (s String) Clone() Item {
	return s
}

func (s String) String() string {
	return string(s)
}

// ItemString is a debug helper returning a printable form of an item.
func ItemString(item Item) string {
	if item == nil {
		return "<nil>"
	}
	if s, ok := item.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", item)
}
