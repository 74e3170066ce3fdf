package ordmap

import (
	"github.com/npillmayer/schuko/gconf"

	"github.com/npillmayer/simbase"
	"github.com/npillmayer/simbase/container/ordlist"
)

// Map is an ordered map of items. The zero value is an empty map ready to use.
type Map struct {
	root   *node
	count  int
	verify bool // check invariants after every mutation
}

// New creates an empty map.
//
// New reads configuration key "verify-tree-invariants".
func New() *Map {
	return &Map{
		verify: gconf.GetBool("verify-tree-invariants"),
	}
}

// Len returns the number of entries in m.
func (m *Map) Len() int {
	return m.count
}

// Add inserts an entry for key. If an entry with an equal key is present, Add
// returns false and does not take ownership of key or value. Otherwise the map
// takes ownership of both. Nil keys or values are refused.
func (m *Map) Add(key, value simbase.Item) bool {
	if key == nil || value == nil {
		tracer().Errorf("ordmap: cannot add entry with nil key or value")
		return false
	}
	var parent *node
	c := 0
	for n := m.root; n != nil; {
		parent = n
		c = key.Compare(n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			tracer().Debugf("ordmap: duplicate key %s", simbase.ItemString(key))
			return false
		}
	}
	z := &node{key: key, value: value, parent: parent, color: Red}
	switch {
	case parent == nil:
		m.root = z
	case c < 0:
		parent.left = z
	default:
		parent.right = z
	}
	m.count++
	m.insertFixup(z)
	m.checkInvariants("add")
	return true
}

// Delete removes the entry for key and releases its key and value. Returns
// false if there is no such entry.
func (m *Map) Delete(key simbase.Item) bool {
	if key == nil {
		return false
	}
	z := m.find(key)
	if z == nil {
		return false
	}
	gone := m.removeNode(z)
	m.count--
	simbase.Release(gone.key)
	simbase.Release(gone.value)
	gone.key, gone.value = nil, nil
	m.checkInvariants("delete")
	return true
}

// Contains returns true if m has an entry for key.
func (m *Map) Contains(key simbase.Item) bool {
	return key != nil && m.find(key) != nil
}

// Value returns the value stored for key, or nil.
func (m *Map) Value(key simbase.Item) simbase.Item {
	if key == nil {
		return nil
	}
	if n := m.find(key); n != nil {
		return n.value
	}
	return nil
}

// ChangeValue replaces the value stored for key and returns the previous one.
// Ownership of the previous value passes to the caller. If there is no entry
// for key, ChangeValue returns nil and does not take ownership of value.
func (m *Map) ChangeValue(key, value simbase.Item) simbase.Item {
	if key == nil || value == nil {
		tracer().Errorf("ordmap: cannot change value with nil key or value")
		return nil
	}
	n := m.find(key)
	if n == nil {
		return nil
	}
	old := n.value
	n.value = value
	return old
}

// Clear removes all entries from m, releasing every key and value. Calling
// Clear on an empty map is a no-op.
func (m *Map) Clear() {
	if m.root == nil {
		return
	}
	stack := []*node{m.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		simbase.Release(n.key)
		simbase.Release(n.value)
		n.key, n.value, n.left, n.right, n.parent = nil, nil, nil, nil, nil
	}
	m.root = nil
	m.count = 0
}

// Min returns the smallest key in m, or nil if m is empty.
func (m *Map) Min() simbase.Item {
	if m.root == nil {
		return nil
	}
	return minimum(m.root).key
}

// Max returns the largest key in m, or nil if m is empty.
func (m *Map) Max() simbase.Item {
	if m.root == nil {
		return nil
	}
	return maximum(m.root).key
}

// Each calls f for every entry in ascending key order, until f returns false.
// f must not modify m.
func (m *Map) Each(f func(key, value simbase.Item) bool) {
	var stack []*node
	n := m.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(n.key, n.value) {
			return
		}
		n = n.right
	}
}

// SortedList appends all keys to keys and all values to values, in ascending
// key order and in lock-step. Items implementing simbase.Cloner are appended as
// clones owned by the lists. Other items are appended as borrowed entries,
// which remain owned by m and must not be used after they have been deleted
// from m.
func (m *Map) SortedList(keys, values *ordlist.List) bool {
	if keys == nil || values == nil {
		tracer().Errorf("ordmap: sorted export needs a key list and a value list")
		return false
	}
	m.Each(func(k, v simbase.Item) bool {
		export(keys, k)
		export(values, v)
		return true
	})
	return true
}

func export(l *ordlist.List, item simbase.Item) {
	if c, ok := simbase.Clone(item); ok {
		l.Append(c)
		return
	}
	l.AppendBorrowed(item)
}

func (m *Map) checkInvariants(op string) {
	if !m.verify {
		return
	}
	if err := m.Verify(); err != nil {
		tracer().Errorf("ordmap: tree corrupt after %s: %v", op, err)
		if gconf.GetBool("panic-on-tree-corruption") {
			panic(err)
		}
	}
}
