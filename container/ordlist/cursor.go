package ordlist

import "github.com/npillmayer/simbase"

// Cursor is the traversal position of a list. A cursor is either unset (no
// traversal started, or moved past one of the ends) or points to a live entry.
//
// The cursor keeps a pair of positions: the current entry and the entry a
// call to Next will move to. After removing the current entry, current steps
// back to the predecessor and next still refers to the successor.
type Cursor struct {
	list    *List
	current *node
	next    *node
	after   *node // last entry visited before running off the tail
}

func (c *Cursor) reset() {
	c.current, c.next, c.after = nil, nil, nil
}

// appended re-establishes the positions after an entry has been added at the
// tail.
func (c *Cursor) appended() {
	switch {
	case c.current != nil:
		c.next = c.current.next
	case c.after != nil:
		c.next = c.after.next
	default:
		c.next = c.list.head
	}
}

// Current returns the item at the cursor, or nil if the cursor is unset.
func (c *Cursor) Current() simbase.Item {
	if c.current == nil {
		return nil
	}
	return c.current.item
}

// First positions c at the head of the list.
func (c *Cursor) First() simbase.Item {
	c.reset()
	c.current = c.list.head
	if c.current == nil {
		return nil
	}
	c.next = c.current.next
	return c.current.item
}

// Next advances c. Past the tail Next returns nil and leaves c unset.
func (c *Cursor) Next() simbase.Item {
	if c.next == nil {
		if c.current != nil {
			c.after = c.current
		}
		c.current = nil
		return nil
	}
	c.current, c.after = c.next, nil
	c.next = c.current.next
	return c.current.item
}

// Previous moves c back one entry. Stepping back from the head leaves c unset,
// with the head as the target of the next call to Next. If c is unset, Previous
// returns nil.
func (c *Cursor) Previous() simbase.Item {
	if c.current == nil {
		return nil
	}
	c.current = c.current.prev
	if c.current == nil {
		c.next, c.after = c.list.head, nil
		return nil
	}
	c.next = c.current.next
	return c.current.item
}

// Nth positions c at entry n, counting from 0.
func (c *Cursor) Nth(n int) simbase.Item {
	if n < 0 || n >= c.list.count {
		return nil
	}
	item := c.First()
	for i := 0; i < n && item != nil; i++ {
		item = c.Next()
	}
	return item
}

// Find scans the list from the head and stops at the first item which equals
// item. If nothing matches, Find returns nil.
func (c *Cursor) Find(item simbase.Item) simbase.Item {
	if item == nil {
		return nil
	}
	cur := c.First()
	for cur != nil && !cur.Equals(item) {
		cur = c.Next()
	}
	return cur
}

// Remove takes the current entry out of the list and releases its item, unless
// the item is borrowed. Returns false if the cursor is unset.
func (c *Cursor) Remove() bool {
	n := c.current
	if n == nil {
		return false
	}
	l := c.list
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	switch {
	case n.next == nil: // removed the tail, traversal is finished
		c.current, c.next, c.after = nil, nil, n.prev
	default: // successor is up next
		c.current, c.next, c.after = n.prev, n.next, nil
	}
	l.count--
	if !n.borrowed {
		simbase.Release(n.item)
	}
	n.item, n.next, n.prev = nil, nil, nil
	return true
}
