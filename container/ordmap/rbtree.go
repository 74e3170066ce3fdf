package ordmap

import (
	"github.com/npillmayer/simbase"
)

// Color is the color tag of a tree node.
type Color uint8

// Node colors. Absent children count as Black.
const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// node owns its key, value and children. The parent link is a back reference.
type node struct {
	key    simbase.Item
	value  simbase.Item
	left   *node
	right  *node
	parent *node
	color  Color
}

func isRed(n *node) bool {
	return n != nil && n.color == Red
}

func isBlack(n *node) bool {
	return n == nil || n.color == Black
}

func minimum(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum(n *node) *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// find returns the node for key, or nil.
func (m *Map) find(key simbase.Item) *node {
	n := m.root
	for n != nil {
		c := key.Compare(n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// --- Rotations -------------------------------------------------------------

// rotateLeft lifts x's right child into x's place:
//
//      x                y
//     / \              / \
//    a   y     ⇒      x   c
//       / \          / \
//      b   c        a   b
//
func (m *Map) rotateLeft(x *node) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	m.replaceChild(x, y)
	y.left = x
	x.parent = y
}

// rotateRight is the mirror image of rotateLeft.
func (m *Map) rotateRight(x *node) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	m.replaceChild(x, y)
	y.right = x
	x.parent = y
}

// replaceChild puts n into old's slot at old's parent (or at the root).
func (m *Map) replaceChild(old, n *node) {
	p := old.parent
	if n != nil {
		n.parent = p
	}
	switch {
	case p == nil:
		m.root = n
	case old == p.left:
		p.left = n
	default:
		p.right = n
	}
}

// --- Insertion -------------------------------------------------------------

// insertFixup restores the red-black properties after z has been linked in
// as a red leaf.
func (m *Map) insertFixup(z *node) {
	for z.parent != nil && z.parent.color == Red {
		p := z.parent
		g := p.parent // p is red, so it cannot be the root
		if p == g.left {
			if u := g.right; isRed(u) { // red uncle: recolor and climb
				p.color, u.color, g.color = Black, Black, Red
				z = g
				continue
			}
			if z == p.right { // triangle → line
				z = p
				m.rotateLeft(z)
				p = z.parent
			}
			p.color, g.color = Black, Red
			m.rotateRight(g)
		} else {
			if u := g.left; isRed(u) {
				p.color, u.color, g.color = Black, Black, Red
				z = g
				continue
			}
			if z == p.left {
				z = p
				m.rotateRight(z)
				p = z.parent
			}
			p.color, g.color = Black, Red
			m.rotateLeft(g)
		}
	}
	m.root.color = Black
}

// --- Deletion --------------------------------------------------------------

// removeNode unlinks the entry stored in z and returns the node which has
// been taken out of the tree. This node carries the key and value of the
// deleted entry.
func (m *Map) removeNode(z *node) *node {
	if z.left != nil && z.right != nil {
		s := minimum(z.right)
		z.key, s.key = s.key, z.key
		z.value, s.value = s.value, z.value
		z = s
	}
	child := z.left
	if child == nil {
		child = z.right
	}
	parent := z.parent
	m.replaceChild(z, child)
	if z.color == Black {
		m.deleteFixup(child, parent)
	}
	z.left, z.right, z.parent = nil, nil, nil
	return z
}

// deleteFixup restores the red-black properties after a black node has been
// spliced out. x (possibly nil) is short of one black unit, parent is its
// parent.
func (m *Map) deleteFixup(x, parent *node) {
	for x != m.root && isBlack(x) {
		if x == parent.left {
			w := parent.right
			if isRed(w) { // red sibling: rotate to get a black one
				w.color, parent.color = Black, Red
				m.rotateLeft(parent)
				w = parent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = Red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(w.right) { // only the near child is red
				w.left.color, w.color = Black, Red
				m.rotateRight(w)
				w = parent.right
			}
			w.color, parent.color = parent.color, Black
			w.right.color = Black
			m.rotateLeft(parent)
			x = m.root
		} else {
			w := parent.left
			if isRed(w) {
				w.color, parent.color = Black, Red
				m.rotateRight(parent)
				w = parent.left
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = Red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(w.left) {
				w.right.color, w.color = Black, Red
				m.rotateLeft(w)
				w = parent.left
			}
			w.color, parent.color = parent.color, Black
			w.left.color = Black
			m.rotateRight(parent)
			x = m.root
		}
	}
	if x != nil {
		x.color = Black
	}
}
