package ordmap

import (
	"fmt"
	"strings"

	"github.com/npillmayer/simbase"
)

// Side tells which child slot of its parent a node occupies.
type Side uint8

// Sides of a node, as reported to Walk.
const (
	Root Side = iota
	Left
	Right
)

// NodeInfo describes a tree node during Walk.
type NodeInfo struct {
	Key   simbase.Item
	Value simbase.Item
	Color Color
	Depth int  // root is at depth 0
	Side  Side // child slot at the parent
}

// Walk visits the nodes of the tree in pre-order (node, left, right) until f
// returns false. It exposes the shape of the tree and is meant for debugging
// and visualization.
func (m *Map) Walk(f func(NodeInfo) bool) {
	type frame struct {
		n     *node
		depth int
		side  Side
	}
	if m.root == nil {
		return
	}
	stack := []frame{{m.root, 0, Root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		info := NodeInfo{
			Key:   fr.n.key,
			Value: fr.n.value,
			Color: fr.n.color,
			Depth: fr.depth,
			Side:  fr.side,
		}
		if !f(info) {
			return
		}
		if fr.n.right != nil {
			stack = append(stack, frame{fr.n.right, fr.depth + 1, Right})
		}
		if fr.n.left != nil {
			stack = append(stack, frame{fr.n.left, fr.depth + 1, Left})
		}
	}
}

// Verify checks the red-black properties of m:
//
//    (1) the root is black
//    (2) no red node has a red child
//    (3) all paths from a node to its absent children carry the same number of black nodes
//    (4) keys are in strictly ascending order, in-order
//
// Additionally, parent links and the entry count are checked. Verify returns the
// first violation found, or nil.
func (m *Map) Verify() error {
	if m.root == nil {
		if m.count != 0 {
			return fmt.Errorf("empty tree, but count is %d", m.count)
		}
		return nil
	}
	if m.root.color != Black {
		return fmt.Errorf("root %s is red", simbase.ItemString(m.root.key))
	}
	if m.root.parent != nil {
		return fmt.Errorf("root %s has a parent", simbase.ItemString(m.root.key))
	}
	if _, err := blackHeight(m.root); err != nil {
		return err
	}
	var prev simbase.Item
	count := 0
	var err error
	m.Each(func(k, v simbase.Item) bool {
		if prev != nil && prev.Compare(k) >= 0 {
			err = fmt.Errorf("keys out of order: %s before %s",
				simbase.ItemString(prev), simbase.ItemString(k))
			return false
		}
		prev = k
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != m.count {
		return fmt.Errorf("tree holds %d entries, count is %d", count, m.count)
	}
	return nil
}

// blackHeight checks properties (2) and (3) for the subtree at n, together with
// the parent links of n's children.
func blackHeight(n *node) (int, error) {
	if n == nil {
		return 1, nil
	}
	if err := checkChild(n, n.left); err != nil {
		return 0, err
	}
	if err := checkChild(n, n.right); err != nil {
		return 0, err
	}
	lh, err := blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("black height differs at %s: %d left vs %d right",
			simbase.ItemString(n.key), lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}

func checkChild(n, ch *node) error {
	if ch == nil {
		return nil
	}
	if ch.parent != n {
		return fmt.Errorf("broken parent link at %s", simbase.ItemString(ch.key))
	}
	if n.color == Red && ch.color == Red {
		return fmt.Errorf("red node %s has red child %s",
			simbase.ItemString(n.key), simbase.ItemString(ch.key))
	}
	return nil
}

// Dump is a debugging helper
func (m *Map) Dump() {
	tracer().Debugf("--- map (%d entries) ---", m.Len())
	m.Walk(func(info NodeInfo) bool {
		tracer().Debugf("%s%s:%s (%s)", strings.Repeat("  ", info.Depth),
			simbase.ItemString(info.Key), simbase.ItemString(info.Value), info.Color)
		return true
	})
	tracer().Debugf("------------------------")
}
