package ordmap

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/simbase"
	"github.com/npillmayer/simbase/container/ordlist"
)

func mustVerify(t *testing.T, m *Map, when string) {
	t.Helper()
	if err := m.Verify(); err != nil {
		m.Dump()
		t.Fatalf("%s: %v", when, err)
	}
}

func TestSortedExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		if !m.Add(simbase.Int(k), simbase.Int(k*10)) {
			t.Fatalf("could not add key %d", k)
		}
		mustVerify(t, m, "add")
	}
	if m.Len() != 7 {
		t.Errorf("expected 7 entries, have %d", m.Len())
	}
	keys, values := ordlist.New(), ordlist.New()
	if !m.SortedList(keys, values) {
		t.Fatalf("sorted export failed")
	}
	expected := []int{1, 3, 4, 5, 7, 8, 9}
	if keys.Len() != len(expected) || values.Len() != len(expected) {
		t.Fatalf("expected %d exported entries, have %d/%d", len(expected), keys.Len(), values.Len())
	}
	k, v := keys.First(), values.First()
	for i, x := range expected {
		if !k.Equals(simbase.Int(x)) {
			t.Errorf("key #%d expected to be %d, is %v", i, x, k)
		}
		if !v.Equals(simbase.Int(x * 10)) {
			t.Errorf("value #%d expected to be %d, is %v", i, x*10, v)
		}
		k, v = keys.Next(), values.Next()
	}
	m.Dump()
}

func TestAddContainsDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	m.Add(simbase.String("x"), simbase.Int(1))
	if !m.Contains(simbase.String("x")) {
		t.Errorf("expected map to contain x")
	}
	if v := m.Value(simbase.String("x")); v == nil || !v.Equals(simbase.Int(1)) {
		t.Errorf("expected value 1 for x, have %v", v)
	}
	if m.Value(simbase.String("y")) != nil || m.Contains(simbase.String("y")) {
		t.Errorf("did not expect to find y")
	}
	if m.Delete(simbase.String("y")) {
		t.Errorf("delete of absent key should fail")
	}
	if !m.Delete(simbase.String("x")) {
		t.Errorf("delete of x should succeed")
	}
	if m.Contains(simbase.String("x")) || m.Len() != 0 {
		t.Errorf("expected x to be gone")
	}
	mustVerify(t, m, "delete")
}

func TestDuplicateKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	m.Add(simbase.Int(1), simbase.String("one"))
	k, v := &tracked{id: 1}, &tracked{id: 100}
	if !m.Add(k, v) { // tracked keys order behind Int keys
		t.Errorf("expected tracked key 1 to be distinct from Int(1)")
	}
	if m.Add(simbase.Int(1), simbase.String("uno")) {
		t.Errorf("expected duplicate key to be refused")
	}
	if v := m.Value(simbase.Int(1)); !v.Equals(simbase.String("one")) {
		t.Errorf("duplicate insert must not change value, have %v", v)
	}
	dk, dv := &tracked{id: 1}, &tracked{id: 101}
	if m.Add(dk, dv) {
		t.Errorf("expected duplicate tracked key to be refused")
	}
	m.Clear()
	if dk.released != 0 || dv.released != 0 {
		t.Errorf("refused items must not be owned by the map")
	}
	if k.released != 1 || v.released != 1 {
		t.Errorf("expected stored items to be released by Clear")
	}
}

func TestChangeValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	old := &tracked{id: 1}
	m.Add(simbase.Int(7), old)
	nv := &tracked{id: 2}
	prev := m.ChangeValue(simbase.Int(7), nv)
	if prev != old {
		t.Errorf("expected previous value to be returned")
	}
	if m.Value(simbase.Int(7)) != nv {
		t.Errorf("expected new value to be stored")
	}
	absent := &tracked{id: 3}
	if m.ChangeValue(simbase.Int(8), absent) != nil {
		t.Errorf("expected nil for absent key")
	}
	m.Clear()
	if old.released != 0 {
		t.Errorf("previous value belongs to the caller, must not be released by the map")
	}
	if nv.released != 1 {
		t.Errorf("expected new value to be released once, was %d times", nv.released)
	}
	if absent.released != 0 {
		t.Errorf("value for absent key must not be taken")
	}
}

func TestClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("expected empty map")
	}
	var items []*tracked
	for i := 0; i < 50; i++ {
		k, v := &tracked{id: i}, &tracked{id: 1000 + i}
		items = append(items, k, v)
		m.Add(k, v)
	}
	m.Clear()
	m.Clear()
	if m.Len() != 0 || m.Min() != nil {
		t.Errorf("expected empty map after clear")
	}
	for _, it := range items {
		if it.released != 1 {
			t.Errorf("expected item %d to be released once, was %d times", it.id, it.released)
		}
	}
	mustVerify(t, m, "clear")
	var zero Map
	zero.Clear()
	if !zero.Add(simbase.Int(1), simbase.Int(1)) {
		t.Errorf("zero value map should be usable")
	}
}

func TestDeleteReleases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	keys := make([]*tracked, 20)
	values := make([]*tracked, 20)
	for i := range keys {
		keys[i], values[i] = &tracked{id: i}, &tracked{id: 100 + i}
		m.Add(keys[i], values[i])
	}
	// delete inner nodes first to force successor swaps
	for _, i := range []int{10, 5, 15, 0, 19, 7} {
		if !m.Delete(&tracked{id: i}) {
			t.Fatalf("could not delete %d", i)
		}
		mustVerify(t, m, "delete")
		if keys[i].released != 1 || values[i].released != 1 {
			t.Errorf("expected entry %d to be released, key=%d value=%d",
				i, keys[i].released, values[i].released)
		}
	}
	for i := range keys {
		switch i {
		case 10, 5, 15, 0, 19, 7:
		default:
			if keys[i].released != 0 || values[i].released != 0 {
				t.Errorf("entry %d released, but still in map", i)
			}
			if v := m.Value(&tracked{id: i}); v != values[i] {
				t.Errorf("entry %d lost its value after deletions", i)
			}
		}
	}
}

func TestNilParameters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	if m.Add(nil, simbase.Int(1)) || m.Add(simbase.Int(1), nil) {
		t.Errorf("expected nil key or value to be refused")
	}
	if m.Len() != 0 {
		t.Errorf("expected map to be unchanged")
	}
	if m.Delete(nil) || m.Contains(nil) || m.Value(nil) != nil {
		t.Errorf("nil key should never be found")
	}
	if m.ChangeValue(nil, simbase.Int(1)) != nil {
		t.Errorf("expected nil for nil key")
	}
	if m.SortedList(nil, ordlist.New()) {
		t.Errorf("expected sorted export to fail without key list")
	}
}

func TestSortedListBorrows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	var values []*tracked
	for i := 0; i < 5; i++ {
		v := &tracked{id: i}
		values = append(values, v)
		m.Add(simbase.Int(i), v)
	}
	keys, vl := ordlist.New(), ordlist.New()
	m.SortedList(keys, vl)
	if vl.First() != values[0] {
		t.Errorf("expected non-clonable values to be exported by reference")
	}
	keys.RemoveAll()
	vl.RemoveAll()
	for _, v := range values {
		if v.released != 0 {
			t.Errorf("exported list must not release map-owned value %d", v.id)
		}
	}
	if m.Len() != 5 {
		t.Errorf("export must not change the map")
	}
	m.Clear()
	for _, v := range values {
		if v.released != 1 {
			t.Errorf("expected value %d to be released once by the map", v.id)
		}
	}
}

func TestMinMaxEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	if m.Min() != nil || m.Max() != nil {
		t.Errorf("empty map has no min/max")
	}
	for _, k := range []int{42, 17, 99, 3, 56} {
		m.Add(simbase.Int(k), simbase.String("v"))
	}
	if !m.Min().Equals(simbase.Int(3)) || !m.Max().Equals(simbase.Int(99)) {
		t.Errorf("expected min 3 and max 99, have %v and %v", m.Min(), m.Max())
	}
	n := 0
	m.Each(func(k, v simbase.Item) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Errorf("expected Each to stop after 2 entries, visited %d", n)
	}
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	for _, k := range []int{1, 2, 3} {
		m.Add(simbase.Int(k), simbase.Int(k))
	}
	// ascending inserts rotate 2 to the root
	var infos []NodeInfo
	m.Walk(func(info NodeInfo) bool {
		infos = append(infos, info)
		return true
	})
	if len(infos) != 3 {
		t.Fatalf("expected 3 nodes, have %d", len(infos))
	}
	root, left, right := infos[0], infos[1], infos[2]
	if !root.Key.Equals(simbase.Int(2)) || root.Color != Black || root.Side != Root || root.Depth != 0 {
		t.Errorf("unexpected root %+v", root)
	}
	if !left.Key.Equals(simbase.Int(1)) || left.Color != Red || left.Side != Left || left.Depth != 1 {
		t.Errorf("unexpected left child %+v", left)
	}
	if !right.Key.Equals(simbase.Int(3)) || right.Color != Red || right.Side != Right {
		t.Errorf("unexpected right child %+v", right)
	}
}

func TestRotationsKeepOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		m.Add(simbase.Int(k), simbase.Int(k))
	}
	inorder := func() []simbase.Item {
		var keys []simbase.Item
		m.Each(func(k, v simbase.Item) bool {
			keys = append(keys, k)
			return true
		})
		return keys
	}
	before := inorder()
	root := m.root
	m.rotateLeft(root)
	if m.root != root.parent || m.root.left != root || m.root.parent != nil {
		t.Errorf("rotateLeft did not lift the right child to the root")
	}
	m.rotateRight(m.root)
	if m.root != root {
		t.Errorf("rotateRight should undo rotateLeft")
	}
	m.rotateRight(m.root.left)
	after := inorder()
	for i := range before {
		if !before[i].Equals(after[i]) {
			t.Errorf("rotation changed in-order sequence at #%d", i)
		}
	}
	if _, err := blackHeight(nil); err != nil {
		t.Error(err)
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	m := New()
	for _, k := range []int{2, 1, 3} {
		m.Add(simbase.Int(k), simbase.Int(k))
	}
	m.root.color = Red
	if m.Verify() == nil {
		t.Errorf("expected red root to be detected")
	}
	m.root.color = Black
	m.root.left.key, m.root.right.key = m.root.right.key, m.root.left.key
	if m.Verify() == nil {
		t.Errorf("expected ordering violation to be detected")
	}
	m.root.left.key, m.root.right.key = m.root.right.key, m.root.left.key
	m.root.left.color = Black
	if m.Verify() == nil {
		t.Errorf("expected black height violation to be detected")
	}
}

func TestRandomInsertDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	N := 10000
	if testing.Short() {
		N = 1000
	}
	R := rand.New(rand.NewSource(4711))
	m := New()
	for _, k := range R.Perm(N) {
		if !m.Add(simbase.Int(k), simbase.Int(k)) {
			t.Fatalf("could not add %d", k)
		}
		mustVerify(t, m, "random insert")
	}
	if m.Len() != N {
		t.Fatalf("expected %d entries, have %d", N, m.Len())
	}
	for i, k := range R.Perm(N) {
		if !m.Delete(simbase.Int(k)) {
			t.Fatalf("could not delete %d", k)
		}
		if m.Contains(simbase.Int(k)) {
			t.Fatalf("key %d still present after delete", k)
		}
		mustVerify(t, m, "random delete")
		if m.Len() != N-i-1 {
			t.Fatalf("expected %d entries, have %d", N-i-1, m.Len())
		}
	}
	if m.root != nil {
		t.Errorf("expected empty tree")
	}
}

func TestAgainstTreemap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simbase.ordmap")
	defer teardown()
	//
	R := rand.New(rand.NewSource(1234))
	m := New()
	oracle := treemap.NewWith(simbase.Comparator)
	for i := 0; i < 5000; i++ {
		k := simbase.Int(R.Intn(500))
		switch R.Intn(3) {
		case 0, 1:
			_, present := oracle.Get(k)
			if added := m.Add(k, simbase.Int(i)); added == present {
				t.Fatalf("step %d: add(%d) = %v, oracle has key = %v", i, k, added, present)
			}
			if !present {
				oracle.Put(k, simbase.Int(i))
			}
		case 2:
			_, present := oracle.Get(k)
			if deleted := m.Delete(k); deleted != present {
				t.Fatalf("step %d: delete(%d) = %v, oracle has key = %v", i, k, deleted, present)
			}
			oracle.Remove(k)
		}
		if m.Len() != oracle.Size() {
			t.Fatalf("step %d: size %d differs from oracle size %d", i, m.Len(), oracle.Size())
		}
	}
	mustVerify(t, m, "random operations")
	keys, values := ordlist.New(), ordlist.New()
	m.SortedList(keys, values)
	okeys, ovalues := oracle.Keys(), oracle.Values()
	k, v := keys.First(), values.First()
	for i := range okeys {
		if !k.Equals(okeys[i].(simbase.Item)) || !v.Equals(ovalues[i].(simbase.Item)) {
			t.Fatalf("entry #%d: have %v=%v, oracle has %v=%v", i, k, v, okeys[i], ovalues[i])
		}
		k, v = keys.Next(), values.Next()
	}
}

// tracked is a non-clonable item counting its releases.
type tracked struct {
	id       int
	released int
}

func (t *tracked) Equals(other simbase.Item) bool {
	o, ok := other.(*tracked)
	return ok && o.id == t.id
}

func (t *tracked) Compare(other simbase.Item) int {
	o, ok := other.(*tracked)
	if !ok {
		return 1 // behind stock items
	}
	if t.id < o.id {
		return -1
	} else if t.id > o.id {
		return 1
	}
	return 0
}

func (t *tracked) Release() {
	t.released++
}
