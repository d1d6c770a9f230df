// ==============================================================================================
// FILE: object/collections.go
// PACKAGE: object
// PURPOSE: Composite value types — List, Tuple, Dict, Set, Range — plus the
//          Iterator protocol shared across all of them.
// ==============================================================================================

package object

import (
	"math/big"
	"strings"
)

// ---- List / Tuple ------------------------------------------------------------------------------

type List struct{ Elements []Object }

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string  { return "[" + joinInspect(l.Elements, ", ") + "]" }

type Tuple struct{ Elements []Object }

func (t *Tuple) Type() ObjectType { return TUPLE_OBJ }
func (t *Tuple) Inspect() string {
	if len(t.Elements) == 1 {
		return "(" + t.Elements[0].Inspect() + ",)"
	}
	return "(" + joinInspect(t.Elements, ", ") + ")"
}

func joinInspect(objs []Object, sep string) string {
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = o.Inspect()
	}
	return strings.Join(parts, sep)
}

// ---- Dict (insertion-ordered) ------------------------------------------------------------------

// DictKey is a comparable projection of a hashable Object, used as the Go
// map key underneath Dict. The teacher's own object.Map used a bare Go map
// keyed by a hash struct with no ordering; Glade's dict must preserve
// insertion order (a language invariant), so Dict additionally tracks key
// order explicitly — see DESIGN.md.
type DictKey struct {
	Kind ObjectType
	Repr string
}

// HashKey computes the DictKey for a value, or ok=false if the value is
// unhashable (lists/dicts/sets — mutable containers can't be dict keys).
func HashKey(o Object) (DictKey, bool) {
	switch v := o.(type) {
	case *NoneType:
		return DictKey{Kind: NONE_OBJ, Repr: ""}, true
	case *Bool:
		return DictKey{Kind: BOOL_OBJ, Repr: v.Inspect()}, true
	case *Int:
		return DictKey{Kind: INT_OBJ, Repr: v.Value.String()}, true
	case *Float:
		return DictKey{Kind: FLOAT_OBJ, Repr: v.Inspect()}, true
	case *String:
		return DictKey{Kind: STRING_OBJ, Repr: v.Value}, true
	case *Tuple:
		parts := make([]string, len(v.Elements))
		for i, e := range v.Elements {
			k, ok := HashKey(e)
			if !ok {
				return DictKey{}, false
			}
			parts[i] = string(k.Kind) + ":" + k.Repr
		}
		return DictKey{Kind: TUPLE_OBJ, Repr: strings.Join(parts, "\x1f")}, true
	}
	return DictKey{}, false
}

type dictEntry struct {
	key   Object
	value Object
}

// Dict is an insertion-ordered hash map: lookups go through the `pairs`
// table, iteration walks `order` — the combination is how Python's dict
// behaves and what this interpreter's invariants require.
type Dict struct {
	index map[DictKey]int // allocated by NewDict but never written or read
	order []DictKey
	pairs map[DictKey]dictEntry
}

func NewDict() *Dict {
	return &Dict{index: map[DictKey]int{}, pairs: map[DictKey]dictEntry{}}
}

func (d *Dict) Type() ObjectType { return DICT_OBJ }
func (d *Dict) Inspect() string {
	parts := make([]string, 0, len(d.order))
	for _, k := range d.order {
		e := d.pairs[k]
		parts = append(parts, e.key.Inspect()+": "+e.value.Inspect())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d *Dict) Len() int { return len(d.order) }

func (d *Dict) Get(key Object) (Object, bool) {
	k, ok := HashKey(key)
	if !ok {
		return nil, false
	}
	e, ok := d.pairs[k]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set inserts or updates key, preserving first-insertion order on update.
func (d *Dict) Set(key, value Object) bool {
	k, ok := HashKey(key)
	if !ok {
		return false
	}
	if _, exists := d.pairs[k]; !exists {
		d.order = append(d.order, k)
	}
	d.pairs[k] = dictEntry{key: key, value: value}
	return true
}

func (d *Dict) Delete(key Object) bool {
	k, ok := HashKey(key)
	if !ok {
		return false
	}
	if _, exists := d.pairs[k]; !exists {
		return false
	}
	delete(d.pairs, k)
	for i, ok2 := range d.order {
		if ok2 == k {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Keys/Values/Items return slices in insertion order.
func (d *Dict) Keys() []Object {
	out := make([]Object, len(d.order))
	for i, k := range d.order {
		out[i] = d.pairs[k].key
	}
	return out
}

func (d *Dict) Values() []Object {
	out := make([]Object, len(d.order))
	for i, k := range d.order {
		out[i] = d.pairs[k].value
	}
	return out
}

func (d *Dict) Items() []*Tuple {
	out := make([]*Tuple, len(d.order))
	for i, k := range d.order {
		e := d.pairs[k]
		out[i] = &Tuple{Elements: []Object{e.key, e.value}}
	}
	return out
}

func (d *Dict) Copy() *Dict {
	nd := NewDict()
	for _, k := range d.order {
		e := d.pairs[k]
		nd.Set(e.key, e.value)
	}
	return nd
}

// ---- Set ----------------------------------------------------------------------------------------

// Set mirrors Dict's insertion-order discipline but stores no values.
type Set struct {
	index map[DictKey]int
	items []Object
}

func NewSet() *Set { return &Set{index: map[DictKey]int{}} }

func (s *Set) Type() ObjectType { return SET_OBJ }
func (s *Set) Inspect() string {
	if len(s.items) == 0 {
		return "set()"
	}
	return "{" + joinInspect(s.items, ", ") + "}"
}

func (s *Set) Len() int { return len(s.items) }

func (s *Set) Has(v Object) bool {
	k, ok := HashKey(v)
	if !ok {
		return false
	}
	_, exists := s.index[k]
	return exists
}

func (s *Set) Add(v Object) bool {
	k, ok := HashKey(v)
	if !ok {
		return false
	}
	if _, exists := s.index[k]; exists {
		return true
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
	return true
}

func (s *Set) Discard(v Object) {
	k, ok := HashKey(v)
	if !ok {
		return
	}
	i, exists := s.index[k]
	if !exists {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, k)
	for kk, idx := range s.index {
		if idx > i {
			s.index[kk] = idx - 1
		}
	}
}

func (s *Set) Items() []Object { return s.items }

// ---- Range ----------------------------------------------------------------------------------------

// Range is a lazily-stepped integer sequence, matching Python's range().
type Range struct {
	Start, Stop, Step *big.Int
}

func (r *Range) Type() ObjectType { return RANGE_OBJ }
func (r *Range) Inspect() string {
	if r.Step.Cmp(big.NewInt(1)) == 0 {
		return "range(" + r.Start.String() + ", " + r.Stop.String() + ")"
	}
	return "range(" + r.Start.String() + ", " + r.Stop.String() + ", " + r.Step.String() + ")"
}

// Len computes the number of elements without materializing them.
func (r *Range) Len() int64 {
	if r.Step.Sign() == 0 {
		return 0
	}
	diff := new(big.Int).Sub(r.Stop, r.Start)
	if r.Step.Sign() > 0 {
		if diff.Sign() <= 0 {
			return 0
		}
	} else if diff.Sign() >= 0 {
		return 0
	}
	diff.Abs(diff)
	step := new(big.Int).Abs(r.Step)
	q, m := new(big.Int), new(big.Int)
	q.DivMod(diff, step, m)
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q.Int64()
}

func (r *Range) At(i int64) *Int {
	off := new(big.Int).Mul(big.NewInt(i), r.Step)
	return &Int{Value: off.Add(off, r.Start)}
}

// ---- Iterator -------------------------------------------------------------------------------------

// Iterator is the runtime form of the language's iteration protocol: every
// for-loop, comprehension, and the `iter`/`next` builtins pull elements
// through this single shape regardless of the underlying container.
type Iterator struct {
	Next func() (Object, bool) // ok=false signals exhaustion
}

func (it *Iterator) Type() ObjectType { return ITERATOR_OBJ }
func (it *Iterator) Inspect() string  { return "<iterator>" }

// NewSliceIterator builds an Iterator over a pre-materialized Go slice —
// the common case for List/Tuple/Dict views and Set snapshots.
func NewSliceIterator(items []Object) *Iterator {
	i := 0
	return &Iterator{Next: func() (Object, bool) {
		if i >= len(items) {
			return nil, false
		}
		v := items[i]
		i++
		return v, true
	}}
}

// NewRangeIterator walks a Range without materializing it.
func NewRangeIterator(r *Range) *Iterator {
	n := r.Len()
	var i int64
	return &Iterator{Next: func() (Object, bool) {
		if i >= n {
			return nil, false
		}
		v := r.At(i)
		i++
		return v, true
	}}
}

// NewStringIterator walks a string by rune, matching Python's per-character
// string iteration.
func NewStringIterator(s string) *Iterator {
	runes := []rune(s)
	i := 0
	return &Iterator{Next: func() (Object, bool) {
		if i >= len(runes) {
			return nil, false
		}
		v := &String{Value: string(runes[i])}
		i++
		return v, true
	}}
}
