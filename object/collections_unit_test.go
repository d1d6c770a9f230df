// ==============================================================================================
// FILE: object/collections_unit_test.go
// PURPOSE: Unit tests for Dict/Set insertion order, HashKey equality, and
//          the Range/slice-iterator helpers.
// ==============================================================================================

package object

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set(&String{Value: "b"}, NewInt(2))
	d.Set(&String{Value: "a"}, NewInt(1))
	d.Set(&String{Value: "b"}, NewInt(20)) // overwrite, order unchanged

	keys := d.Keys()
	require.Len(t, keys, 2)
	ks, ok := keys[0].(*String)
	require.True(t, ok)
	assert.Equal(t, "b", ks.Value)

	v, ok := d.Get(&String{Value: "b"})
	require.True(t, ok)
	assert.Equal(t, int64(20), v.(*Int).Value.Int64())
}

func TestDictDelete(t *testing.T) {
	d := NewDict()
	d.Set(NewInt(1), &String{Value: "one"})
	require.True(t, d.Delete(NewInt(1)))
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Delete(NewInt(1)))
}

func TestHashKeyRejectsUnhashableTypes(t *testing.T) {
	_, ok := HashKey(&List{})
	assert.False(t, ok)
	_, ok = HashKey(NewDict())
	assert.False(t, ok)
	_, ok = HashKey(&Tuple{Elements: []Object{NewInt(1)}})
	assert.True(t, ok)
}

func TestSetAddIsIdempotent(t *testing.T) {
	s := NewSet()
	s.Add(NewInt(1))
	s.Add(NewInt(1))
	s.Add(NewInt(2))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(NewInt(1)))
	assert.False(t, s.Has(NewInt(3)))
}

func TestSetDiscard(t *testing.T) {
	s := NewSet()
	s.Add(NewInt(1))
	s.Discard(NewInt(1))
	assert.Equal(t, 0, s.Len())
}

func TestRangeAtAndLen(t *testing.T) {
	r := &Range{Start: big.NewInt(2), Stop: big.NewInt(10), Step: big.NewInt(3)}
	assert.Equal(t, int64(3), r.Len()) // 2, 5, 8
	assert.Equal(t, int64(2), r.At(0).Value.Int64())
	assert.Equal(t, int64(5), r.At(1).Value.Int64())
	assert.Equal(t, int64(8), r.At(2).Value.Int64())
}

func TestSliceIteratorDrains(t *testing.T) {
	it := NewSliceIterator([]Object{NewInt(1), NewInt(2)})
	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, int64(1), first.(*Int).Value.Int64())

	second, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, int64(2), second.(*Int).Value.Int64())

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestStringIteratorYieldsRunes(t *testing.T) {
	it := NewStringIterator("ab")
	out := Materialize(it)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].(*String).Value)
	assert.Equal(t, "b", out[1].(*String).Value)
}
