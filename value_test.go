package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueZeroIsNull(t *testing.T) {
	var v Value
	require.Equal(t, KindNull, v.Kind())
	require.True(t, v.IsNull())
	require.True(t, v.Equal(Null()))
}

func TestValueKinds(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		kind Kind
		name string
	}{
		{Null(), KindNull, "null"},
		{Bool(true), KindBool, "bool"},
		{Number(1.5), KindNumber, "number"},
		{String("x"), KindString, "string"},
		{Array(), KindArray, "array"},
		{Object(), KindObject, "object"},
	} {
		require.Equal(t, tc.kind, tc.v.Kind())
		require.Equal(t, tc.name, tc.v.Kind().String())
	}
}

func TestValueAccessors(t *testing.T) {
	require.True(t, Bool(true).Bool())
	require.False(t, Bool(false).Bool())
	require.Equal(t, 1.5, Number(1.5).Float64())
	require.Equal(t, "hi", String("hi").Str())

	arr := Array(Number(1), String("two"))
	require.Equal(t, 2, arr.Len())
	require.Equal(t, "two", arr.Index(1).Str())
	require.True(t, arr.Index(2).IsNull())
	require.True(t, arr.Index(-1).IsNull())

	// Accessors of the wrong kind fall back to zero values.
	require.False(t, Null().Bool())
	require.Equal(t, float64(0), String("3").Float64())
	require.Equal(t, "", Number(3).Str())
	require.Equal(t, 0, Number(3).Len())
	require.True(t, Number(3).Index(0).IsNull())
	_, ok := Array().Get("k")
	require.False(t, ok)
}

func TestObjectSetKeepsPositionOnOverwrite(t *testing.T) {
	obj := Object()
	obj.Set("a", Number(1))
	obj.Set("b", Number(2))
	obj.Set("a", Number(3))

	members := obj.Members()
	require.Len(t, members, 2)
	require.Equal(t, "a", members[0].Key)
	require.Equal(t, float64(3), members[0].Value.Float64())
	require.Equal(t, "b", members[1].Key)

	v, ok := obj.Get("a")
	require.True(t, ok)
	require.Equal(t, float64(3), v.Float64())
	_, ok = obj.Get("missing")
	require.False(t, ok)
}

func TestObjectConstructorDeduplicates(t *testing.T) {
	obj := Object(
		Member{"a", Number(1)},
		Member{"b", Number(2)},
		Member{"a", Number(3)},
	)
	require.Equal(t, 2, obj.Len())
	require.Equal(t, "a", obj.Members()[0].Key)
	v, _ := obj.Get("a")
	require.Equal(t, float64(3), v.Float64())
}

func TestSetPanicsOnNonObject(t *testing.T) {
	require.Panics(t, func() {
		v := Number(1)
		v.Set("k", Null())
	})
}

func TestValueEqual(t *testing.T) {
	a := Object(
		Member{"n", Number(1)},
		Member{"s", String("x")},
		Member{"l", Array(Bool(true), Null())},
	)
	b := Object(
		Member{"n", Number(1)},
		Member{"s", String("x")},
		Member{"l", Array(Bool(true), Null())},
	)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	require.False(t, a.Equal(Null()))
	require.False(t, Number(1).Equal(Number(2)))
	require.False(t, String("x").Equal(String("y")))
	require.False(t, Array(Number(1)).Equal(Array(Number(1), Number(2))))

	// Objects with the same members in a different order differ.
	c := Object(
		Member{"s", String("x")},
		Member{"n", Number(1)},
		Member{"l", Array(Bool(true), Null())},
	)
	require.False(t, a.Equal(c))
}

func TestValueStringer(t *testing.T) {
	v := Object(Member{"key", Array(Number(1), String("two"))})
	require.Equal(t, `{"key":[1,"two"]}`, v.String())
}
