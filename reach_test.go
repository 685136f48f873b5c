package yajbe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReachNestedMap(t *testing.T) {
	doc := Map{
		"user": Map{
			"name": String("ada"),
			"age":  Int(36),
		},
	}

	var name string
	ok, err := doc.Reach(&name, "user", "name")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ada", name)

	var age int64
	ok, err = doc.Reach(&age, "user", "age")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(36), age)
}

func TestReachMissingPath(t *testing.T) {
	doc := Map{"a": Int(1)}
	var out int64
	ok, err := doc.Reach(&out, "b")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReachTypeMismatch(t *testing.T) {
	doc := Map{"a": String("x")}
	var out int64
	_, err := doc.Reach(&out, "a")
	require.Error(t, err)
}

func TestReachOrderedMap(t *testing.T) {
	doc := OrderedMap{
		{Key: "a", Val: Array{Int(1), Int(2)}},
	}
	var arr Array
	ok, err := doc.Reach(&arr, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Array{Int(1), Int(2)}, arr)
}

func TestPrintMapAndArray(t *testing.T) {
	require.Equal(t, "Array([Int(1) String(a)])", print(Array{Int(1), String("a")}))
	require.Contains(t, (OrderedMap{{Key: "k", Val: Int(1)}}).String(), "k: Int(1)")
}
