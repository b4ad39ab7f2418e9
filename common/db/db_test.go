package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMem(t *testing.T) DB {
	mem, err := NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	return mem
}

func TestGetSet(t *testing.T) {
	mem := newMem(t)

	_, err := mem.Get([]byte("k1"))
	require.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, mem.Set([]byte("k1"), []byte("v1")))
	value, err := mem.Get([]byte("k1"))
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), value)

	require.NoError(t, mem.Delete([]byte("k1")))
	_, err = mem.Get([]byte("k1"))
	require.Equal(t, ErrNotFoundInDb, err)
}

func TestBatch(t *testing.T) {
	mem := newMem(t)
	require.NoError(t, mem.Set([]byte("gone"), []byte("x")))

	batch := mem.NewBatch(true)
	batch.Set([]byte("k1"), []byte("v1"))
	batch.Set([]byte("k2"), []byte("v2"))
	batch.Delete([]byte("gone"))
	require.NoError(t, batch.Write())

	value, err := mem.Get([]byte("k2"))
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), value)
	_, err = mem.Get([]byte("gone"))
	require.Equal(t, ErrNotFoundInDb, err)
}

func fillList(t *testing.T, mem DB, n int) {
	for i := 1; i <= n; i++ {
		key := fmt.Sprintf("prefix-%018d", i)
		require.NoError(t, mem.Set([]byte(key), []byte(fmt.Sprintf("value-%d", i))))
	}
	require.NoError(t, mem.Set([]byte("other-1"), []byte("x")))
}

func TestListASC(t *testing.T) {
	mem := newMem(t)
	fillList(t, mem, 5)

	values, err := mem.List([]byte("prefix-"), nil, 0, ListASC)
	require.NoError(t, err)
	require.Len(t, values, 5)
	require.Equal(t, []byte("value-1"), values[0])
	require.Equal(t, []byte("value-5"), values[4])

	values, err = mem.List([]byte("prefix-"), nil, 2, ListASC)
	require.NoError(t, err)
	require.Len(t, values, 2)
	require.Equal(t, []byte("value-2"), values[1])
}

func TestListDESC(t *testing.T) {
	mem := newMem(t)
	fillList(t, mem, 5)

	values, err := mem.List([]byte("prefix-"), nil, 3, ListDESC)
	require.NoError(t, err)
	require.Len(t, values, 3)
	require.Equal(t, []byte("value-5"), values[0])
	require.Equal(t, []byte("value-3"), values[2])
}

func TestListResume(t *testing.T) {
	mem := newMem(t)
	fillList(t, mem, 5)

	// resume strictly past the given key in both directions
	resume := []byte(fmt.Sprintf("prefix-%018d", 3))

	values, err := mem.List([]byte("prefix-"), resume, 0, ListASC)
	require.NoError(t, err)
	require.Len(t, values, 2)
	require.Equal(t, []byte("value-4"), values[0])

	values, err = mem.List([]byte("prefix-"), resume, 0, ListDESC)
	require.NoError(t, err)
	require.Len(t, values, 2)
	require.Equal(t, []byte("value-2"), values[0])
}

func TestListEmptyPrefix(t *testing.T) {
	mem := newMem(t)
	values, err := mem.List([]byte("nothing-"), nil, 0, ListASC)
	require.NoError(t, err)
	require.Len(t, values, 0)
}

func TestPrefixScan(t *testing.T) {
	mem := newMem(t)
	fillList(t, mem, 3)

	values, err := mem.PrefixScan([]byte("prefix-"))
	require.NoError(t, err)
	require.Len(t, values, 3)
}
