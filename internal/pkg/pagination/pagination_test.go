package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New(2, 10, 35)
	require.Equal(t, 2, p.Page)
	require.Equal(t, 10, p.Limit)
	require.Equal(t, int64(35), p.Total)
	require.Equal(t, 4, p.Pages)
	require.True(t, p.HasNext)
	require.Equal(t, 10, p.Offset)
}

func TestNew_LastPage(t *testing.T) {
	p := New(4, 10, 35)
	require.False(t, p.HasNext)

	empty := New(1, 10, 0)
	require.Equal(t, 1, empty.Pages)
	require.False(t, empty.HasNext)
}

func TestParse_Defaults(t *testing.T) {
	page, limit := Parse("", "")
	require.Equal(t, 1, page)
	require.Equal(t, 20, limit)
}

func TestParse_Bounds(t *testing.T) {
	page, limit := Parse("0", "500")
	require.Equal(t, 1, page)
	require.Equal(t, 50, limit)

	page, limit = Parse("-3", "garbage")
	require.Equal(t, 1, page)
	require.Equal(t, 20, limit)
}
