package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/pytype/internal/model"
)

func TestBuiltinLessons(t *testing.T) {
	lessons := Builtin()
	require.Len(t, lessons, 4)
	for _, l := range lessons {
		assert.NotEmpty(t, l.Title)
		assert.NotEmpty(t, l.Snippet)
		assert.Len(t, l.Objectives, 3)
		assert.NotContains(t, l.Snippet, "\t")
	}
	assert.Equal(t, "Data Structures Deep Dive", lessons[0].Title)
	assert.Contains(t, lessons[1].Snippet, `return {item["id"]: item for item in results}`)
}

func TestCatalogNavigationWraps(t *testing.T) {
	c := NewCatalog(Builtin())
	require.Equal(t, 4, c.Len())

	tests := []struct {
		from, next, prev int
	}{
		{0, 1, 3},
		{2, 3, 1},
		{3, 0, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, c.Next(tt.from), "next from %d", tt.from)
		assert.Equal(t, tt.prev, c.Prev(tt.from), "prev from %d", tt.from)
	}
}

func TestCatalogGet(t *testing.T) {
	c := NewCatalog([]model.Lesson{{Title: "a"}}, []model.Lesson{{Title: "b"}})
	l, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", l.Title)

	_, ok = c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(-1)
	assert.False(t, ok)
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	c := NewCatalog([]model.Lesson{{Title: "a"}})
	all := c.All()
	all[0].Title = "changed"
	l, _ := c.Get(0)
	assert.Equal(t, "a", l.Title)
}

func TestEmptyCatalogNavigation(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, 0, c.Next(0))
	assert.Equal(t, 0, c.Prev(0))
}
