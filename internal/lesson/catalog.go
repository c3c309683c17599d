// Package lesson holds the read-only lesson catalog.
package lesson

import "github.com/verte-zerg/pytype/internal/model"

// Catalog is an ordered, immutable list of lessons.
type Catalog struct {
	lessons []model.Lesson
}

// NewCatalog joins the given lesson lists in order.
func NewCatalog(lists ...[]model.Lesson) *Catalog {
	c := &Catalog{}
	for _, list := range lists {
		c.lessons = append(c.lessons, list...)
	}
	return c
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// All returns a copy of the lessons.
func (c *Catalog) All() []model.Lesson {
	out := make([]model.Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// Get returns the lesson at index i.
func (c *Catalog) Get(i int) (model.Lesson, bool) {
	if i < 0 || i >= len(c.lessons) {
		return model.Lesson{}, false
	}
	return c.lessons[i], true
}

// Next returns the index after i, wrapping to the first lesson.
func (c *Catalog) Next(i int) int {
	if len(c.lessons) == 0 {
		return 0
	}
	return (i + 1) % len(c.lessons)
}

// Prev returns the index before i, wrapping to the last lesson.
func (c *Catalog) Prev(i int) int {
	n := len(c.lessons)
	if n == 0 {
		return 0
	}
	return ((i-1)%n + n) % n
}
