package catalog

import "strconv"

// Item is implemented by every catalog record kind.
type Item interface {
	// Key is the item's identifier in canonical string form.
	Key() string
	// Class is the grouping field used for related-item lookups.
	Class() string
}

// Catalog is a read-only collection of one item kind. Loaded once at
// startup and never mutated afterwards, so it is safe for concurrent reads.
type Catalog[T Item] struct {
	items     []T
	index     map[string]int
	normalize func(raw string) (string, bool)
}

// New builds a catalog over string-identified items.
func New[T Item](items []T) *Catalog[T] {
	return build(items, func(raw string) (string, bool) {
		return raw, raw != ""
	})
}

// NewNumeric builds a catalog over numerically-identified items. Requested
// identifiers are normalized via integer parse; a malformed identifier is a
// lookup miss, never an error.
func NewNumeric[T Item](items []T) *Catalog[T] {
	return build(items, func(raw string) (string, bool) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", false
		}
		return strconv.Itoa(n), true
	})
}

func build[T Item](items []T, normalize func(string) (string, bool)) *Catalog[T] {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item.Key()] = i
	}
	return &Catalog[T]{
		items:     items,
		index:     index,
		normalize: normalize,
	}
}

// All returns every item in original catalog order.
func (c *Catalog[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog[T]) Len() int { return len(c.items) }

// FindByID resolves a requested identifier against the catalog. The raw
// identifier is normalized to the catalog's id type first.
func (c *Catalog[T]) FindByID(raw string) (T, bool) {
	var zero T

	key, ok := c.normalize(raw)
	if !ok {
		return zero, false
	}

	i, ok := c.index[key]
	if !ok {
		return zero, false
	}
	return c.items[i], true
}

// Related returns all other entries sharing the resolved item's class, in
// original catalog order, excluding the item itself. A lookup miss yields nil.
func (c *Catalog[T]) Related(raw string) []T {
	item, ok := c.FindByID(raw)
	if !ok {
		return nil
	}

	var related []T
	for _, other := range c.items {
		if other.Key() == item.Key() {
			continue
		}
		if other.Class() == item.Class() {
			related = append(related, other)
		}
	}
	return related
}
