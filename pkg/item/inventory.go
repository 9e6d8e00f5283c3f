package item

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDuplicate is returned when a container already holds an item with the same key.
	ErrDuplicate = errors.New("duplicate item")
	// ErrNotFound is returned when no item matches the requested key.
	ErrNotFound = errors.New("item not found")
)

// Inventory holds items keyed by their lowercase name. An item belongs to at
// most one inventory at a time.
type Inventory struct {
	items map[string]*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{items: make(map[string]*Item)}
}

// Add inserts the item. Adding a second item with the same key fails.
func (inv *Inventory) Add(it *Item) error {
	if it == nil {
		return fmt.Errorf("cannot add nil item")
	}
	if _, exists := inv.items[it.key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, it.name)
	}
	inv.items[it.key] = it
	return nil
}

// Remove takes the item out of the inventory and returns it.
func (inv *Inventory) Remove(name string) (*Item, error) {
	key := Key(name)
	it, ok := inv.items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(inv.items, key)
	return it, nil
}

// Get looks an item up by name, ignoring case.
func (inv *Inventory) Get(name string) (*Item, bool) {
	it, ok := inv.items[Key(name)]
	return it, ok
}

// Has reports whether an item with that name is present.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.items[Key(name)]
	return ok
}

func (inv *Inventory) Len() int { return len(inv.items) }

// Items returns the contents sorted by key so listings are stable.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, 0, len(inv.items))
	for _, it := range inv.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b *Item) int { return strings.Compare(a.key, b.key) })
	return out
}
