package item

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind distinguishes the item variants the engine knows about.
type Kind string

const (
	KindItem   Kind = "item"
	KindWeapon Kind = "weapon"
	KindCorpse Kind = "corpse"
)

// Spec is the serializable definition of an item, as found in scenario files.
type Spec struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Quantity    int     `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Fixed       bool    `json:"fixed,omitempty" yaml:"fixed,omitempty"` // cannot be taken (inscriptions, furniture)
	Heals       int     `json:"heals,omitempty" yaml:"heals,omitempty"`
	Weapon      bool    `json:"weapon,omitempty" yaml:"weapon,omitempty"`
	ToHitBonus  float64 `json:"to_hit_bonus,omitempty" yaml:"to_hit_bonus,omitempty"`
	DamageBonus int     `json:"damage_bonus,omitempty" yaml:"damage_bonus,omitempty"`
}

// Item is an object in the world. Name, key and kind never change after
// construction; quantity and description have explicit setters.
type Item struct {
	name        string
	key         string
	description string
	quantity    int
	takeable    bool
	kind        Kind
	heals       int

	toHitBonus  float64
	damageBonus int

	contents *Inventory // corpses only
}

// Key returns the lookup key for a display name: trimmed and lowercased.
// Every name-based lookup in the engine goes through this function.
func Key(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// New creates a plain item with a quantity of one.
func New(name, description string, takeable bool) *Item {
	return &Item{
		name:        name,
		key:         Key(name),
		description: description,
		quantity:    1,
		takeable:    takeable,
		kind:        KindItem,
	}
}

// NewWeapon creates a takeable weapon carrying equip bonuses.
func NewWeapon(name, description string, toHitBonus float64, damageBonus int) *Item {
	w := New(name, description, true)
	w.kind = KindWeapon
	w.toHitBonus = toHitBonus
	w.damageBonus = damageBonus
	return w
}

// NewCorpse creates the remains of a dead creature. The corpse owns the
// given inventory from now on; callers must not keep using it elsewhere.
func NewCorpse(creatureName, description string, contents *Inventory) *Item {
	if contents == nil {
		contents = NewInventory()
	}
	if description == "" {
		description = fmt.Sprintf("This is the corpse of %s.", creatureName)
	}
	c := New(creatureName+" corpse", description, false)
	c.kind = KindCorpse
	c.contents = contents
	return c
}

// FromSpec builds an item from its serialized definition.
func FromSpec(s Spec) (*Item, error) {
	if strings.TrimSpace(s.Name) == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}
	if s.Quantity < 0 {
		return nil, fmt.Errorf("item %q: quantity cannot be negative", s.Name)
	}
	if s.Heals < 0 {
		return nil, fmt.Errorf("item %q: heals cannot be negative", s.Name)
	}

	var it *Item
	if s.Weapon {
		if s.Fixed {
			return nil, fmt.Errorf("item %q: a weapon cannot be fixed in place", s.Name)
		}
		it = NewWeapon(s.Name, s.Description, s.ToHitBonus, s.DamageBonus)
	} else {
		if s.ToHitBonus != 0 || s.DamageBonus != 0 {
			return nil, fmt.Errorf("item %q: bonuses require weapon: true", s.Name)
		}
		it = New(s.Name, s.Description, !s.Fixed)
	}
	it.heals = s.Heals
	if s.Quantity > 0 {
		it.quantity = s.Quantity
	}
	return it, nil
}

func (i *Item) Name() string        { return i.name }
func (i *Item) Key() string         { return i.key }
func (i *Item) Description() string { return i.description }
func (i *Item) Quantity() int       { return i.quantity }
func (i *Item) Kind() Kind          { return i.kind }
func (i *Item) CanBeTaken() bool    { return i.takeable }
func (i *Item) IsWeapon() bool      { return i.kind == KindWeapon }
func (i *Item) IsCorpse() bool      { return i.kind == KindCorpse }

// Heals is the number of hit points restored by using one of this item.
func (i *Item) Heals() int { return i.heals }

// ToHitBonus and DamageBonus are zero for anything but a weapon.
func (i *Item) ToHitBonus() float64 { return i.toHitBonus }
func (i *Item) DamageBonus() int    { return i.damageBonus }

// Contents returns the loot held by a corpse, or nil for other items.
func (i *Item) Contents() *Inventory { return i.contents }

// SetDescription replaces the description text.
func (i *Item) SetDescription(d string) { i.description = d }

// SetQuantity changes the stack size. Quantities below one are rejected.
func (i *Item) SetQuantity(n int) error {
	if n < 1 {
		return fmt.Errorf("item %q: quantity must be at least 1, got %d", i.name, n)
	}
	i.quantity = n
	return nil
}

// String renders the item for inventory listings, e.g. "Machete" or "3 Apple".
func (i *Item) String() string {
	if i.quantity > 1 {
		return fmt.Sprintf("%d %s", i.quantity, i.name)
	}
	return i.name
}

// Article returns "a" or "an" for the item's name.
func (i *Item) Article() string {
	if i.key == "" {
		return "a"
	}
	switch i.key[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
