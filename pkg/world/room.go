package world

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

// Room is a node of the world graph. It owns the items lying in it and the
// creatures standing in it.
type Room struct {
	name        string
	key         string
	description string
	visited     bool

	exits     map[Direction]*Room
	items     *item.Inventory
	sentients map[string]*actor.Entity
}

// NewRoom creates an empty room. An empty key is derived from the name.
func NewRoom(name, key, description string) *Room {
	if strings.TrimSpace(key) == "" {
		key = name
	}
	return &Room{
		name:        name,
		key:         item.Key(key),
		description: description,
		exits:       make(map[Direction]*Room),
		items:       item.NewInventory(),
		sentients:   make(map[string]*actor.Entity),
	}
}

func (r *Room) Name() string        { return r.name }
func (r *Room) Key() string         { return r.key }
func (r *Room) Description() string { return r.description }
func (r *Room) Visited() bool       { return r.visited }

// Visit marks the room as seen. It never resets.
func (r *Room) Visit() { r.visited = true }

// AddOneWayConnection links this room to another in direction d.
// An existing edge in that direction is replaced.
func (r *Room) AddOneWayConnection(d Direction, to *Room) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, d)
	}
	if to == nil {
		return fmt.Errorf("room %q: cannot connect %s to nil room", r.key, d)
	}
	r.exits[d] = to
	return nil
}

// AddTwoWayConnection links both rooms: d from here, d.Opposite() back.
func (r *Room) AddTwoWayConnection(d Direction, to *Room) error {
	if err := r.AddOneWayConnection(d, to); err != nil {
		return err
	}
	return to.AddOneWayConnection(d.Opposite(), r)
}

// Connection returns the room reached by going d.
func (r *Room) Connection(d Direction) (*Room, bool) {
	to, ok := r.exits[d]
	return to, ok
}

// Exits lists the directions with a connection, in compass order.
func (r *Room) Exits() []Direction {
	var out []Direction
	for _, d := range Directions {
		if _, ok := r.exits[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// AddItem places an item in the room. Duplicate keys are rejected.
func (r *Room) AddItem(it *item.Item) error {
	if err := r.items.Add(it); err != nil {
		return fmt.Errorf("room %q: %w", r.key, err)
	}
	return nil
}

func (r *Room) HasItem(name string) bool { return r.items.Has(name) }

// Item looks up an item lying in the room without removing it.
func (r *Room) Item(name string) (*item.Item, bool) { return r.items.Get(name) }

// Items returns the room's items sorted by key.
func (r *Room) Items() []*item.Item { return r.items.Items() }

// TakeItem removes and returns the item only if it is present and takeable.
func (r *Room) TakeItem(name string) (*item.Item, bool) {
	it, ok := r.items.Get(name)
	if !ok || !it.CanBeTaken() {
		return nil, false
	}
	it, err := r.items.Remove(name)
	if err != nil {
		return nil, false
	}
	return it, true
}

// Corpses returns the corpses lying in the room.
func (r *Room) Corpses() []*item.Item {
	var out []*item.Item
	for _, it := range r.items.Items() {
		if it.IsCorpse() {
			out = append(out, it)
		}
	}
	return out
}

// AddSentient puts a creature in the room. Duplicate keys are rejected.
func (r *Room) AddSentient(e *actor.Entity) error {
	if e == nil {
		return fmt.Errorf("room %q: cannot add nil sentient", r.key)
	}
	if _, exists := r.sentients[e.Key()]; exists {
		return fmt.Errorf("room %q: duplicate sentient %q", r.key, e.Name())
	}
	r.sentients[e.Key()] = e
	return nil
}

func (r *Room) HasSentient(name string) bool {
	_, ok := r.sentients[item.Key(name)]
	return ok
}

// Sentient looks a creature up by name, ignoring case.
func (r *Room) Sentient(name string) (*actor.Entity, bool) {
	e, ok := r.sentients[item.Key(name)]
	return e, ok
}

// Sentients returns the creatures in the room sorted by key, dead or alive.
func (r *Room) Sentients() []*actor.Entity {
	out := make([]*actor.Entity, 0, len(r.sentients))
	for _, e := range r.sentients {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *actor.Entity) int { return strings.Compare(a.Key(), b.Key()) })
	return out
}

// HostileSentients turns every dead creature into a corpse and returns the
// living hostile ones. Each creature becomes a corpse exactly once because it
// leaves the room in the same step.
func (r *Room) HostileSentients() []*actor.Entity {
	var hostile []*actor.Entity
	for _, e := range r.Sentients() {
		if e.IsDead() {
			r.reap(e)
			continue
		}
		if e.IsHostile() {
			hostile = append(hostile, e)
		}
	}
	return hostile
}

func (r *Room) reap(e *actor.Entity) {
	delete(r.sentients, e.Key())
	corpse := actor.NewCorpse(e)
	for n := 2; r.items.Has(corpse.Key()); n++ {
		corpse = item.NewCorpse(fmt.Sprintf("%s %d", e.Name(), n), "", corpse.Contents())
	}
	// The key is free now, so Add cannot fail.
	_ = r.items.Add(corpse)
}

// Look describes the room: description, exits, items and living creatures.
func (r *Room) Look() string {
	var b strings.Builder
	b.WriteString(r.description)

	exits := r.Exits()
	if len(exits) == 0 {
		b.WriteString("\n\nThere are no obvious exits.")
	} else {
		names := make([]string, len(exits))
		for i, d := range exits {
			names[i] = d.String()
		}
		b.WriteString("\n\nExits: " + strings.Join(names, ", "))
	}

	if items := r.items.Items(); len(items) > 0 {
		names := make([]string, len(items))
		for i, it := range items {
			names[i] = it.Article() + " " + it.String()
			if it.Quantity() > 1 {
				names[i] = it.String()
			}
		}
		b.WriteString("\nYou see: " + strings.Join(names, ", ") + ".")
	}

	for _, e := range r.Sentients() {
		if !e.IsDead() {
			b.WriteString("\nThe " + e.Name() + " is here.")
		}
	}
	return b.String()
}
