package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

// Builder assembles a World from configuration calls. Every call validates
// its input; Build reports all problems found along the way at once.
type Builder struct {
	name   string
	rooms  map[string]*Room
	first  *Room
	start  string
	player *actor.Player
	uses   map[useKey]Use
	ending *Ending
	errs   []error
}

// NewBuilder starts an empty world with the given display name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		rooms: make(map[string]*Room),
		uses:  make(map[useKey]Use),
	}
}

func (b *Builder) fail(err error) error {
	b.errs = append(b.errs, err)
	return err
}

func (b *Builder) room(key string) (*Room, error) {
	r, ok := b.rooms[item.Key(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, key)
	}
	return r, nil
}

// AddRoom adds a room. The first room added is the default start.
func (b *Builder) AddRoom(name, key, description string) error {
	if strings.TrimSpace(name) == "" {
		return b.fail(fmt.Errorf("room name cannot be empty"))
	}
	r := NewRoom(name, key, description)
	if _, exists := b.rooms[r.key]; exists {
		return b.fail(fmt.Errorf("%w: %q", ErrDuplicateRoom, r.key))
	}
	b.rooms[r.key] = r
	if b.first == nil {
		b.first = r
	}
	return nil
}

// AddConnection links two existing rooms. The direction is from fromKey's side.
func (b *Builder) AddConnection(fromKey, toKey, direction string, twoWay bool) error {
	var errs []error
	from, err := b.room(fromKey)
	if err != nil {
		errs = append(errs, err)
	}
	to, err := b.room(toKey)
	if err != nil {
		errs = append(errs, err)
	}
	d, err := ParseDirection(direction)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return b.fail(fmt.Errorf("connection %s -> %s: %w", fromKey, toKey, errors.Join(errs...)))
	}
	if twoWay {
		err = from.AddTwoWayConnection(d, to)
	} else {
		err = from.AddOneWayConnection(d, to)
	}
	if err != nil {
		return b.fail(err)
	}
	return nil
}

// AddItem places a new item in a room.
func (b *Builder) AddItem(roomKey string, spec item.Spec) error {
	r, err := b.room(roomKey)
	if err != nil {
		return b.fail(fmt.Errorf("item %q: %w", spec.Name, err))
	}
	it, err := item.FromSpec(spec)
	if err != nil {
		return b.fail(err)
	}
	if err := r.AddItem(it); err != nil {
		return b.fail(err)
	}
	return nil
}

// AddSentient places a creature, with its carried items, in a room.
func (b *Builder) AddSentient(roomKey string, spec actor.Spec, items []item.Spec) error {
	r, err := b.room(roomKey)
	if err != nil {
		return b.fail(fmt.Errorf("sentient %q: %w", spec.Name, err))
	}
	e, err := actor.New(spec)
	if err != nil {
		return b.fail(fmt.Errorf("sentient: %w", err))
	}
	if err := b.fillInventory(e, items); err != nil {
		return b.fail(fmt.Errorf("sentient %q: %w", spec.Name, err))
	}
	if err := r.AddSentient(e); err != nil {
		return b.fail(err)
	}
	return nil
}

// AddPlayer creates the player. An optional weapon name is equipped at start.
func (b *Builder) AddPlayer(spec actor.Spec, items []item.Spec, equip string) error {
	if b.player != nil {
		return b.fail(fmt.Errorf("player already defined"))
	}
	p, err := actor.NewPlayer(spec)
	if err != nil {
		return b.fail(fmt.Errorf("player: %w", err))
	}
	if err := b.fillInventory(p.Entity, items); err != nil {
		return b.fail(fmt.Errorf("player: %w", err))
	}
	if equip != "" {
		if _, err := p.EquipWeapon(equip); err != nil {
			return b.fail(fmt.Errorf("player: %w", err))
		}
	}
	b.player = p
	return nil
}

func (b *Builder) fillInventory(e *actor.Entity, items []item.Spec) error {
	var errs []error
	for _, s := range items {
		it, err := item.FromSpec(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := e.AddItem(it); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddUse binds an item to a room for the use command.
func (b *Builder) AddUse(itemName, roomKey, message string) error {
	r, err := b.room(roomKey)
	if err != nil {
		return b.fail(fmt.Errorf("use %q: %w", itemName, err))
	}
	k := useKey{item.Key(itemName), r.key}
	if k.item == "" {
		return b.fail(fmt.Errorf("use in %q: item name cannot be empty", roomKey))
	}
	if _, exists := b.uses[k]; exists {
		return b.fail(fmt.Errorf("use %q in %q already defined", itemName, roomKey))
	}
	b.uses[k] = Use{Item: k.item, Room: r.key, Message: message}
	return nil
}

// SetEnding declares the victory condition.
func (b *Builder) SetEnding(roomKey string, items []string, text []string) error {
	r, err := b.room(roomKey)
	if err != nil {
		return b.fail(fmt.Errorf("ending: %w", err))
	}
	if len(items) == 0 {
		return b.fail(fmt.Errorf("ending: at least one item is required"))
	}
	keys := make([]string, len(items))
	for i, name := range items {
		keys[i] = item.Key(name)
	}
	b.ending = &Ending{Room: r.key, Items: keys, Text: text}
	return nil
}

// SetStart overrides the starting room.
func (b *Builder) SetStart(roomKey string) error {
	if _, err := b.room(roomKey); err != nil {
		return b.fail(fmt.Errorf("start: %w", err))
	}
	b.start = item.Key(roomKey)
	return nil
}

// Build returns the world, or every configuration error joined together.
func (b *Builder) Build() (*World, error) {
	errs := b.errs
	if len(b.rooms) == 0 {
		errs = append(errs, fmt.Errorf("world has no rooms"))
	}
	if b.player == nil {
		errs = append(errs, ErrNoPlayer)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	start := b.first
	if b.start != "" {
		start = b.rooms[b.start]
	}
	return &World{
		name:   b.name,
		rooms:  b.rooms,
		start:  start,
		player: b.player,
		uses:   b.uses,
		ending: b.ending,
	}, nil
}
