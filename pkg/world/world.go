package world

import (
	"errors"
	"slices"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

var (
	// ErrUnknownRoom is returned when a room key is not part of the world.
	ErrUnknownRoom = errors.New("unknown room")
	// ErrDuplicateRoom is returned when two rooms share a key.
	ErrDuplicateRoom = errors.New("duplicate room")
	// ErrNoPlayer is returned when a world is built without a player.
	ErrNoPlayer = errors.New("world has no player")
)

// Use binds an item to a room: using the item there places it in the room
// and prints the message.
type Use struct {
	Item    string
	Room    string
	Message string
}

// Ending is reached when every listed item lies in the ending room.
type Ending struct {
	Room  string
	Items []string
	Text  []string
}

// World is a fully built room graph with its player.
type World struct {
	name   string
	rooms  map[string]*Room
	start  *Room
	player *actor.Player
	uses   map[useKey]Use
	ending *Ending
}

type useKey struct{ item, room string }

func (w *World) Name() string          { return w.name }
func (w *World) Start() *Room          { return w.start }
func (w *World) Player() *actor.Player { return w.player }

// Room looks a room up by its engine key, ignoring case.
func (w *World) Room(key string) (*Room, bool) {
	r, ok := w.rooms[item.Key(key)]
	return r, ok
}

// Rooms returns every room sorted by key.
func (w *World) Rooms() []*Room {
	out := make([]*Room, 0, len(w.rooms))
	for _, r := range w.rooms {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *Room) int { return strings.Compare(a.key, b.key) })
	return out
}

// UseFor returns the binding for using an item in a room.
func (w *World) UseFor(itemName string, r *Room) (Use, bool) {
	if r == nil {
		return Use{}, false
	}
	u, ok := w.uses[useKey{item.Key(itemName), r.key}]
	return u, ok
}

// Ending returns the configured ending, if any.
func (w *World) Ending() (Ending, bool) {
	if w.ending == nil {
		return Ending{}, false
	}
	return *w.ending, true
}

// EndingReached reports whether the ending room holds all required items.
func (w *World) EndingReached() bool {
	if w.ending == nil {
		return false
	}
	r, ok := w.rooms[w.ending.Room]
	if !ok {
		return false
	}
	for _, name := range w.ending.Items {
		if !r.HasItem(name) {
			return false
		}
	}
	return true
}
