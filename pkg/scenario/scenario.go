package scenario

import (
	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

// Room is a location in the scenario. Key defaults to the lowercased name.
type Room struct {
	Key         string `json:"key,omitempty" yaml:"key,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Connection links two rooms. Direction is from From's side; connections
// are two-way unless OneWay is set.
type Connection struct {
	From      string `json:"from" yaml:"from"`
	To        string `json:"to" yaml:"to"`
	Direction string `json:"direction" yaml:"direction"`
	OneWay    bool   `json:"one_way,omitempty" yaml:"one_way,omitempty"`
}

// Placement is an item lying in a room at the start of the game.
type Placement struct {
	Room      string `json:"room" yaml:"room"`
	item.Spec `yaml:",inline"`
}

// Creature is a sentient placed in a room, with the items it carries.
type Creature struct {
	Room       string      `json:"room" yaml:"room"`
	actor.Spec `yaml:",inline"`
	Items      []item.Spec `json:"items,omitempty" yaml:"items,omitempty"`
}

// Player describes the player character. Equip names a carried weapon
// that is active from the start.
type Player struct {
	actor.Spec `yaml:",inline"`
	Items      []item.Spec `json:"items,omitempty" yaml:"items,omitempty"`
	Equip      string      `json:"equip,omitempty" yaml:"equip,omitempty"`
}

// Use lets the player place an item in a room with a message.
type Use struct {
	Item    string `json:"item" yaml:"item"`
	Room    string `json:"room" yaml:"room"`
	Message string `json:"message" yaml:"message"`
}

// Ending wins the game once all Items lie in Room.
type Ending struct {
	Room  string   `json:"room" yaml:"room"`
	Items []string `json:"items" yaml:"items"`
	Text  []string `json:"text" yaml:"text"`
}

// Scenario is the declarative definition of an adventure. FileName is set
// by the loader. Start defaults to the first room.
type Scenario struct {
	Name        string       `json:"name" yaml:"name"`
	FileName    string       `json:"-" yaml:"-"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Start       string       `json:"start,omitempty" yaml:"start,omitempty"`
	Rooms       []Room       `json:"rooms" yaml:"rooms"`
	Connections []Connection `json:"connections,omitempty" yaml:"connections,omitempty"`
	Items       []Placement  `json:"items,omitempty" yaml:"items,omitempty"`
	Sentients   []Creature   `json:"sentients,omitempty" yaml:"sentients,omitempty"`
	Player      *Player      `json:"player" yaml:"player"`
	Uses        []Use        `json:"uses,omitempty" yaml:"uses,omitempty"`
	Ending      *Ending      `json:"ending,omitempty" yaml:"ending,omitempty"`
}
