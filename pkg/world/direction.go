package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for strings that name no direction.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction labels an edge of the room graph.
type Direction string

const (
	North     Direction = "north"
	NorthEast Direction = "north east"
	East      Direction = "east"
	SouthEast Direction = "south east"
	South     Direction = "south"
	SouthWest Direction = "south west"
	West      Direction = "west"
	NorthWest Direction = "north west"
	Up        Direction = "up"
	Down      Direction = "down"
)

// Directions lists every direction in compass order, then vertical.
var Directions = []Direction{
	North, NorthEast, East, SouthEast,
	South, SouthWest, West, NorthWest,
	Up, Down,
}

var directionAliases = map[string]Direction{
	"n": North, "north": North,
	"ne": NorthEast, "northeast": NorthEast, "north east": NorthEast,
	"e": East, "east": East,
	"se": SouthEast, "southeast": SouthEast, "south east": SouthEast,
	"s": South, "south": South,
	"sw": SouthWest, "southwest": SouthWest, "south west": SouthWest,
	"w": West, "west": West,
	"nw": NorthWest, "northwest": NorthWest, "north west": NorthWest,
	"u": Up, "up": Up,
	"d": Down, "down": Down,
}

// ParseDirection accepts short codes ("ne"), long forms ("north east",
// "northeast") and an optional leading "go". Case and extra spaces are ignored.
func ParseDirection(s string) (Direction, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) > 1 && fields[0] == "go" {
		fields = fields[1:]
	}
	if d, ok := directionAliases[strings.Join(fields, " ")]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Opposite returns the reverse direction. Opposite(Opposite(d)) == d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case East:
		return West
	case West:
		return East
	case SouthEast:
		return NorthWest
	case NorthWest:
		return SouthEast
	case Up:
		return Down
	case Down:
		return Up
	}
	return ""
}

// Valid reports whether d is one of the ten known directions.
func (d Direction) Valid() bool {
	return d.Opposite() != ""
}

func (d Direction) String() string { return string(d) }
