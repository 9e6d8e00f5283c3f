package command

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

type Type string

const (
	CmdQuit      Type = "quit"
	CmdHelp      Type = "help"
	CmdGo        Type = "go"
	CmdTake      Type = "take"
	CmdDrop      Type = "drop"
	CmdUse       Type = "use"
	CmdLookAt    Type = "look at"
	CmdLook      Type = "look"
	CmdInventory Type = "inventory"
	CmdScore     Type = "score"
	CmdStats     Type = "stats"
	CmdUnequip   Type = "unequip"
	CmdEquip     Type = "equip"
	CmdAttack    Type = "attack"
	CmdNone      Type = "" // not understood
)

// Command is a parsed input line. Arg is lowercased with single spaces.
// Direction is set only for a CmdGo naming a valid direction.
type Command struct {
	Type      Type
	Arg       string
	Direction world.Direction
}

var verbs = map[string]Type{
	"take":      CmdTake,
	"get":       CmdTake,
	"drop":      CmdDrop,
	"use":       CmdUse,
	"examine":   CmdLookAt,
	"x":         CmdLookAt,
	"look":      CmdLook,
	"l":         CmdLook,
	"inventory": CmdInventory,
	"inv":       CmdInventory,
	"i":         CmdInventory,
	"score":     CmdScore,
	"stats":     CmdStats,
	"unequip":   CmdUnequip,
	"equip":     CmdEquip,
	"wield":     CmdEquip,
	"attack":    CmdAttack,
	"kill":      CmdAttack,
}

// Parse turns one input line into a command. The first matching rule wins:
// quit, help, movement, then the verb table keyed on the first word.
func Parse(input string) Command {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Command{}
	}
	line := strings.Join(fields, " ")

	switch line {
	case "quit", "exit":
		return Command{Type: CmdQuit}
	case "help", "?":
		return Command{Type: CmdHelp}
	}

	if d, err := world.ParseDirection(line); err == nil {
		return Command{Type: CmdGo, Arg: d.String(), Direction: d}
	}
	if fields[0] == "go" {
		return Command{Type: CmdGo, Arg: strings.Join(fields[1:], " ")}
	}

	verb, ok := verbs[fields[0]]
	if !ok {
		return Command{}
	}
	arg := strings.Join(fields[1:], " ")

	switch verb {
	case CmdLook:
		if arg == "" {
			return Command{Type: CmdLook}
		}
		// "look at x" and "look x" both examine x.
		if len(fields) > 1 && fields[1] == "at" {
			arg = strings.Join(fields[2:], " ")
		}
		return Command{Type: CmdLookAt, Arg: arg}
	case CmdInventory, CmdScore, CmdStats, CmdUnequip:
		if arg != "" {
			return Command{}
		}
	}
	return Command{Type: verb, Arg: arg}
}

// Help lists the commands the interpreter understands.
const Help = `***** LIST OF COMMANDS *****
help/? - displays this menu
go [direction] - goes in that direction (n, ne, e, se, s, sw, w, nw, up, down)
take [item] - takes the item requested, also from corpses
drop [item] - drops the item from the inventory
use [item] - uses the item requested
look - shows what the current area looks like
look at [thing] - describes an item or creature
inventory/i - displays the player's inventory
score - displays your current score
stats - displays your character sheet
equip [weapon] - equips the weapon requested
unequip - puts the current weapon away
attack [creature] - attacks a creature in the room
quit/exit - leaves the game`
