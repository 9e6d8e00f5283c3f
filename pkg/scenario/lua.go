package scenario

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

// LoadLua runs a scenario script. The script describes the adventure by
// calling the functions of the global "adventure" table:
//
//	adventure.name(name, description)
//	adventure.add_room(name, key, description)
//	adventure.add_connection(from, to, direction [, two_way = true])
//	adventure.add_item(room, {name=..., description=..., fixed=..., quantity=..., heals=...})
//	adventure.add_weapon(room, name, description, to_hit_bonus, damage_bonus)
//	adventure.add_sentient(room, {name=..., max_hp=..., defense=..., damage=..., to_hit=..., hostile=..., items={...}})
//	adventure.add_player({name=..., max_hp=..., ..., items={...}, equip=...})
//	adventure.add_use(item, room, message)
//	adventure.set_ending(room, {items...}, {lines...})
//	adventure.set_start(room)
func LoadLua(path string) (*Scenario, error) {
	L := lua.NewState()
	defer L.Close()

	s := &Scenario{}
	sl := &scriptLoader{s: s}
	sl.inject(L)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("load lua file: %w", err)
	}
	if len(sl.errs) > 0 {
		return nil, errors.Join(sl.errs...)
	}
	return s, nil
}

type scriptLoader struct {
	s    *Scenario
	errs []error
}

func (sl *scriptLoader) inject(L *lua.LState) {
	api := L.NewTable()
	fns := map[string]lua.LGFunction{
		"name":           sl.name,
		"add_room":       sl.addRoom,
		"add_connection": sl.addConnection,
		"add_item":       sl.addItem,
		"add_weapon":     sl.addWeapon,
		"add_sentient":   sl.addSentient,
		"add_player":     sl.addPlayer,
		"add_use":        sl.addUse,
		"set_ending":     sl.setEnding,
		"set_start":      sl.setStart,
	}
	for name, fn := range fns {
		L.SetField(api, name, L.NewFunction(fn))
	}
	L.SetGlobal("adventure", api)
}

func (sl *scriptLoader) name(L *lua.LState) int {
	sl.s.Name = L.CheckString(1)
	sl.s.Description = L.OptString(2, "")
	return 0
}

func (sl *scriptLoader) addRoom(L *lua.LState) int {
	sl.s.Rooms = append(sl.s.Rooms, Room{
		Name:        L.CheckString(1),
		Key:         L.OptString(2, ""),
		Description: L.OptString(3, ""),
	})
	return 0
}

func (sl *scriptLoader) addConnection(L *lua.LState) int {
	sl.s.Connections = append(sl.s.Connections, Connection{
		From:      L.CheckString(1),
		To:        L.CheckString(2),
		Direction: L.CheckString(3),
		OneWay:    !L.OptBool(4, true),
	})
	return 0
}

func (sl *scriptLoader) addItem(L *lua.LState) int {
	room := L.CheckString(1)
	spec, err := itemSpec(L.CheckTable(2))
	if err != nil {
		sl.errs = append(sl.errs, fmt.Errorf("add_item in %q: %w", room, err))
		return 0
	}
	sl.s.Items = append(sl.s.Items, Placement{Room: room, Spec: spec})
	return 0
}

func (sl *scriptLoader) addWeapon(L *lua.LState) int {
	sl.s.Items = append(sl.s.Items, Placement{
		Room: L.CheckString(1),
		Spec: item.Spec{
			Name:        L.CheckString(2),
			Description: L.OptString(3, ""),
			Weapon:      true,
			ToHitBonus:  float64(L.OptNumber(4, 0)),
			DamageBonus: L.OptInt(5, 0),
		},
	})
	return 0
}

func (sl *scriptLoader) addSentient(L *lua.LState) int {
	room := L.CheckString(1)
	t := L.CheckTable(2)
	items, err := itemSpecs(t, "items")
	if err != nil {
		sl.errs = append(sl.errs, fmt.Errorf("add_sentient in %q: %w", room, err))
		return 0
	}
	sl.s.Sentients = append(sl.s.Sentients, Creature{
		Room:  room,
		Spec:  actorSpec(t),
		Items: items,
	})
	return 0
}

func (sl *scriptLoader) addPlayer(L *lua.LState) int {
	t := L.CheckTable(1)
	items, err := itemSpecs(t, "items")
	if err != nil {
		sl.errs = append(sl.errs, fmt.Errorf("add_player: %w", err))
		return 0
	}
	if sl.s.Player != nil {
		sl.errs = append(sl.errs, fmt.Errorf("add_player: player already defined"))
		return 0
	}
	sl.s.Player = &Player{
		Spec:  actorSpec(t),
		Items: items,
		Equip: getString(t, "equip"),
	}
	return 0
}

func (sl *scriptLoader) addUse(L *lua.LState) int {
	sl.s.Uses = append(sl.s.Uses, Use{
		Item:    L.CheckString(1),
		Room:    L.CheckString(2),
		Message: L.CheckString(3),
	})
	return 0
}

func (sl *scriptLoader) setEnding(L *lua.LState) int {
	sl.s.Ending = &Ending{
		Room:  L.CheckString(1),
		Items: tableStrings(L.CheckTable(2)),
		Text:  tableStrings(L.OptTable(3, L.NewTable())),
	}
	return 0
}

func (sl *scriptLoader) setStart(L *lua.LState) int {
	sl.s.Start = L.CheckString(1)
	return 0
}

func itemSpec(t *lua.LTable) (item.Spec, error) {
	s := item.Spec{
		Name:        getString(t, "name"),
		Description: getString(t, "description"),
		Quantity:    int(getNumber(t, "quantity")),
		Fixed:       getBool(t, "fixed"),
		Heals:       int(getNumber(t, "heals")),
		Weapon:      getBool(t, "weapon"),
		ToHitBonus:  getNumber(t, "to_hit_bonus"),
		DamageBonus: int(getNumber(t, "damage_bonus")),
	}
	if s.Name == "" {
		return s, fmt.Errorf("item table needs a name")
	}
	return s, nil
}

func itemSpecs(t *lua.LTable, key string) ([]item.Spec, error) {
	v, ok := t.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil, nil
	}
	var (
		out  []item.Spec
		errs []error
	)
	v.ForEach(func(k, x lua.LValue) {
		it, ok := x.(*lua.LTable)
		if !ok {
			errs = append(errs, fmt.Errorf("%s[%s] is not a table", key, lua.LVAsString(k)))
			return
		}
		s, err := itemSpec(it)
		if err != nil {
			errs = append(errs, err)
			return
		}
		out = append(out, s)
	})
	return out, errors.Join(errs...)
}

func actorSpec(t *lua.LTable) actor.Spec {
	return actor.Spec{
		Name:        getString(t, "name"),
		Description: getString(t, "description"),
		HP:          int(getNumber(t, "hp")),
		MaxHP:       int(getNumber(t, "max_hp")),
		Defense:     int(getNumber(t, "defense")),
		Damage:      int(getNumber(t, "damage")),
		ToHit:       getNumber(t, "to_hit"),
		Hostile:     getBool(t, "hostile"),
	}
}

func getString(t *lua.LTable, key string) string {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func getNumber(t *lua.LTable, key string) float64 {
	if n, ok := t.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

func getBool(t *lua.LTable, key string) bool {
	return lua.LVAsBool(t.RawGetString(key))
}

func tableStrings(t *lua.LTable) []string {
	var out []string
	t.ForEach(func(_, x lua.LValue) {
		if s, ok := x.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}
