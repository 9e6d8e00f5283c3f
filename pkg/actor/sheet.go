package actor

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/jwebster45206/d20"
)

// Sheet builds a d20 actor mirroring the entity's current combat state.
// Defense maps onto AC and the weapon bonus becomes a combat modifier.
func (e *Entity) Sheet() (*d20.Actor, error) {
	mods := map[string]int{"base damage": e.damage}
	if e.weapon != nil {
		mods[e.weapon.Key()] = e.weapon.DamageBonus()
	}
	attrs := map[string]int{
		"to_hit": int(math.Round(e.ToHit() * 100)),
	}

	a, err := d20.NewActor(e.key).
		WithHP(e.maxHP).
		WithAC(e.defense).
		WithAttributes(attrs).
		WithCombatModifiers(mods).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet: %w", err)
	}
	if e.hp != e.maxHP && e.hp > 0 {
		if err := a.SetHP(e.hp); err != nil {
			return nil, fmt.Errorf("failed to set HP: %w", err)
		}
	}
	return a, nil
}

// SheetText renders the character sheet for the stats command.
func (e *Entity) SheetText() (string, error) {
	a, err := e.Sheet()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.name)
	fmt.Fprintf(&b, "HP: %d/%d\n", a.HP(), a.MaxHP())
	fmt.Fprintf(&b, "Defense: %d\n", a.AC())
	if v, ok := a.Attribute("to_hit"); ok {
		fmt.Fprintf(&b, "To hit: %d%%\n", v)
	}

	mods := make(map[string]int)
	for _, mod := range a.GetCombatModifiers() {
		mods[mod.Reason] += mod.Value
	}
	reasons := make([]string, 0, len(mods))
	for r := range mods {
		reasons = append(reasons, r)
	}
	slices.Sort(reasons)
	fmt.Fprintf(&b, "Damage: %d", e.Damage())
	for _, r := range reasons {
		fmt.Fprintf(&b, "\n  %s: %+d", r, mods[r])
	}
	return b.String(), nil
}
