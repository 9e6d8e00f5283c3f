package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/command"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

// Handle parses and executes one command. User mistakes produce a line of
// feedback and never end the game.
func (e *Engine) Handle(line string) {
	if e.state == GameOver {
		return
	}
	cmd := command.Parse(line)
	e.log.Debug("command", "type", string(cmd.Type), "arg", cmd.Arg)

	switch cmd.Type {
	case command.CmdQuit:
		e.println("Exiting the game.")
		e.end(OutcomeQuit)
	case command.CmdHelp:
		e.println(command.Help)
	case command.CmdGo:
		e.goTo(cmd)
	case command.CmdTake:
		e.take(cmd.Arg)
	case command.CmdDrop:
		e.drop(cmd.Arg)
	case command.CmdUse:
		e.use(cmd.Arg)
	case command.CmdLookAt:
		e.lookAt(cmd.Arg)
	case command.CmdLook:
		e.println(e.current.Look())
	case command.CmdInventory:
		e.inventory()
	case command.CmdScore:
		e.println(fmt.Sprintf("Your score: %d", e.player.Score()))
	case command.CmdStats:
		e.stats()
	case command.CmdUnequip:
		if w, ok := e.player.Unequip(); ok {
			e.println("You put away the " + w.Name() + ".")
		} else {
			e.println("You have nothing equipped.")
		}
	case command.CmdEquip:
		e.equip(cmd.Arg)
	case command.CmdAttack:
		e.attack(cmd.Arg)
	default:
		e.println("I don't understand that.")
	}
}

func (e *Engine) goTo(cmd command.Command) {
	if cmd.Arg == "" {
		e.println("Go where?")
		return
	}
	if cmd.Direction == "" {
		e.println("It isn't possible to go that way.")
		return
	}
	to, ok := e.current.Connection(cmd.Direction)
	if !ok {
		e.println("It isn't possible to go that way.")
		return
	}
	e.log.Debug("move", "from", e.current.Key(), "to", to.Key(), "direction", cmd.Direction.String())
	e.current = to
}

func (e *Engine) take(name string) {
	if name == "" {
		e.println("Take what?")
		return
	}
	if it, ok := e.current.Item(name); ok {
		if !it.CanBeTaken() {
			e.println("You cannot take that.")
			return
		}
		if e.player.HasItem(name) {
			e.println("You already carry one.")
			return
		}
		it, _ = e.current.TakeItem(name)
		e.carry(it)
		return
	}
	for _, c := range e.current.Corpses() {
		if !c.Contents().Has(name) {
			continue
		}
		if e.player.HasItem(name) {
			e.println("You already carry one.")
			return
		}
		it, err := c.Contents().Remove(name)
		if err != nil {
			e.log.Error("failed to loot corpse", "corpse", c.Key(), "error", err)
			return
		}
		e.carry(it)
		return
	}
	e.println("There is no " + name + " here.")
}

func (e *Engine) carry(it *item.Item) {
	if err := e.player.AddItem(it); err != nil {
		e.log.Error("failed to add item to inventory", "item", it.Key(), "error", err)
		return
	}
	e.println("Taken.")
}

func (e *Engine) drop(name string) {
	if name == "" {
		e.println("Drop what?")
		return
	}
	if !e.player.HasItem(name) {
		e.println("You don't have that item.")
		return
	}
	if e.current.HasItem(name) {
		e.println("There is already one here.")
		return
	}
	it, err := e.player.DropItem(name)
	if err != nil {
		e.println("You don't have that item.")
		return
	}
	if err := e.current.AddItem(it); err != nil {
		e.log.Error("failed to drop item", "item", it.Key(), "error", err)
		_ = e.player.AddItem(it)
		return
	}
	e.println("Dropped.")
}

func (e *Engine) use(name string) {
	if name == "" {
		e.println("Use what?")
		return
	}
	it, ok := e.player.Inventory().Get(name)
	if !ok {
		e.println("You do not have that item.")
		return
	}

	if it.Heals() > 0 {
		if e.player.HP() >= e.player.MaxHP() {
			e.println("You are already at full health.")
			return
		}
		gained := e.player.Heal(it.Heals())
		if it.Quantity() > 1 {
			_ = it.SetQuantity(it.Quantity() - 1)
		} else {
			_, _ = e.player.DropItem(name)
		}
		e.println(fmt.Sprintf("You use the %s and recover %d HP.", it.Name(), gained))
		e.println(e.player.HealthStatus())
		return
	}

	u, ok := e.world.UseFor(name, e.current)
	if !ok || e.current.HasItem(name) {
		e.println("You cannot use that here.")
		return
	}
	if _, err := e.player.DropItem(name); err != nil {
		e.println("You do not have that item.")
		return
	}
	if err := e.current.AddItem(it); err != nil {
		e.log.Error("failed to place used item", "item", it.Key(), "error", err)
		_ = e.player.AddItem(it)
		return
	}
	e.println(u.Message)
	e.checkEnding()
}

func (e *Engine) checkEnding() {
	if !e.world.EndingReached() {
		return
	}
	end, _ := e.world.Ending()
	for _, line := range end.Text {
		e.println(line + "\n")
	}
	e.println(fmt.Sprintf("YOUR SCORE: %d", e.player.Score()))
	e.end(OutcomeWon)
}

func (e *Engine) lookAt(name string) {
	if name == "" {
		e.println("Look at what?")
		return
	}
	if it, ok := e.current.Item(name); ok {
		e.println(describeItem(it))
		return
	}
	if s, ok := e.current.Sentient(name); ok && !s.IsDead() {
		if s.Description() == "" {
			e.println("It's the " + s.Name() + ".")
		} else {
			e.println(s.Description())
		}
		return
	}
	for _, c := range e.current.Corpses() {
		if it, ok := c.Contents().Get(name); ok {
			e.println(describeItem(it))
			return
		}
	}
	if it, ok := e.player.Inventory().Get(name); ok {
		e.println(describeItem(it))
		return
	}
	e.println("You see no " + name + " here.")
}

func describeItem(it *item.Item) string {
	desc := it.Description()
	if desc == "" {
		desc = "You see nothing special about the " + it.Name() + "."
	}
	if !it.IsCorpse() {
		return desc
	}
	contents := it.Contents().Items()
	if len(contents) == 0 {
		return desc + "\nIt has nothing on it."
	}
	names := make([]string, len(contents))
	for i, c := range contents {
		names[i] = c.String()
	}
	return desc + "\nOn it you find: " + strings.Join(names, ", ") + "."
}

func (e *Engine) inventory() {
	items := e.player.Inventory().Items()
	if len(items) == 0 {
		e.println("You are not carrying anything.")
		return
	}
	weapon, _ := e.player.Weapon()
	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, it := range items {
		b.WriteString("\n  " + it.String())
		if it == weapon {
			b.WriteString(" (equipped)")
		}
	}
	e.println(b.String())
}

func (e *Engine) stats() {
	text, err := e.player.SheetText()
	if err != nil {
		e.log.Warn("failed to build character sheet", "error", err)
		text = fmt.Sprintf("%s\nHP: %d/%d\nDefense: %d\nDamage: %d",
			e.player.Name(), e.player.HP(), e.player.MaxHP(), e.player.Defense(), e.player.Damage())
	}
	e.println(text + fmt.Sprintf("\nScore: %d", e.player.Score()))
}

func (e *Engine) equip(name string) {
	if name == "" {
		e.println("Equip what?")
		return
	}
	w, err := e.player.EquipWeapon(name)
	switch {
	case errors.Is(err, actor.ErrNotWeapon):
		e.println("You cannot equip that.")
	case err != nil:
		e.println("You do not have that item.")
	default:
		e.println("You equip the " + w.Name() + ".")
	}
}

func (e *Engine) attack(name string) {
	var target *actor.Entity
	if name == "" {
		hostiles := e.current.HostileSentients()
		if len(hostiles) == 0 {
			e.println("There is nothing to attack!")
			return
		}
		target = hostiles[0]
	} else {
		s, ok := e.current.Sentient(name)
		if !ok || s.IsDead() {
			e.println("There is no " + name + " here.")
			return
		}
		target = s
	}

	target.SetHostile(true)
	res := e.player.Attack(target, e.roller)
	e.log.Debug("player attack", "target", target.Key(), "hit", res.Hit, "damage", res.Damage, "target_hp", target.HP())
	if !res.Hit {
		e.println("You missed the " + target.Name() + ".")
		return
	}
	e.println("You hit the " + target.Name() + "!")
	if res.Killed {
		e.println("The " + target.Name() + " is dead.")
		e.player.AddScore(5)
		e.log.Info("creature killed", "creature", target.Key(), "room", e.current.Key())
	}
}
