package actor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/item"
)

// ErrNotWeapon is returned when equipping an item that is not a weapon.
var ErrNotWeapon = errors.New("item is not a weapon")

// Spec is the serializable definition of a creature or the player.
type Spec struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	HP          int     `json:"hp,omitempty" yaml:"hp,omitempty"` // starting HP, defaults to MaxHP
	MaxHP       int     `json:"max_hp" yaml:"max_hp"`
	Defense     int     `json:"defense,omitempty" yaml:"defense,omitempty"`
	Damage      int     `json:"damage,omitempty" yaml:"damage,omitempty"`
	ToHit       float64 `json:"to_hit" yaml:"to_hit"` // probability in [0,1]
	Hostile     bool    `json:"hostile,omitempty" yaml:"hostile,omitempty"`
}

// Validate reports every problem with the definition at once.
func (s Spec) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, fmt.Errorf("name cannot be empty"))
	}
	if s.MaxHP <= 0 {
		errs = append(errs, fmt.Errorf("%q: max_hp must be positive, got %d", s.Name, s.MaxHP))
	}
	if s.HP < 0 || s.HP > s.MaxHP {
		errs = append(errs, fmt.Errorf("%q: hp must be between 0 and max_hp, got %d", s.Name, s.HP))
	}
	if s.Defense < 0 {
		errs = append(errs, fmt.Errorf("%q: defense cannot be negative", s.Name))
	}
	if s.Damage < 0 {
		errs = append(errs, fmt.Errorf("%q: damage cannot be negative", s.Name))
	}
	if s.ToHit < 0 || s.ToHit > 1 {
		errs = append(errs, fmt.Errorf("%q: to_hit must be within [0,1], got %g", s.Name, s.ToHit))
	}
	return errors.Join(errs...)
}

// Entity is any living thing in the world: the player or a creature.
// HP stays within [0, MaxHP]; an entity is dead once HP reaches 0.
type Entity struct {
	name        string
	key         string
	description string

	hp      int
	maxHP   int
	defense int
	damage  int
	toHit   float64
	hostile bool

	inventory *item.Inventory
	weapon    *item.Item
}

// New builds an entity from its spec. A zero HP means full health.
func New(s Spec) (*Entity, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	hp := s.HP
	if hp == 0 {
		hp = s.MaxHP
	}
	return &Entity{
		name:        s.Name,
		key:         item.Key(s.Name),
		description: s.Description,
		hp:          hp,
		maxHP:       s.MaxHP,
		defense:     s.Defense,
		damage:      s.Damage,
		toHit:       s.ToHit,
		hostile:     s.Hostile,
		inventory:   item.NewInventory(),
	}, nil
}

func (e *Entity) Name() string        { return e.name }
func (e *Entity) Key() string         { return e.key }
func (e *Entity) Description() string { return e.description }
func (e *Entity) HP() int             { return e.hp }
func (e *Entity) MaxHP() int          { return e.maxHP }
func (e *Entity) Defense() int        { return e.defense }
func (e *Entity) IsHostile() bool     { return e.hostile }

// SetHostile turns a creature against the player, or calms it down.
func (e *Entity) SetHostile(h bool) { e.hostile = h }

// IsDead returns true if HP is 0 or less.
func (e *Entity) IsDead() bool { return e.hp <= 0 }

// BaseDamage is the damage dealt without a weapon.
func (e *Entity) BaseDamage() int { return e.damage }

// BaseToHit is the hit probability without a weapon.
func (e *Entity) BaseToHit() float64 { return e.toHit }

// Damage is the damage dealt on a hit, including the equipped weapon's bonus.
func (e *Entity) Damage() int {
	if e.weapon != nil {
		return e.damage + e.weapon.DamageBonus()
	}
	return e.damage
}

// ToHit is the hit probability including the equipped weapon's bonus.
// The sum is not clamped; anything at or above 1 always hits.
func (e *Entity) ToHit() float64 {
	if e.weapon != nil {
		return e.toHit + e.weapon.ToHitBonus()
	}
	return e.toHit
}

// TakeDamage applies damage reduced by defense and returns the HP actually lost.
// HP cannot go below 0.
func (e *Entity) TakeDamage(amount int) int {
	effective := amount - e.defense
	if effective <= 0 {
		return 0
	}
	if effective > e.hp {
		effective = max(e.hp, 0)
	}
	e.hp -= effective
	return effective
}

// Heal restores HP and returns the amount gained.
// HP cannot exceed MaxHP.
func (e *Entity) Heal(amount int) int {
	if amount <= 0 || e.hp >= e.maxHP {
		return 0
	}
	before := e.hp
	e.hp = min(e.maxHP, e.hp+amount)
	return e.hp - before
}

// AttackResult describes a single swing.
type AttackResult struct {
	Hit    bool
	Damage int // HP the target actually lost
	Killed bool
}

// Attack rolls once against the attacker's effective to-hit probability and
// damages the target on a hit.
func (e *Entity) Attack(target *Entity, r Roller) AttackResult {
	if target == nil || target.IsDead() {
		return AttackResult{}
	}
	if r.Float64() >= e.ToHit() {
		return AttackResult{}
	}
	lost := target.TakeDamage(e.Damage())
	return AttackResult{Hit: true, Damage: lost, Killed: target.IsDead()}
}

// Inventory exposes the carried items.
func (e *Entity) Inventory() *item.Inventory { return e.inventory }

// AddItem puts an item into the inventory. Keys are unique per inventory.
func (e *Entity) AddItem(it *item.Item) error {
	return e.inventory.Add(it)
}

// HasItem reports whether the entity carries an item with that name.
func (e *Entity) HasItem(name string) bool { return e.inventory.Has(name) }

// DropItem removes an item from the inventory and returns it.
// Dropping the equipped weapon unequips it first.
func (e *Entity) DropItem(name string) (*item.Item, error) {
	it, err := e.inventory.Remove(name)
	if err != nil {
		return nil, err
	}
	if e.weapon == it {
		e.weapon = nil
	}
	return it, nil
}

// Weapon returns the equipped weapon, if any.
func (e *Entity) Weapon() (*item.Item, bool) {
	return e.weapon, e.weapon != nil
}

// EquipWeapon makes a carried weapon active, replacing the current one.
func (e *Entity) EquipWeapon(name string) (*item.Item, error) {
	it, ok := e.inventory.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", item.ErrNotFound, name)
	}
	if !it.IsWeapon() {
		return nil, fmt.Errorf("%w: %q", ErrNotWeapon, it.Name())
	}
	e.weapon = it
	return it, nil
}

// Unequip removes the active weapon. Returns false when nothing was equipped.
func (e *Entity) Unequip() (*item.Item, bool) {
	w := e.weapon
	e.weapon = nil
	return w, w != nil
}

// SurrenderInventory hands the whole inventory to the caller and leaves the
// entity empty-handed.
func (e *Entity) SurrenderInventory() *item.Inventory {
	inv := e.inventory
	e.inventory = item.NewInventory()
	e.weapon = nil
	return inv
}

// NewCorpse turns a dead entity into a corpse holding its former inventory.
func NewCorpse(e *Entity) *item.Item {
	return item.NewCorpse(e.name, "", e.SurrenderInventory())
}
