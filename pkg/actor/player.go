package actor

// Player is the entity controlled from the command line, plus its score.
type Player struct {
	*Entity
	score int
}

// NewPlayer builds the player. The player is never hostile.
func NewPlayer(s Spec) (*Player, error) {
	s.Hostile = false
	e, err := New(s)
	if err != nil {
		return nil, err
	}
	return &Player{Entity: e}, nil
}

func (p *Player) Score() int { return p.score }

// AddScore adds points to the running score.
func (p *Player) AddScore(n int) { p.score += n }

// HealthStatus narrates the player's condition. Bands are defined on a
// ten point scale; other maximums are scaled onto it, rounding up.
func (p *Player) HealthStatus() string {
	if p.hp <= 0 {
		return "You have been killed."
	}
	if p.hp >= p.maxHP {
		return "You are feeling healthy."
	}
	scaled := (p.hp*10 + p.maxHP - 1) / p.maxHP
	switch {
	case scaled >= 7:
		return "You feel a little scraped and cut."
	case scaled >= 5:
		return "You are injured."
	case scaled >= 2:
		return "You are seriously injured."
	default:
		return "You are on the verge of death."
	}
}
