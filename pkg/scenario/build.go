package scenario

import (
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Build turns the scenario into a playable world. All configuration
// problems are returned together.
func Build(s *Scenario) (*world.World, error) {
	b := world.NewBuilder(s.Name)

	// Builder calls record their own errors; Build reports them all.
	for _, r := range s.Rooms {
		_ = b.AddRoom(r.Name, r.Key, r.Description)
	}
	for _, c := range s.Connections {
		_ = b.AddConnection(c.From, c.To, c.Direction, !c.OneWay)
	}
	for _, p := range s.Items {
		_ = b.AddItem(p.Room, p.Spec)
	}
	for _, c := range s.Sentients {
		_ = b.AddSentient(c.Room, c.Spec, c.Items)
	}
	if s.Player != nil {
		_ = b.AddPlayer(s.Player.Spec, s.Player.Items, s.Player.Equip)
	}
	for _, u := range s.Uses {
		_ = b.AddUse(u.Item, u.Room, u.Message)
	}
	if s.Ending != nil {
		_ = b.SetEnding(s.Ending.Room, s.Ending.Items, s.Ending.Text)
	}
	if s.Start != "" {
		_ = b.SetStart(s.Start)
	}
	return b.Build()
}
