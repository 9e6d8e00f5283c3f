package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

func newTwoRoomBuilder(t *testing.T) *Builder {
	t.Helper()
	b := NewBuilder("test")
	require.NoError(t, b.AddRoom("Apartment", "apartment", "Home."))
	require.NoError(t, b.AddRoom("Outside", "outside", "The street."))
	require.NoError(t, b.AddConnection("apartment", "outside", "s", true))
	require.NoError(t, b.AddPlayer(actor.Spec{Name: "Andre", MaxHP: 10, ToHit: 0.5}, nil, ""))
	return b
}

func TestBuilder_Build(t *testing.T) {
	b := newTwoRoomBuilder(t)
	require.NoError(t, b.AddItem("outside", item.Spec{Name: "Machete", Weapon: true, DamageBonus: 3}))
	require.NoError(t, b.AddSentient("Outside", actor.Spec{Name: "Mean Bird", MaxHP: 3, Hostile: true}, []item.Spec{{Name: "Feather"}}))

	w, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "apartment", w.Start().Key(), "first room is the default start")
	assert.Equal(t, "Andre", w.Player().Name())

	out, ok := w.Room("OUTSIDE")
	require.True(t, ok)
	assert.True(t, out.HasItem("machete"))
	bird, ok := out.Sentient("mean bird")
	require.True(t, ok)
	assert.True(t, bird.HasItem("feather"))

	back, ok := out.Connection(North)
	require.True(t, ok)
	assert.Same(t, w.Start(), back)
	assert.Len(t, w.Rooms(), 2)
}

func TestBuilder_SetStart(t *testing.T) {
	b := newTwoRoomBuilder(t)
	require.NoError(t, b.SetStart("outside"))
	w, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "outside", w.Start().Key())
}

func TestBuilder_ReportsAllErrors(t *testing.T) {
	b := NewBuilder("broken")
	require.NoError(t, b.AddRoom("Apartment", "apartment", ""))
	assert.Error(t, b.AddRoom("Apartment", "APARTMENT", ""))
	assert.Error(t, b.AddConnection("apartment", "nowhere", "n", true))
	assert.Error(t, b.AddConnection("apartment", "apartment", "sideways", false))
	assert.Error(t, b.AddItem("nowhere", item.Spec{Name: "Rock"}))
	assert.Error(t, b.AddSentient("apartment", actor.Spec{Name: "Ghost"}, nil))

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateRoom))
	assert.True(t, errors.Is(err, ErrUnknownRoom))
	assert.True(t, errors.Is(err, ErrInvalidDirection))
	assert.True(t, errors.Is(err, ErrNoPlayer))
}

func TestBuilder_PlayerEquip(t *testing.T) {
	b := NewBuilder("equip")
	require.NoError(t, b.AddRoom("Apartment", "", ""))
	err := b.AddPlayer(actor.Spec{Name: "Andre", MaxHP: 10, Damage: 1}, []item.Spec{{Name: "Machete", Weapon: true, DamageBonus: 3}}, "machete")
	require.NoError(t, err)
	w, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, w.Player().Damage())

	b2 := NewBuilder("bad equip")
	require.NoError(t, b2.AddRoom("Apartment", "", ""))
	err = b2.AddPlayer(actor.Spec{Name: "Andre", MaxHP: 10}, []item.Spec{{Name: "Bowl"}}, "bowl")
	assert.True(t, errors.Is(err, actor.ErrNotWeapon))
}

func TestWorld_UsesAndEnding(t *testing.T) {
	b := newTwoRoomBuilder(t)
	require.NoError(t, b.AddUse("Dog Bowl", "outside", "You placed the dog bowl."))
	assert.Error(t, b.AddUse("dog bowl", "OUTSIDE", "again"))
	require.NoError(t, b.SetEnding("outside", []string{"Dog Bowl"}, []string{"The end."}))
	w, err := b.Build()
	require.NoError(t, err)

	out, _ := w.Room("outside")
	u, ok := w.UseFor("DOG BOWL", out)
	require.True(t, ok)
	assert.Equal(t, "You placed the dog bowl.", u.Message)
	_, ok = w.UseFor("dog bowl", w.Start())
	assert.False(t, ok)

	assert.False(t, w.EndingReached())
	require.NoError(t, out.AddItem(item.New("Dog Bowl", "", true)))
	assert.True(t, w.EndingReached())
}
