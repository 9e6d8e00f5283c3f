package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

func TestRoom_TwoWayConnectionIsSymmetric(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			a := NewRoom("A", "a", "")
			b := NewRoom("B", "b", "")
			require.NoError(t, a.AddTwoWayConnection(d, b))

			to, ok := a.Connection(d)
			require.True(t, ok)
			assert.Same(t, b, to)

			back, ok := b.Connection(d.Opposite())
			require.True(t, ok)
			assert.Same(t, a, back)
		})
	}
}

func TestRoom_OneWayConnection(t *testing.T) {
	a := NewRoom("A", "a", "")
	b := NewRoom("B", "b", "")
	require.NoError(t, a.AddOneWayConnection(Up, b))

	_, ok := b.Connection(Down)
	assert.False(t, ok, "one-way connection must not create a reverse edge")
	_, ok = a.Connection(North)
	assert.False(t, ok)

	assert.Error(t, a.AddOneWayConnection(Direction("sideways"), b))
	assert.Equal(t, []Direction{Up}, a.Exits())
}

func TestRoom_Items(t *testing.T) {
	r := NewRoom("Apartment", "", "")
	require.NoError(t, r.AddItem(item.New("Machete", "", true)))
	require.NoError(t, r.AddItem(item.New("Inscription", "", false)))

	t.Run("duplicate key rejected", func(t *testing.T) {
		err := r.AddItem(item.New("MACHETE", "", true))
		assert.True(t, errors.Is(err, item.ErrDuplicate))
	})

	t.Run("lookup ignores case", func(t *testing.T) {
		assert.True(t, r.HasItem("MaChEtE"))
		assert.False(t, r.HasItem("a machete"))
	})

	t.Run("untakeable item stays", func(t *testing.T) {
		_, ok := r.TakeItem("inscription")
		assert.False(t, ok)
		assert.True(t, r.HasItem("inscription"))
	})

	t.Run("take removes", func(t *testing.T) {
		it, ok := r.TakeItem("Machete")
		require.True(t, ok)
		assert.Equal(t, "Machete", it.Name())
		assert.False(t, r.HasItem("machete"))
		_, ok = r.TakeItem("machete")
		assert.False(t, ok)
	})
}

func TestRoom_HostileSentients(t *testing.T) {
	r := NewRoom("Outside", "outside", "")
	bird, err := actor.New(actor.Spec{Name: "Mean Bird", MaxHP: 2, Hostile: true})
	require.NoError(t, err)
	require.NoError(t, bird.AddItem(item.New("Feather", "", true)))
	cat, err := actor.New(actor.Spec{Name: "Cat", MaxHP: 2})
	require.NoError(t, err)
	require.NoError(t, r.AddSentient(bird))
	require.NoError(t, r.AddSentient(cat))

	assert.Error(t, r.AddSentient(bird), "duplicate sentient")

	hostile := r.HostileSentients()
	require.Len(t, hostile, 1)
	assert.Equal(t, "mean bird", hostile[0].Key())

	bird.TakeDamage(10)
	assert.Empty(t, r.HostileSentients())
	assert.Empty(t, r.HostileSentients(), "repeated scans stay empty")

	assert.False(t, r.HasSentient("mean bird"))
	corpses := r.Corpses()
	require.Len(t, corpses, 1, "exactly one corpse per death")
	assert.Equal(t, "mean bird corpse", corpses[0].Key())
	assert.True(t, corpses[0].Contents().Has("feather"))
	assert.Equal(t, 0, bird.Inventory().Len())
}

func TestRoom_CorpseNameCollision(t *testing.T) {
	r := NewRoom("Maze", "maze", "")
	require.NoError(t, r.AddItem(item.New("Rat corpse", "A stale one.", false)))
	rat, err := actor.New(actor.Spec{Name: "Rat", MaxHP: 1, Hostile: true})
	require.NoError(t, err)
	require.NoError(t, r.AddSentient(rat))
	rat.TakeDamage(5)

	r.HostileSentients()
	assert.True(t, r.HasItem("rat 2 corpse"))
	assert.Len(t, r.Corpses(), 1)
}

func TestRoom_Look(t *testing.T) {
	a := NewRoom("Apartment", "apartment", "A small apartment.")
	b := NewRoom("Outside", "outside", "")
	require.NoError(t, a.AddTwoWayConnection(South, b))
	require.NoError(t, a.AddItem(item.New("Old Baguette", "", true)))
	bird, err := actor.New(actor.Spec{Name: "Mean Bird", MaxHP: 2})
	require.NoError(t, err)
	require.NoError(t, a.AddSentient(bird))

	want := "A small apartment.\n\nExits: south\nYou see: an Old Baguette.\nThe Mean Bird is here."
	assert.Equal(t, want, a.Look())
	assert.Equal(t, want, a.Look(), "look is idempotent")
	assert.False(t, a.Visited())
}
