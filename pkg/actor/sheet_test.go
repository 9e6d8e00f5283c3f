package actor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/item"
)

func TestEntity_Sheet(t *testing.T) {
	e := newEntity(t, Spec{Name: "Andre", HP: 6, MaxHP: 10, Defense: 2, Damage: 2, ToHit: 0.5})
	require.NoError(t, e.AddItem(item.NewWeapon("Machete", "", 0.25, 3)))
	_, err := e.EquipWeapon("machete")
	require.NoError(t, err)

	a, err := e.Sheet()
	require.NoError(t, err)
	assert.Equal(t, 6, a.HP())
	assert.Equal(t, 10, a.MaxHP())
	assert.Equal(t, 2, a.AC())
	v, ok := a.Attribute("to_hit")
	require.True(t, ok)
	assert.Equal(t, 75, v)

	text, err := e.SheetText()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Andre\n"))
	assert.Contains(t, text, "HP: 6/10")
	assert.Contains(t, text, "Damage: 5")
}
