package actor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayer_HealthStatus(t *testing.T) {
	tests := []struct {
		hp    int
		maxHP int
		want  string
	}{
		{10, 10, "You are feeling healthy."},
		{9, 10, "You feel a little scraped and cut."},
		{7, 10, "You feel a little scraped and cut."},
		{6, 10, "You are injured."},
		{5, 10, "You are injured."},
		{4, 10, "You are seriously injured."},
		{2, 10, "You are seriously injured."},
		{1, 10, "You are on the verge of death."},
		{20, 20, "You are feeling healthy."},
		{10, 20, "You are injured."},
		{1, 20, "You are on the verge of death."},
	}
	for _, tt := range tests {
		p, err := NewPlayer(Spec{Name: "Andre", HP: tt.hp, MaxHP: tt.maxHP})
		require.NoError(t, err)
		if got := p.HealthStatus(); got != tt.want {
			t.Errorf("HealthStatus() at %d/%d = %q, want %q", tt.hp, tt.maxHP, got, tt.want)
		}
	}
}

func TestPlayer_Killed(t *testing.T) {
	p, err := NewPlayer(Spec{Name: "Andre", MaxHP: 10})
	require.NoError(t, err)
	p.TakeDamage(100)
	if got := p.HealthStatus(); got != "You have been killed." {
		t.Errorf("HealthStatus() = %q", got)
	}
}

func TestNewPlayer_NeverHostile(t *testing.T) {
	p, err := NewPlayer(Spec{Name: "Andre", MaxHP: 10, Hostile: true})
	require.NoError(t, err)
	if p.IsHostile() {
		t.Error("player should not be hostile")
	}
	p.AddScore(5)
	p.AddScore(1)
	if p.Score() != 6 {
		t.Errorf("Score() = %d, want 6", p.Score())
	}
}
