package world

import (
	"errors"
	"testing"
)

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			if d.Opposite() == d {
				t.Errorf("Opposite(%s) = %s", d, d.Opposite())
			}
			if got := d.Opposite().Opposite(); got != d {
				t.Errorf("Opposite(Opposite(%s)) = %s", d, got)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"n", North},
		{"N", North},
		{"go north", North},
		{"ne", NorthEast},
		{"north east", NorthEast},
		{"North  East", NorthEast},
		{"northeast", NorthEast},
		{"go sw", SouthWest},
		{"south west", SouthWest},
		{"se", SouthEast},
		{"nw", NorthWest},
		{"e", East},
		{"w", West},
		{"s", South},
		{"up", Up},
		{"u", Up},
		{"go down", Down},
		{"d", Down},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if err != nil {
				t.Fatalf("ParseDirection(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDirection_Invalid(t *testing.T) {
	for _, in := range []string{"", "go", "sideways", "north north", "go go north"} {
		if _, err := ParseDirection(in); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q) error = %v, want ErrInvalidDirection", in, err)
		}
	}
}
