package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormula(t *testing.T) {
	w := WardrobeFacts{DoorCount: 3, DrawerCount: 2, Width: 180, Area: 4.5}

	valid := map[string]float64{
		"":                 1,
		"4":                4,
		"2.5":              2.5,
		"door_count":       3,
		"doorCount * 3":    9,
		"drawer_count*2":   4,
		" width * 0.01 ":   1.8,
		"area * 2":         9,
		"HANDLECOUNT * 10": 0,
	}
	for src, want := range valid {
		f, err := ParseFormula(src)
		require.NoError(t, err, src)
		assert.InDelta(t, want, f.Quantity(w), 1e-9, src)
	}

	for _, src := range []string{"door_count + 1", "3 * door_count", "colour", "door_count * x", "door_count *", "NaN", "door_count * 2 * 3"} {
		_, err := ParseFormula(src)
		assert.ErrorIs(t, err, ErrInvalidFormula, src)
	}
}
