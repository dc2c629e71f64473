package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignMOAColors_SeededMechanisms(t *testing.T) {
	t.Parallel()

	colors := AssignMOAColors([]string{"Psychedelic", "NMDA Antagonist"})
	assert.Equal(t, "#F44336", colors["Psychedelic"])
	assert.Equal(t, "#2196F3", colors["NMDA Antagonist"])
}

func TestAssignMOAColors_FallbackFirstSeenOrder(t *testing.T) {
	t.Parallel()

	colors := AssignMOAColors([]string{"Novel A", "Novel B", "Novel A", "Novel C"})
	assert.Equal(t, fallbackPalette[0], colors["Novel A"])
	assert.Equal(t, fallbackPalette[1], colors["Novel B"])
	assert.Equal(t, fallbackPalette[2], colors["Novel C"])
}

func TestAssignMOAColors_SeededDoesNotConsumeFallback(t *testing.T) {
	t.Parallel()

	colors := AssignMOAColors([]string{"Cannabinoid", "Novel A"})
	assert.Equal(t, "#8BC34A", colors["Cannabinoid"])
	assert.Equal(t, fallbackPalette[0], colors["Novel A"])
}

func TestAssignMOAColors_CyclesPalette(t *testing.T) {
	t.Parallel()

	moas := make([]string, len(fallbackPalette)+1)
	for i := range moas {
		moas[i] = string(rune('A' + i))
	}
	colors := AssignMOAColors(moas)
	assert.Equal(t, fallbackPalette[0], colors["A"])
	assert.Equal(t, fallbackPalette[0], colors[string(rune('A'+len(fallbackPalette)))])
}

func TestAssignMOAColors_SkipsEmpty(t *testing.T) {
	t.Parallel()

	colors := AssignMOAColors([]string{"", "Novel A"})
	_, hasEmpty := colors[""]
	assert.False(t, hasEmpty)
	assert.Equal(t, fallbackPalette[0], colors["Novel A"])
}

func TestMOAColor_Fallback(t *testing.T) {
	t.Parallel()

	colors := map[string]string{"X": "#111111"}
	assert.Equal(t, "#111111", MOAColor(colors, "X"))
	assert.Equal(t, DefaultColor, MOAColor(colors, "unknown"))
}

//Personal.AI order the ending
