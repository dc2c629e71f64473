// Package chart assembles renderable bulls-eye chart specs from stored
// datasets: ring geometry, segment layout, point placement, and colors.
package chart

// DefaultColor is used for mechanisms with no palette entry.
const DefaultColor = "#808080"

// defaultMOAColors seeds the palette for well-known mechanisms of action.
var defaultMOAColors = map[string]string{
	"Pan muscarinic antagonist":    "#4472C4",
	"Selective D3/D2/D3 Modulator": "#E91E63",
	"Psychedelic":                  "#F44336",
	"D2 Antagonist":                "#9C27B0",
	"P2X7 Functional Antagonist":   "#9E9E9E",
	"Interleukin 2":                "#FF9800",
	"NMDA Antagonist":              "#2196F3",
	"Kappa Receptor Antagonist":    "#009688",
	"Dopamine/Serotonin Modulator": "#4CAF50",
	"Cannabinoid":                  "#8BC34A",
	"BDNF":                         "#00BCD4",
	"TRB selective agonist":        "#424242",
}

// fallbackPalette colors mechanisms outside the seed map, cycled in
// first-seen order.
var fallbackPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4",
	"#FFEAA7", "#DDA0DD", "#98D8C8", "#F7DC6F",
}

// AssignMOAColors maps every mechanism to a color.  Seeded mechanisms keep
// their fixed color; unseeded ones draw from the fallback palette in the
// order they first appear, so the assignment is deterministic for a given
// row order.
func AssignMOAColors(moas []string) map[string]string {
	out := make(map[string]string, len(moas))
	next := 0
	for _, moa := range moas {
		if moa == "" {
			continue
		}
		if _, done := out[moa]; done {
			continue
		}
		if c, ok := defaultMOAColors[moa]; ok {
			out[moa] = c
			continue
		}
		out[moa] = fallbackPalette[next%len(fallbackPalette)]
		next++
	}
	return out
}

// MOAColor resolves one mechanism against an assignment, falling back to the
// neutral default.
func MOAColor(colors map[string]string, moa string) string {
	if c, ok := colors[moa]; ok {
		return c
	}
	return DefaultColor
}

//Personal.AI order the ending
