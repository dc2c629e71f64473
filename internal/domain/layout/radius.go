package layout

import "strings"

// Phase is the clinical-trial stage of a pharmaceutical asset.  The set is
// closed and ordered: Phase 1 < Phase 2 < Phase 3 < Marketed.
type Phase string

const (
	Phase1   Phase = "Phase 1"
	Phase2   Phase = "Phase 2"
	Phase3   Phase = "Phase 3"
	Marketed Phase = "Marketed"
)

// Phases lists the known phases in clinical order.
var Phases = []Phase{Phase1, Phase2, Phase3, Marketed}

// Valid reports whether p is one of the four known phase labels.
func (p Phase) Valid() bool {
	switch p {
	case Phase1, Phase2, Phase3, Marketed:
		return true
	}
	return false
}

// ParsePhase converts a textual phase label to a Phase.  Surrounding
// whitespace is trimmed; unknown labels return false.
func ParsePhase(s string) (Phase, bool) {
	p := Phase(strings.TrimSpace(s))
	return p, p.Valid()
}

// RadiusOrder selects which end of the chart the earliest phase occupies.
// The dashboard's variants disagreed on the direction, so it is explicit
// configuration rather than a hard-coded choice.
type RadiusOrder string

const (
	// OrderInnermostFirst places Phase 1 on the innermost ring and Marketed
	// on the outermost.  This is the default.
	OrderInnermostFirst RadiusOrder = "innermost_first"

	// OrderOutermostFirst reverses the mapping: Phase 1 outermost, Marketed
	// innermost.
	OrderOutermostFirst RadiusOrder = "outermost_first"
)

// Valid reports whether o is a recognised ordering.
func (o RadiusOrder) Valid() bool {
	return o == OrderInnermostFirst || o == OrderOutermostFirst
}

// ringStep is the radial distance between adjacent phase rings, as a fraction
// of the chart's maximum radius.
const ringStep = 0.25

// PhaseRadius maps a phase to its radius as a fraction of the maximum chart
// radius.  With OrderInnermostFirst: Phase 1 → 0.25, Phase 2 → 0.50,
// Phase 3 → 0.75, Marketed → 1.00; OrderOutermostFirst reverses the four
// fractions.  Unknown phase values map to 0 — by contract that is a default,
// not an error, so callers never handle a failure here.
func PhaseRadius(p Phase, order RadiusOrder) float64 {
	rank := 0
	switch p {
	case Phase1:
		rank = 1
	case Phase2:
		rank = 2
	case Phase3:
		rank = 3
	case Marketed:
		rank = 4
	default:
		return 0
	}
	if order == OrderOutermostFirst {
		rank = len(Phases) + 1 - rank
	}
	return float64(rank) * ringStep
}

// ProgressRadius maps a continuous 0-100 development-progress percentage to a
// radius fraction, clamped to [0, 1].  It serves the dataset variant that
// records progress instead of a categorical phase.
func ProgressRadius(pct float64) float64 {
	switch {
	case pct <= 0:
		return 0
	case pct >= 100:
		return 1
	}
	return pct / 100
}

// Ring describes one concentric phase ring of the chart.
type Ring struct {
	Phase    Phase   `json:"phase"`
	Fraction float64 `json:"fraction"`
}

// Rings returns the four phase rings in drawing order (innermost out) for the
// given radius ordering.
func Rings(order RadiusOrder) []Ring {
	rings := make([]Ring, len(Phases))
	for i, p := range Phases {
		rings[i] = Ring{Phase: p, Fraction: PhaseRadius(p, order)}
	}
	if order == OrderOutermostFirst {
		// Keep radii ascending so renderers can fill rings back to front.
		for i, j := 0, len(rings)-1; i < j; i, j = i+1, j-1 {
			rings[i], rings[j] = rings[j], rings[i]
		}
	}
	return rings
}

//Personal.AI order the ending
