// Package layout implements the bulls-eye segment layout engine: it partitions
// the circle into angular segments, one per distinct grouping value, and
// distributes each group's records evenly within its span.  Together with the
// phase-to-radius mapping in radius.go it yields the polar coordinate of every
// asset on the chart.
//
// The engine is a pure function over its inputs: no I/O, no shared state, safe
// for concurrent use from independent calls.
package layout

import (
	"math"

	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

const (
	// DefaultMaxSegments is the segment cap applied when callers have no
	// reason to choose otherwise.
	DefaultMaxSegments = 8

	// paddingFraction is the share of a segment's span reserved on each side
	// before members are spread, so adjacent segments' points never touch.
	paddingFraction = 0.1

	twoPi = 2 * math.Pi
)

// Options controls a single layout computation.
type Options struct {
	// MaxSegments caps the number of angular segments.  Distinct grouping
	// values beyond the cap (in first-seen order) do not survive; their
	// records are reported via Result.Unplaced.  Must be >= 1.
	MaxSegments int
}

// DefaultOptions returns the Options used by the dashboard unless the caller
// overrides them.
func DefaultOptions() Options {
	return Options{MaxSegments: DefaultMaxSegments}
}

// Segment is one angular wedge of the chart, corresponding to one distinct
// grouping value.  Spans partition [0, 2π) exactly: Segments[i].EndAngle ==
// Segments[i+1].StartAngle, the first starts at 0 and the last ends at 2π.
type Segment struct {
	// Key is the distinct grouping value this wedge represents.
	Key string `json:"key"`

	// Index is the wedge's position among surviving segments in first-seen
	// order.
	Index int `json:"index"`

	// StartAngle and EndAngle bound the wedge in radians, [StartAngle, EndAngle).
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`

	// Positions lists the angles, in radians and input order, at which this
	// wedge's member records are placed.
	Positions []float64 `json:"positions"`
}

// Result is the output of one layout computation.
type Result struct {
	// Angles is parallel to the input records.  Records whose grouping value
	// fell beyond the segment cap carry math.NaN(); use math.IsNaN to test.
	Angles []float64 `json:"angles"`

	// Segments lists the surviving wedges in first-seen order.  Nil in the
	// no-grouping fallback case.
	Segments []Segment `json:"segments,omitempty"`

	// Unplaced counts records that received no angle because their grouping
	// value fell beyond the cap.  The drop is inherited dashboard behaviour;
	// this count keeps it observable instead of silent.
	Unplaced int `json:"unplaced"`
}

// Compute partitions the circle among the distinct grouping values of records
// and assigns every record an angle within its group's wedge.
//
// Grouping values are collected in order of first appearance; the first
// opts.MaxSegments of them survive and divide [0, 2π) into equal wedges.
// Within a wedge, a single member sits at the midpoint; n > 1 members are
// spread evenly across the span minus a symmetric 10% padding, the first and
// last landing exactly on the padding boundaries.  Ties are broken by input
// order, so identical inputs always produce identical output.
//
// A nil keyFn, or one that returns the empty string for every record, marks
// the no-grouping case: records are spaced 2π/len(records) apart starting at
// angle 0, and no segment metadata is produced.
func Compute[T any](records []T, keyFn func(T) string, opts Options) (*Result, error) {
	if opts.MaxSegments < 1 {
		return nil, errors.New(errors.ErrCodeLayoutConfigInvalid, "max segments must be >= 1")
	}

	n := len(records)
	if n == 0 {
		return &Result{Angles: []float64{}}, nil
	}

	keys := make([]string, n)
	grouped := false
	if keyFn != nil {
		for i, rec := range records {
			keys[i] = keyFn(rec)
			if keys[i] != "" {
				grouped = true
			}
		}
	}
	if !grouped {
		return fallbackResult(n), nil
	}

	// Distinct keys in first-seen order.  A map iteration here would make the
	// wedge order depend on hash order; the slice keeps it deterministic.
	seen := make(map[string]int, n)
	var distinct []string
	for _, k := range keys {
		if _, ok := seen[k]; !ok {
			seen[k] = len(distinct)
			distinct = append(distinct, k)
		}
	}

	segCount := len(distinct)
	if segCount > opts.MaxSegments {
		segCount = opts.MaxSegments
	}
	span := twoPi / float64(segCount)

	// Member counts per surviving segment, in input order.
	counts := make([]int, segCount)
	for _, k := range keys {
		if idx := seen[k]; idx < segCount {
			counts[idx]++
		}
	}

	segments := make([]Segment, segCount)
	for i := 0; i < segCount; i++ {
		start := float64(i) * span
		segments[i] = Segment{
			Key:        distinct[i],
			Index:      i,
			StartAngle: start,
			EndAngle:   start + span,
			Positions:  memberPositions(start, span, counts[i]),
		}
	}

	angles := make([]float64, n)
	placed := make([]int, segCount) // cursor per segment
	unplaced := 0
	for i, k := range keys {
		idx := seen[k]
		if idx >= segCount {
			angles[i] = math.NaN()
			unplaced++
			continue
		}
		angles[i] = segments[idx].Positions[placed[idx]]
		placed[idx]++
	}

	return &Result{Angles: angles, Segments: segments, Unplaced: unplaced}, nil
}

// memberPositions computes the angles of count members within a wedge that
// starts at start and spans span radians.
func memberPositions(start, span float64, count int) []float64 {
	positions := make([]float64, count)
	switch {
	case count == 0:
	case count == 1:
		positions[0] = start + span/2
	default:
		padding := paddingFraction * span
		usable := span - 2*padding
		step := usable / float64(count-1)
		for j := 0; j < count; j++ {
			positions[j] = start + padding + float64(j)*step
		}
	}
	return positions
}

// fallbackResult spaces n records evenly around the full circle, starting at
// angle 0, for the no-grouping-column case.
func fallbackResult(n int) *Result {
	angles := make([]float64, n)
	step := twoPi / float64(n)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	return &Result{Angles: angles}
}

//Personal.AI order the ending
