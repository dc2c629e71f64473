package chart

import (
	"math"

	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
)

// ─────────────────────────────────────────────────────────────────────────────
// Spec types
// ─────────────────────────────────────────────────────────────────────────────

// ringColors are applied innermost to outermost, lightest first.
var ringColors = []string{"#E6E6E6", "#C8C8C8", "#AAAAAA", "#8C8C8C"}

const ringOpacity = 0.3

// RingSpec describes one concentric background ring.
type RingSpec struct {
	Label    string  `json:"label"`
	Fraction float64 `json:"fraction"`
	Color    string  `json:"color"`
	Opacity  float64 `json:"opacity"`
}

// SegmentSpec describes one angular sector.
type SegmentSpec struct {
	Name       string  `json:"name"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

// Point is one asset placed on the chart.  Assets dropped by the segment cap
// carry Placed=false and a zero angle; renderers must skip them.
type Point struct {
	Asset    string  `json:"asset"`
	Company  string  `json:"company"`
	Phase    string  `json:"phase,omitempty"`
	MOA      string  `json:"moa,omitempty"`
	Category string  `json:"category,omitempty"`
	Radius   float64 `json:"radius"`
	Angle    float64 `json:"angle"`
	Color    string  `json:"color"`
	Placed   bool    `json:"placed"`
}

// LegendEntry is one mechanism-of-action legend row.
type LegendEntry struct {
	MOA   string `json:"moa"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// Spec is the complete renderable chart description.
type Spec struct {
	DatasetID      string        `json:"dataset_id"`
	DatasetVersion int           `json:"dataset_version"`
	GroupBy        string        `json:"group_by"`
	RadiusOrder    string        `json:"radius_order"`
	Rings          []RingSpec    `json:"rings"`
	Segments       []SegmentSpec `json:"segments,omitempty"`
	Points         []Point       `json:"points"`
	Legend         []LegendEntry `json:"legend,omitempty"`
	Unplaced       int           `json:"unplaced"`
}

// BuildOptions selects how a dataset is laid out.  Zero values pick up the
// configured defaults.
type BuildOptions struct {
	GroupBy     asset.GroupBy
	MaxSegments int
	RadiusOrder layout.RadiusOrder
}

// ─────────────────────────────────────────────────────────────────────────────
// Assembly
// ─────────────────────────────────────────────────────────────────────────────

// Assemble computes a full chart spec from a dataset.  It is pure: no I/O, no
// caching, deterministic for a given dataset and options.
func Assemble(d *asset.Dataset, opts BuildOptions) (*Spec, error) {
	groupBy := opts.GroupBy
	if groupBy == "" {
		groupBy = asset.GroupByCategory
	}
	order := opts.RadiusOrder
	if order == "" {
		order = layout.OrderInnermostFirst
	}
	layoutOpts := layout.DefaultOptions()
	if opts.MaxSegments != 0 {
		layoutOpts.MaxSegments = opts.MaxSegments
	}

	res, err := layout.Compute(d.Assets, groupBy.KeyFn(), layoutOpts)
	if err != nil {
		return nil, err
	}

	spec := &Spec{
		DatasetID:      d.ID,
		DatasetVersion: d.Version,
		GroupBy:        string(groupBy),
		RadiusOrder:    string(order),
		Rings:          buildRings(order),
		Unplaced:       res.Unplaced,
	}

	for _, seg := range res.Segments {
		spec.Segments = append(spec.Segments, SegmentSpec{
			Name:       seg.Key,
			StartAngle: seg.StartAngle,
			EndAngle:   seg.EndAngle,
		})
	}

	moas := make([]string, len(d.Assets))
	for i, rec := range d.Assets {
		moas[i] = rec.MOA
	}
	colors := AssignMOAColors(moas)

	spec.Points = make([]Point, len(d.Assets))
	for i, rec := range d.Assets {
		angle := res.Angles[i]
		placed := !math.IsNaN(angle)
		if !placed {
			angle = 0
		}
		spec.Points[i] = Point{
			Asset:    rec.Name,
			Company:  rec.Company,
			Phase:    string(rec.Phase),
			MOA:      rec.MOA,
			Category: rec.Category,
			Radius:   rec.RadiusFraction(order),
			Angle:    angle,
			Color:    MOAColor(colors, rec.MOA),
			Placed:   placed,
		}
	}

	spec.Legend = buildLegend(d.Assets, colors)
	return spec, nil
}

func buildRings(order layout.RadiusOrder) []RingSpec {
	rings := layout.Rings(order)
	out := make([]RingSpec, len(rings))
	for i, r := range rings {
		color := ringColors[len(ringColors)-1]
		if i < len(ringColors) {
			color = ringColors[i]
		}
		out[i] = RingSpec{
			Label:    string(r.Phase),
			Fraction: r.Fraction,
			Color:    color,
			Opacity:  ringOpacity,
		}
	}
	return out
}

// buildLegend lists mechanisms in first-seen order with their counts.
func buildLegend(records []asset.Record, colors map[string]string) []LegendEntry {
	var out []LegendEntry
	index := make(map[string]int)
	for _, rec := range records {
		if rec.MOA == "" {
			continue
		}
		if i, seen := index[rec.MOA]; seen {
			out[i].Count++
			continue
		}
		index[rec.MOA] = len(out)
		out = append(out, LegendEntry{
			MOA:   rec.MOA,
			Color: MOAColor(colors, rec.MOA),
			Count: 1,
		})
	}
	return out
}

//Personal.AI order the ending
