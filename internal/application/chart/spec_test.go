package chart

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
	pkgerrors "github.com/turtacn/BullsEye-Radar/pkg/errors"
)

func testDataset(t *testing.T, records []asset.Record) *asset.Dataset {
	t.Helper()
	d, err := asset.NewDataset("test", "", records)
	require.NoError(t, err)
	return d
}

func TestAssemble_Basic(t *testing.T) {
	t.Parallel()

	d := testDataset(t, []asset.Record{
		{Name: "A1", Company: "Acme", Phase: layout.Phase1, MOA: "Psychedelic", Category: "Sensitive"},
		{Name: "A2", Company: "Acme", Phase: layout.Phase3, MOA: "Psychedelic", Category: "Resistant"},
		{Name: "A3", Company: "Borr", Phase: layout.Marketed, MOA: "BDNF", Category: "Resistant"},
	})

	spec, err := Assemble(d, BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, d.ID, spec.DatasetID)
	assert.Equal(t, 1, spec.DatasetVersion)
	assert.Equal(t, "category", spec.GroupBy)
	assert.Equal(t, "innermost_first", spec.RadiusOrder)
	assert.Zero(t, spec.Unplaced)

	// Two categories in first-seen order.
	require.Len(t, spec.Segments, 2)
	assert.Equal(t, "Sensitive", spec.Segments[0].Name)
	assert.Equal(t, "Resistant", spec.Segments[1].Name)

	require.Len(t, spec.Points, 3)
	assert.Equal(t, 0.25, spec.Points[0].Radius)
	assert.Equal(t, 0.75, spec.Points[1].Radius)
	assert.Equal(t, 1.0, spec.Points[2].Radius)
	for _, p := range spec.Points {
		assert.True(t, p.Placed)
	}
	assert.Equal(t, "#F44336", spec.Points[0].Color)

	require.Len(t, spec.Legend, 2)
	assert.Equal(t, LegendEntry{MOA: "Psychedelic", Color: "#F44336", Count: 2}, spec.Legend[0])
	assert.Equal(t, LegendEntry{MOA: "BDNF", Color: "#00BCD4", Count: 1}, spec.Legend[1])
}

func TestAssemble_Rings(t *testing.T) {
	t.Parallel()

	d := testDataset(t, []asset.Record{{Name: "A1", Phase: layout.Phase1}})

	spec, err := Assemble(d, BuildOptions{})
	require.NoError(t, err)

	require.Len(t, spec.Rings, 4)
	assert.Equal(t, RingSpec{Label: "Phase 1", Fraction: 0.25, Color: "#E6E6E6", Opacity: 0.3}, spec.Rings[0])
	assert.Equal(t, RingSpec{Label: "Marketed", Fraction: 1.0, Color: "#8C8C8C", Opacity: 0.3}, spec.Rings[3])
}

func TestAssemble_OutermostFirstRings(t *testing.T) {
	t.Parallel()

	d := testDataset(t, []asset.Record{{Name: "A1", Phase: layout.Phase1}})

	spec, err := Assemble(d, BuildOptions{RadiusOrder: layout.OrderOutermostFirst})
	require.NoError(t, err)

	require.Len(t, spec.Rings, 4)
	assert.Equal(t, "Marketed", spec.Rings[0].Label)
	assert.Equal(t, "Phase 1", spec.Rings[3].Label)
	assert.Equal(t, 1.0, spec.Points[0].Radius)
}

func TestAssemble_UnplacedPointsAreJSONSafe(t *testing.T) {
	t.Parallel()

	d := testDataset(t, []asset.Record{
		{Name: "A1", Phase: layout.Phase1, Category: "C1"},
		{Name: "A2", Phase: layout.Phase1, Category: "C2"},
		{Name: "A3", Phase: layout.Phase1, Category: "C3"},
	})

	spec, err := Assemble(d, BuildOptions{MaxSegments: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, spec.Unplaced)
	require.Len(t, spec.Points, 3)
	assert.True(t, spec.Points[0].Placed)
	assert.True(t, spec.Points[1].Placed)
	assert.False(t, spec.Points[2].Placed)
	assert.Zero(t, spec.Points[2].Angle)

	// The chart spec must survive JSON round trips; NaN angles would not.
	data, err := json.Marshal(spec)
	require.NoError(t, err)
	var back Spec
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, spec.Unplaced, back.Unplaced)
	assert.False(t, math.IsNaN(back.Points[2].Angle))
}

func TestAssemble_NoGrouping(t *testing.T) {
	t.Parallel()

	d := testDataset(t, []asset.Record{
		{Name: "A1", Phase: layout.Phase1},
		{Name: "A2", Phase: layout.Phase2},
		{Name: "A3", Phase: layout.Phase3},
		{Name: "A4", Phase: layout.Marketed},
	})

	spec, err := Assemble(d, BuildOptions{GroupBy: asset.GroupByNone})
	require.NoError(t, err)

	assert.Empty(t, spec.Segments)
	require.Len(t, spec.Points, 4)
	assert.InDelta(t, 0, spec.Points[0].Angle, 1e-12)
	assert.InDelta(t, math.Pi/2, spec.Points[1].Angle, 1e-12)
	assert.InDelta(t, math.Pi, spec.Points[2].Angle, 1e-12)
	assert.InDelta(t, 3*math.Pi/2, spec.Points[3].Angle, 1e-12)
}

func TestAssemble_InvalidMaxSegments(t *testing.T) {
	t.Parallel()

	d := testDataset(t, []asset.Record{{Name: "A1", Phase: layout.Phase1}})

	_, err := Assemble(d, BuildOptions{MaxSegments: -1})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeLayoutConfigInvalid))
}

func TestAssemble_Deterministic(t *testing.T) {
	t.Parallel()

	d := testDataset(t, []asset.Record{
		{Name: "A1", Phase: layout.Phase1, MOA: "M1", Category: "C1"},
		{Name: "A2", Phase: layout.Phase2, MOA: "M2", Category: "C2"},
		{Name: "A3", Phase: layout.Phase3, MOA: "M3", Category: "C1"},
	})

	first, err := Assemble(d, BuildOptions{})
	require.NoError(t, err)
	second, err := Assemble(d, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

//Personal.AI order the ending
