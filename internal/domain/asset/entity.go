// Package asset defines the pharmaceutical asset records and datasets that the
// bulls-eye dashboard visualises, together with their validation rules and the
// repository contract for persisting them.
package asset

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// Record is one row of portfolio data: a single pharmaceutical asset.  It is
// the strongly-typed replacement for the loosely-typed tabular rows the
// dashboard's editors produce.
type Record struct {
	// Name is the asset's display identifier.  Non-empty, but not required to
	// be unique within a dataset.
	Name string `json:"name"`

	// Company owns or develops the asset.  Free text.
	Company string `json:"company"`

	// Phase is the asset's clinical stage.  Either Phase or Progress supplies
	// the radius; when Phase is set it wins.
	Phase layout.Phase `json:"phase,omitempty"`

	// Progress is a continuous 0-100 development percentage, the alternative
	// radius source used by datasets without categorical phases.
	Progress float64 `json:"progress,omitempty"`

	// MOA is the mechanism-of-action label.  The layout engine passes it
	// through untouched; it drives point colouring only.
	MOA string `json:"moa"`

	// Category is the default grouping column.
	Category string `json:"category"`
}

// Validate checks the record's shape.  A record must carry a name and either a
// known phase or a progress percentage in range.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.Validation("asset name cannot be empty")
	}
	if r.Phase != "" && !r.Phase.Valid() {
		return errors.New(errors.ErrCodeCSVPhaseInvalid, "unknown phase label").
			WithDetail(fmt.Sprintf("asset %q has phase %q", r.Name, r.Phase))
	}
	if r.Phase == "" && (r.Progress < 0 || r.Progress > 100) {
		return errors.Validation("progress must be within [0, 100]").
			WithDetail(fmt.Sprintf("asset %q has progress %v", r.Name, r.Progress))
	}
	return nil
}

// RadiusFraction returns the record's radius as a fraction of the maximum
// chart radius, under the given phase ordering.
func (r *Record) RadiusFraction(order layout.RadiusOrder) float64 {
	if r.Phase != "" {
		return layout.PhaseRadius(r.Phase, order)
	}
	return layout.ProgressRadius(r.Progress)
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping columns
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy identifies the record column used to partition the chart into
// angular segments.
type GroupBy string

const (
	GroupByCategory GroupBy = "category"
	GroupByCompany  GroupBy = "company"
	GroupByMOA      GroupBy = "moa"

	// GroupByNone disables grouping: the layout engine falls back to even
	// spacing around the full circle.
	GroupByNone GroupBy = "none"
)

// ParseGroupBy maps a user-supplied column name to a GroupBy.  The empty
// string selects the default, Category.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(strings.ToLower(strings.TrimSpace(s))) {
	case "", GroupByCategory:
		return GroupByCategory, nil
	case GroupByCompany:
		return GroupByCompany, nil
	case GroupByMOA:
		return GroupByMOA, nil
	case GroupByNone:
		return GroupByNone, nil
	}
	return "", errors.New(errors.ErrCodeChartGroupByInvalid, "unsupported grouping column").
		WithDetail(fmt.Sprintf("got %q; expected category|company|moa|none", s))
}

// KeyFn returns the segment-key extractor for this grouping column, or nil for
// GroupByNone.
func (g GroupBy) KeyFn() func(Record) string {
	switch g {
	case GroupByCategory:
		return func(r Record) string { return r.Category }
	case GroupByCompany:
		return func(r Record) string { return r.Company }
	case GroupByMOA:
		return func(r Record) string { return r.MOA }
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Dataset
// ─────────────────────────────────────────────────────────────────────────────

// Dataset is a named collection of asset records, the unit the dashboard
// uploads, edits, and charts.  Version increments whenever the asset rows are
// replaced; together with the dataset ID it keys cached chart specifications.
type Dataset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	Source    string    `json:"source,omitempty"` // original upload filename, if any
	Assets    []Record  `json:"assets"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDataset creates a dataset at version 1 after validating every record.
func NewDataset(name, source string, records []Record) (*Dataset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Validation("dataset name cannot be empty")
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatasetInvalid,
				fmt.Sprintf("record %d failed validation", i))
		}
	}
	now := time.Now().UTC()
	return &Dataset{
		ID:        uuid.NewString(),
		Name:      name,
		Version:   1,
		Source:    source,
		Assets:    records,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ReplaceAssets swaps the dataset's rows for a validated replacement set and
// bumps the version.
func (d *Dataset) ReplaceAssets(records []Record) error {
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatasetInvalid,
				fmt.Sprintf("record %d failed validation", i))
		}
	}
	d.Assets = records
	d.Version++
	d.UpdatedAt = time.Now().UTC()
	return nil
}

//Personal.AI order the ending
