package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Ring is one concentric background ring of the chart.
type Ring struct {
	Label    string  `json:"label"`
	Fraction float64 `json:"fraction"`
	Color    string  `json:"color"`
	Opacity  float64 `json:"opacity"`
}

// Segment is one angular sector.
type Segment struct {
	Name       string  `json:"name"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

// Point is one placed asset.  Points with Placed=false were dropped by the
// segment cap and carry no meaningful angle.
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

// ChartSpec is the renderable chart description served by the API.
type ChartSpec struct {
	DatasetID      string        `json:"dataset_id"`
	DatasetVersion int           `json:"dataset_version"`
	GroupBy        string        `json:"group_by"`
	RadiusOrder    string        `json:"radius_order"`
	Rings          []Ring        `json:"rings"`
	Segments       []Segment     `json:"segments,omitempty"`
	Points         []Point       `json:"points"`
	Legend         []LegendEntry `json:"legend,omitempty"`
	Unplaced       int           `json:"unplaced"`
}

// ChartOptions override the server-side layout defaults.  Zero values are
// omitted from the request.
type ChartOptions struct {
	GroupBy     string
	MaxSegments int
	RadiusOrder string
}

// GetChart builds the chart spec for a dataset.
func (c *Client) GetChart(ctx context.Context, datasetID string, opts ChartOptions) (*ChartSpec, error) {
	q := url.Values{}
	if opts.GroupBy != "" {
		q.Set("group_by", opts.GroupBy)
	}
	if opts.MaxSegments > 0 {
		q.Set("max_segments", strconv.Itoa(opts.MaxSegments))
	}
	if opts.RadiusOrder != "" {
		q.Set("radius_order", opts.RadiusOrder)
	}

	path := "/api/v1/datasets/" + url.PathEscape(datasetID) + "/chart"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var spec ChartSpec
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

//Personal.AI order the ending
