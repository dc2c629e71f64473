package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Asset is one portfolio row as returned by the API.
type Asset struct {
	Name     string  `json:"name"`
	Company  string  `json:"company"`
	Phase    string  `json:"phase,omitempty"`
	Progress float64 `json:"progress,omitempty"`
	MOA      string  `json:"moa"`
	Category string  `json:"category"`
}

// Dataset is a full dataset with its asset rows.
type Dataset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	Source    string    `json:"source,omitempty"`
	Assets    []Asset   `json:"assets"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DatasetHeader is the list-view projection without asset rows.
type DatasetHeader struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   int    `json:"version"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateDataset uploads a CSV body as a new dataset.
func (c *Client) CreateDataset(ctx context.Context, name string, csvBody []byte) (*Dataset, error) {
	path := "/api/v1/datasets?name=" + url.QueryEscape(name)
	var d Dataset
	if err := c.doJSON(ctx, http.MethodPost, path, "text/csv", csvBody, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDataset fetches one dataset with its rows.
func (c *Client) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	var d Dataset
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/datasets/"+url.PathEscape(id), "", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDatasets fetches dataset headers, newest first.
func (c *Client) ListDatasets(ctx context.Context, page, pageSize int) ([]DatasetHeader, error) {
	path := fmt.Sprintf("/api/v1/datasets?page=%d&page_size=%d", page, pageSize)
	var headers []DatasetHeader
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &headers); err != nil {
		return nil, err
	}
	return headers, nil
}

// ReplaceDataset swaps a dataset's rows for a new CSV body.
func (c *Client) ReplaceDataset(ctx context.Context, id string, csvBody []byte) (*Dataset, error) {
	var d Dataset
	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/datasets/"+url.PathEscape(id), "text/csv", csvBody, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDataset removes a dataset.
func (c *Client) DeleteDataset(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/datasets/"+url.PathEscape(id), "", nil, nil)
}

// ExportDataset downloads a dataset as CSV.
func (c *Client) ExportDataset(ctx context.Context, id string) ([]byte, error) {
	body, _, err := c.do(ctx, http.MethodGet, "/api/v1/datasets/"+url.PathEscape(id)+"/export", "", nil)
	return body, err
}

// DatasetTemplate downloads the CSV import template.
func (c *Client) DatasetTemplate(ctx context.Context) ([]byte, error) {
	body, _, err := c.do(ctx, http.MethodGet, "/api/v1/datasets/template", "", nil)
	return body, err
}

//Personal.AI order the ending
