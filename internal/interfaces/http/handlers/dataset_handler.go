package handlers

import (
	stderrors "errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/BullsEye-Radar/internal/application/chart"
	"github.com/turtacn/BullsEye-Radar/internal/application/dataset"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// DatasetHandler serves the dataset CRUD endpoints.  Uploads arrive either as
// a multipart "file" part or as a raw CSV request body.
type DatasetHandler struct {
	datasetSvc dataset.Service
	chartSvc   chart.Service // nil skips cache invalidation
	maxUpload  int64
	logger     logging.Logger
}

// NewDatasetHandler creates a DatasetHandler.  maxUpload caps the accepted
// request body size in bytes; zero means no cap.
func NewDatasetHandler(datasetSvc dataset.Service, chartSvc chart.Service, maxUpload int64, logger logging.Logger) *DatasetHandler {
	return &DatasetHandler{
		datasetSvc: datasetSvc,
		chartSvc:   chartSvc,
		maxUpload:  maxUpload,
		logger:     logger,
	}
}

// datasetHeader is the list-view projection of a dataset: everything but the
// asset rows.
type datasetHeader struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   int    `json:"version"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Create handles POST /api/v1/datasets.
func (h *DatasetHandler) Create(c *gin.Context) {
	body, filename, err := h.readCSVBody(c)
	if err != nil {
		respondError(c, err)
		return
	}

	name := c.Query("name")
	if name == "" {
		name = c.PostForm("name")
	}
	if name == "" && filename != "" {
		name = strings.TrimSuffix(filename, ".csv")
	}
	if name == "" {
		respondError(c, errors.Validation("dataset name is required"))
		return
	}

	d, err := h.datasetSvc.Import(c.Request.Context(), name, filename, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, d)
}

// List handles GET /api/v1/datasets.
func (h *DatasetHandler) List(c *gin.Context) {
	p := parsePagination(c)

	datasets, err := h.datasetSvc.List(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	headers := make([]datasetHeader, 0, len(datasets))
	for _, d := range datasets {
		headers = append(headers, datasetHeader{
			ID:        d.ID,
			Name:      d.Name,
			Version:   d.Version,
			Source:    d.Source,
			CreatedAt: d.CreatedAt.Format(time.RFC3339),
			UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
		})
	}
	respondPage(c, http.StatusOK, headers, p)
}

// Get handles GET /api/v1/datasets/:id.
func (h *DatasetHandler) Get(c *gin.Context) {
	d, err := h.datasetSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, d)
}

// Replace handles PUT /api/v1/datasets/:id.
func (h *DatasetHandler) Replace(c *gin.Context) {
	id := c.Param("id")

	body, _, err := h.readCSVBody(c)
	if err != nil {
		respondError(c, err)
		return
	}

	d, err := h.datasetSvc.Replace(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateCharts(c, id)
	respond(c, http.StatusOK, d)
}

// Delete handles DELETE /api/v1/datasets/:id.
func (h *DatasetHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.datasetSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.invalidateCharts(c, id)
	c.Status(http.StatusNoContent)
}

// Export handles GET /api/v1/datasets/:id/export, returning the dataset as a
// CSV attachment.
func (h *DatasetHandler) Export(c *gin.Context) {
	body, filename, err := h.datasetSvc.ExportCSV(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", body)
}

// Template handles GET /api/v1/datasets/template, returning the import
// template CSV.
func (h *DatasetHandler) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="template.csv"`)
	c.Data(http.StatusOK, "text/csv", h.datasetSvc.Template())
}

// readCSVBody extracts the CSV payload from a multipart "file" part when one
// is present, falling back to the raw request body.
func (h *DatasetHandler) readCSVBody(c *gin.Context) (body []byte, filename string, err error) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		file, header, ferr := c.Request.FormFile("file")
		if ferr != nil {
			return nil, "", errors.Validation("multipart upload requires a \"file\" part")
		}
		defer file.Close() //nolint:errcheck

		body, err = io.ReadAll(file)
		if err != nil {
			return nil, "", errors.Wrap(err, errors.ErrCodeBadRequest, "failed to read uploaded file")
		}
		return body, header.Filename, nil
	}

	body, err = io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			return nil, "", errors.New(errors.ErrCodeBadRequest, "upload exceeds the size limit")
		}
		return nil, "", errors.Wrap(err, errors.ErrCodeBadRequest, "failed to read request body")
	}
	if len(body) == 0 {
		return nil, "", errors.Validation("request body is empty")
	}
	return body, "", nil
}

// invalidateCharts drops cached chart specs for a dataset best-effort.
func (h *DatasetHandler) invalidateCharts(c *gin.Context, id string) {
	if h.chartSvc == nil {
		return
	}
	if err := h.chartSvc.Invalidate(c.Request.Context(), id); err != nil {
		h.logger.Warn("Failed to invalidate chart cache",
			logging.String("dataset_id", id), logging.Err(err))
	}
}

//Personal.AI order the ending
