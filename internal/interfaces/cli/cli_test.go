package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/BullsEye-Radar/internal/application/chart"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeCSVFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const cliCSV = `Asset,Company,Phase_Status,MOA,Category
KAR-101,Karuna,Phase 2,Muscarinic agonist,Treatment Resistant
Cariprazine,Abbvie,Marketed,D2 Antagonist,Treatment Sensitive
`

func TestValidateCmd(t *testing.T) {
	path := writeCSVFile(t, cliCSV)

	out, _, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "CSV is valid")
	assert.Contains(t, out, "Rows:")
}

func TestValidateCmd_JSONOutput(t *testing.T) {
	path := writeCSVFile(t, cliCSV)

	out, _, err := runCommand(t, "validate", path, "-o", "json")
	require.NoError(t, err)

	var summary csvSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2, summary.Rows)
	assert.Equal(t, 2, summary.Categories)
}

func TestValidateCmd_InvalidPhase(t *testing.T) {
	path := writeCSVFile(t, "Asset,Company,Phase_Status,MOA,Category\nA,AcmeCo,Phase 9,M,C\n")

	_, _, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Phase 9")
}

func TestRenderCmd(t *testing.T) {
	path := writeCSVFile(t, cliCSV)

	out, _, err := runCommand(t, "render", path, "--group-by", "category", "--max-segments", "4")
	require.NoError(t, err)

	var spec chart.Spec
	require.NoError(t, json.Unmarshal([]byte(out), &spec))
	assert.Len(t, spec.Points, 2)
	assert.Len(t, spec.Rings, 4)
	assert.Equal(t, "category", spec.GroupBy)
}

func TestRenderCmd_WritesFile(t *testing.T) {
	path := writeCSVFile(t, cliCSV)
	outPath := filepath.Join(t.TempDir(), "spec.json")

	_, _, err := runCommand(t, "render", path, "--out", outPath)
	require.NoError(t, err)

	body, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var spec chart.Spec
	require.NoError(t, json.Unmarshal(body, &spec))
	assert.NotEmpty(t, spec.Points)
}

func TestRenderCmd_BadGroupBy(t *testing.T) {
	path := writeCSVFile(t, cliCSV)

	_, _, err := runCommand(t, "render", path, "--group-by", "owner")
	require.Error(t, err)
}

func TestSampleCmd(t *testing.T) {
	out, _, err := runCommand(t, "sample")
	require.NoError(t, err)
	assert.Contains(t, out, "Asset,Company")
	assert.Contains(t, out, "DPI-387")
}

func TestDatasetsUploadCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/datasets", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": "d1", "name": "portfolio", "version": 1},
		})
	}))
	defer srv.Close()

	path := writeCSVFile(t, cliCSV)
	out, _, err := runCommand(t, "datasets", "upload", path, "--name", "portfolio", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Created dataset d1")
}

func TestDatasetsListCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": "d1", "name": "portfolio", "version": 3, "created_at": "2026-01-01T00:00:00Z"},
			},
		})
	}))
	defer srv.Close()

	out, _, err := runCommand(t, "datasets", "list", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "d1")
	assert.Contains(t, out, "portfolio")
}

func TestChartCmd_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"code": "DATASET_001", "message": "dataset not found: d9"},
		})
	}))
	defer srv.Close()

	_, _, err := runCommand(t, "chart", "d9", "--server", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATASET_001")
}

func TestRootCmd_Version(t *testing.T) {
	out, _, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:")
}

//Personal.AI order the ending
