// Package dataset manages the dataset lifecycle: CSV import and export,
// persistence, artifact archival, and change events.
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// CSV column headers.  Either ColPhaseStatus (categorical) or
// ColCurrentPhase (numeric 0-100) must be present; the other columns are
// always required.
const (
	ColAsset        = "Asset"
	ColCompany      = "Company"
	ColPhaseStatus  = "Phase_Status"
	ColCurrentPhase = "Current_Phase"
	ColMOA          = "MOA"
	ColCategory     = "Category"
)

var baseColumns = []string{ColAsset, ColCompany, ColMOA, ColCategory}

// ParseCSV decodes asset records from CSV.  Row order is preserved; it is
// what the layout engine keys first-seen segment order on.
func ParseCSV(r io.Reader) ([]asset.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeCSVSchemaInvalid, "csv file is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCSVParseFailed, "failed to read csv header")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range baseColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	phaseIdx, hasPhase := cols[ColPhaseStatus]
	progressIdx, hasProgress := cols[ColCurrentPhase]
	if !hasPhase && !hasProgress {
		missing = append(missing, ColPhaseStatus)
	}
	if len(missing) > 0 {
		return nil, errors.New(errors.ErrCodeCSVSchemaInvalid, "missing columns: "+strings.Join(missing, ", "))
	}

	var records []asset.Record
	invalidPhases := map[string]struct{}{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeCSVParseFailed,
				fmt.Sprintf("failed to parse csv line %d", line))
		}

		rec := asset.Record{
			Name:     strings.TrimSpace(row[cols[ColAsset]]),
			Company:  strings.TrimSpace(row[cols[ColCompany]]),
			MOA:      strings.TrimSpace(row[cols[ColMOA]]),
			Category: strings.TrimSpace(row[cols[ColCategory]]),
		}

		if hasPhase {
			phase, ok := layout.ParsePhase(row[phaseIdx])
			if !ok {
				invalidPhases[string(phase)] = struct{}{}
				continue
			}
			rec.Phase = phase
		} else {
			// Non-numeric progress coerces to 0, out-of-range clips.
			v, err := strconv.ParseFloat(strings.TrimSpace(row[progressIdx]), 64)
			if err != nil {
				v = 0
			}
			if v < 0 {
				v = 0
			}
			if v > 100 {
				v = 100
			}
			rec.Progress = v
		}
		records = append(records, rec)
	}

	if len(invalidPhases) > 0 {
		values := make([]string, 0, len(invalidPhases))
		for v := range invalidPhases {
			values = append(values, v)
		}
		sort.Strings(values)
		return nil, errors.New(errors.ErrCodeCSVPhaseInvalid,
			"invalid Phase_Status values: "+strings.Join(values, ", ")).
			WithDetail("valid values are: Phase 1, Phase 2, Phase 3, Marketed")
	}
	return records, nil
}

// WriteCSV encodes records back to CSV.  The phase column style follows the
// data: categorical when any record carries a Phase, numeric otherwise.
func WriteCSV(w io.Writer, records []asset.Record) error {
	categorical := false
	for _, rec := range records {
		if rec.Phase != "" {
			categorical = true
			break
		}
	}

	phaseCol := ColCurrentPhase
	if categorical {
		phaseCol = ColPhaseStatus
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{ColAsset, ColCompany, phaseCol, ColMOA, ColCategory}); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to write csv header")
	}
	for _, rec := range records {
		phase := string(rec.Phase)
		if !categorical {
			phase = strconv.FormatFloat(rec.Progress, 'f', -1, 64)
		}
		if err := writer.Write([]string{rec.Name, rec.Company, phase, rec.MOA, rec.Category}); err != nil {
			return errors.Wrap(err, errors.ErrCodeInternal, "failed to write csv row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to flush csv")
	}
	return nil
}

// SampleCSV returns the import template shown to users.
func SampleCSV() []byte {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, []asset.Record{
		{
			Name: "DPI-387", Company: "Defender Pharma",
			Phase: layout.Phase1,
			MOA:   "Pan muscarinic antagonist", Category: "Treatment Sensitive Category",
		},
		{
			Name: "Cariprazine", Company: "Abbvie",
			Phase: layout.Phase3,
			MOA:   "D2 Antagonist", Category: "Treatment Resistant Category",
		},
	})
	return buf.Bytes()
}

//Personal.AI order the ending
