package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	ID       string               `json:"id"`
	Scenario string               `json:"scenario"`
	Periods  int                  `json:"periods"`
	Warnings int                  `json:"warnings"`
	Metrics  map[string]float64   `json:"metrics"`
	Series   map[string][]float64 `json:"series"`
}

// ExportJSON writes a run, metadata plus the per-period series, as
// indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, header []string, rows [][]float64) error {
	series := make(map[string][]float64, len(header))
	for j, name := range header {
		col := make([]float64, len(rows))
		for i, row := range rows {
			if j < len(row) {
				col[i] = row[j]
			}
		}
		series[name] = col
	}

	data := ExportData{
		ID:       meta.ID,
		Scenario: meta.Scenario,
		Periods:  meta.Periods,
		Warnings: meta.Warnings,
		Metrics:  meta.Metrics,
		Series:   series,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
