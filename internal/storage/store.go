package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/brand-d/tailorshop/internal/shop"
)

// Store persists runs as one directory each under baseDir, holding
// metadata.json and history.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Periods   int                `json:"periods"`
	Warnings  int                `json:"warnings"`
	Metrics   map[string]float64 `json:"metrics"`
}

// historyColumns maps CSV columns to the State fields worth plotting.
var historyColumns = []struct {
	name  string
	value func(s *shop.State) float64
}{
	{"period", func(s *shop.State) float64 { return float64(s.Period) }},
	{"cash", func(s *shop.State) float64 { return s.Cash }},
	{"revenue", func(s *shop.State) float64 { return s.Revenue }},
	{"cost", func(s *shop.State) float64 { return s.Cost }},
	{"profit", func(s *shop.State) float64 { return s.Profit }},
	{"material_stock", func(s *shop.State) float64 { return s.MaterialStock }},
	{"finished_stock", func(s *shop.State) float64 { return s.FinishedStock }},
	{"workers", func(s *shop.State) float64 { return float64(s.Workers) }},
	{"motivation", func(s *shop.State) float64 { return s.Motivation }},
	{"machines", func(s *shop.State) float64 { return float64(s.Machines) }},
	{"wear", func(s *shop.State) float64 { return s.Wear }},
	{"awareness", func(s *shop.State) float64 { return s.Awareness }},
	{"price", func(s *shop.State) float64 { return s.Price }},
	{"demand", func(s *shop.State) float64 { return s.Demand }},
	{"units_sold", func(s *shop.State) float64 { return s.UnitsSold }},
	{"company_value", func(s *shop.State) float64 { return s.CompanyValue }},
}

// Save writes a run and returns its ID.
func (s *Store) Save(scenarioName string, history []shop.State, runMetrics map[string]float64, warnings int) (string, error) {
	runID := fmt.Sprintf("%s_%s", scenarioName, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenarioName,
		Timestamp: time.Now(),
		Periods:   len(history) - 1,
		Warnings:  warnings,
		Metrics:   runMetrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "history.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := make([]string, len(historyColumns))
	for i, col := range historyColumns {
		header[i] = col.name
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range history {
		row := make([]string, len(historyColumns))
		for j, col := range historyColumns {
			row[j] = strconv.FormatFloat(col.value(&history[i]), 'f', 4, 64)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadHistory reads back the plotted series of a run: the column names
// and one row per period.
func (s *Store) LoadHistory(runID string) ([]string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "history.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("run %s: empty history", runID)
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("run %s: %w", runID, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
