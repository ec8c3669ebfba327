package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"salon-insights/models"
)

// CSVLoader reads <dir>/<dataset>.csv, as written by the spreadsheet's
// "Download as CSV".
type CSVLoader struct {
	dir string
}

func NewCSVLoader(dir string) *CSVLoader {
	return &CSVLoader{dir: dir}
}

func (l *CSVLoader) Name() string { return "csv" }

func (l *CSVLoader) Load(ctx context.Context, dataset string) (*models.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(l.dir, dataset+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tableFromGrid(dataset, grid)
}
