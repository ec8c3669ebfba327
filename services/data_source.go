package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salon-insights/config"
	"salon-insights/models"
)

// DataSource hands out fresh snapshots of a named dataset. Fetch never fails:
// any problem is logged and reported as an empty table.
type DataSource interface {
	Fetch(ctx context.Context, dataset string) *models.Table
}

// Loader reads one dataset from a backing store and reports what went wrong.
type Loader interface {
	Load(ctx context.Context, dataset string) (*models.Table, error)
	Name() string
}

// SnapshotSource turns a Loader into a DataSource: it bounds every read with
// a timeout, tags it with a snapshot id and swallows errors.
type SnapshotSource struct {
	loader  Loader
	timeout time.Duration
	logger  *zap.Logger
}

func NewSnapshotSource(loader Loader, timeout time.Duration, logger *zap.Logger) *SnapshotSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotSource{loader: loader, timeout: timeout, logger: logger}
}

func (s *SnapshotSource) Fetch(ctx context.Context, dataset string) *models.Table {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log := s.logger.With(
		zap.String("snapshot_id", uuid.NewString()),
		zap.String("source", s.loader.Name()),
		zap.String("dataset", dataset),
	)

	start := time.Now()
	t, err := s.loader.Load(ctx, dataset)
	if err != nil {
		log.Error("fetch failed", zap.Error(err))
		return models.EmptyTable(dataset)
	}
	if t.Empty() {
		log.Warn("dataset has no rows")
		return models.EmptyTable(dataset)
	}

	log.Info("snapshot fetched",
		zap.Int("rows", t.Len()),
		zap.Int("columns", len(t.Columns)),
		zap.Duration("took", time.Since(start)),
	)
	return t
}

// NewDataSource builds the source selected by DATA_SOURCE.
func NewDataSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (DataSource, error) {
	var (
		loader Loader
		err    error
	)
	switch cfg.DataSource {
	case config.SourceSheets:
		loader, err = NewSheetsLoader(ctx, cfg.SheetsSpreadsheetID, cfg.SheetsCredentialsFile, cfg.SheetsCredentialsJSON)
	case config.SourceXLSX:
		loader = NewWorkbookLoader(cfg.XLSXPath)
	case config.SourceCSV:
		loader = NewCSVLoader(cfg.CSVDir)
	case config.SourcePostgres:
		db, dbErr := config.OpenDB(cfg.DatabaseURL)
		if dbErr != nil {
			return nil, dbErr
		}
		loader = NewSQLLoader(db)
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("data source ready", zap.String("source", loader.Name()))
	return NewSnapshotSource(loader, cfg.FetchTimeout, logger), nil
}

// tableFromGrid reads a header row followed by data rows. Header cells are
// trimmed, blank header cells are dropped, and short rows are padded.
func tableFromGrid(dataset string, grid [][]string) (*models.Table, error) {
	if len(grid) == 0 {
		return models.EmptyTable(dataset), nil
	}

	type col struct {
		name  string
		index int
	}
	var cols []col
	seen := make(map[string]struct{})
	for i, h := range grid[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("dataset %q: duplicate column %q", dataset, h)
		}
		seen[h] = struct{}{}
		cols = append(cols, col{name: h, index: i})
	}

	columns := make([]string, len(cols))
	for i, c := range cols {
		columns[i] = c.name
	}

	rows := make([]models.Row, 0, len(grid)-1)
	for _, line := range grid[1:] {
		if blankLine(line) {
			continue
		}
		row := make(models.Row, len(cols))
		for _, c := range cols {
			if c.index < len(line) {
				row[c.name] = line[c.index]
			}
		}
		rows = append(rows, row)
	}
	return models.NewTable(dataset, columns, rows), nil
}

func blankLine(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
