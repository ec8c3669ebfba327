package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"salon-insights/models"
)

// WorkbookLoader reads an .xlsx export of the bills spreadsheet; each
// dataset is the worksheet of the same name. The file is reopened on every
// load so a replaced export is picked up.
type WorkbookLoader struct {
	path string
}

func NewWorkbookLoader(path string) *WorkbookLoader {
	return &WorkbookLoader{path: path}
}

func (l *WorkbookLoader) Name() string { return "xlsx" }

func (l *WorkbookLoader) Load(ctx context.Context, dataset string) (*models.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(dataset)
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", dataset, err)
	}
	return tableFromGrid(dataset, rows)
}
