package services

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"salon-insights/models"
)

// SheetsLoader reads one worksheet per dataset from a Google spreadsheet,
// using the values as the sheet displays them.
type SheetsLoader struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewSheetsLoader authenticates with a service account, from a file or from
// inline JSON.
func NewSheetsLoader(ctx context.Context, spreadsheetID, credentialsFile, credentialsJSON string) (*SheetsLoader, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &SheetsLoader{service: srv, spreadsheetID: spreadsheetID}, nil
}

func (l *SheetsLoader) Name() string { return "sheets" }

func (l *SheetsLoader) Load(ctx context.Context, dataset string) (*models.Table, error) {
	resp, err := l.service.Spreadsheets.Values.
		Get(l.spreadsheetID, sheetRange(dataset)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", dataset, err)
	}
	return tableFromGrid(dataset, cellsToStrings(resp.Values))
}

// sheetRange addresses a whole worksheet; titles with spaces must be quoted.
func sheetRange(title string) string {
	return "'" + title + "'"
}

func cellsToStrings(values [][]interface{}) [][]string {
	grid := make([][]string, len(values))
	for i, line := range values {
		grid[i] = make([]string, len(line))
		for j, v := range line {
			if v != nil {
				grid[i][j] = fmt.Sprint(v)
			}
		}
	}
	return grid
}
