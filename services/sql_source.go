package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"salon-insights/models"
)

// SQLLoader reads the Postgres mirror of the spreadsheet. Rows are returned
// in insertion order, like the sheet.
type SQLLoader struct {
	db *gorm.DB
}

func NewSQLLoader(db *gorm.DB) *SQLLoader {
	return &SQLLoader{db: db}
}

func (l *SQLLoader) Name() string { return "postgres" }

func (l *SQLLoader) Load(ctx context.Context, dataset string) (*models.Table, error) {
	switch dataset {
	case models.ClientData:
		var visits []models.ServiceVisit
		if err := l.db.WithContext(ctx).Order("ctid").Find(&visits).Error; err != nil {
			return nil, fmt.Errorf("query %s: %w", models.ServiceVisit{}.TableName(), err)
		}
		rows := make([]models.Row, len(visits))
		for i, v := range visits {
			rows[i] = v.ToRow()
		}
		return models.NewTable(dataset, models.ServiceVisitColumns, rows), nil

	case models.ProductSale:
		var sales []models.ProductSaleRecord
		if err := l.db.WithContext(ctx).Order("ctid").Find(&sales).Error; err != nil {
			return nil, fmt.Errorf("query %s: %w", models.ProductSaleRecord{}.TableName(), err)
		}
		rows := make([]models.Row, len(sales))
		for i, s := range sales {
			rows[i] = s.ToRow()
		}
		return models.NewTable(dataset, models.ProductSaleColumns, rows), nil
	}
	return nil, fmt.Errorf("unknown dataset %q", dataset)
}
