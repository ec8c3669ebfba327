package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"salon-insights/models"
)

const (
	// TimestampLayout is how the sheet writes Timestamp (day/month/year).
	TimestampLayout = "2/1/2006 15:04:05"
	// SaleDateLayout is the product sheet's Date column, e.g. 05-Mar-2024.
	SaleDateLayout = "2-Jan-2006"

	// AllMonths is the month selector value that disables month filtering.
	AllMonths = "All months"
)

// Normalize parses timestamps and derives Date, Month, Week, ISOYear and
// Year. The
// input table is never modified. A timestamp that does not parse leaves the
// record without a time; it is logged and skipped by every time-based metric.
//
// The product sheet may carry only a Date column; it is used when Timestamp
// is absent.
func (e *Engine) Normalize(t *models.Table) (*Frame, error) {
	if t.Empty() {
		f := &Frame{}
		if t != nil {
			f.Dataset = t.Dataset
			f.Columns = append([]string(nil), t.Columns...)
		}
		return f, nil
	}

	src := t.Clone()

	column, layout := models.ColTimestamp, TimestampLayout
	if !src.HasColumn(models.ColTimestamp) {
		if !src.HasColumn(models.ColDate) {
			return nil, fmt.Errorf("%w %q in dataset %q", ErrMissingColumn, models.ColTimestamp, src.Dataset)
		}
		column, layout = models.ColDate, SaleDateLayout
	}

	f := &Frame{
		Dataset: src.Dataset,
		Columns: src.Columns,
		Records: make([]Record, len(src.Rows)),
	}
	// A mirrored product table may carry both columns with only Date filled.
	dateFallback := column == models.ColTimestamp && src.HasColumn(models.ColDate)

	for i, row := range src.Rows {
		rec := Record{Index: i, Row: row}
		raw := strings.TrimSpace(row[column])
		ts, err := time.ParseInLocation(layout, raw, e.loc)
		if err != nil && raw == "" && dateFallback {
			raw = strings.TrimSpace(row[models.ColDate])
			ts, err = time.ParseInLocation(SaleDateLayout, raw, e.loc)
		}
		if err != nil {
			f.Unparsed++
			e.logger.Debug("unparsable timestamp",
				zap.String("dataset", src.Dataset),
				zap.Int("row", i),
				zap.String("value", raw),
			)
		} else {
			rec.Time = ts
			rec.Valid = true
			y, m, d := ts.Date()
			rec.Date = time.Date(y, m, d, 0, 0, 0, 0, e.loc)
			rec.Month = m.String()
			rec.ISOYear, rec.Week = ts.ISOWeek()
			rec.Year = y
		}
		f.Records[i] = rec
	}

	if f.Unparsed > 0 {
		e.logger.Warn("rows with unparsable timestamps",
			zap.String("dataset", src.Dataset),
			zap.Int("rows", f.Unparsed),
			zap.Int("total", len(f.Records)),
		)
	}
	return f, nil
}

// MonthOptions lists the month selector entries: AllMonths, then every month
// present in the frame in alphabetical order.
func MonthOptions(f *Frame) []string {
	if f.Empty() {
		return []string{AllMonths}
	}
	months := lo.Uniq(lo.FilterMap(f.Records, func(r Record, _ int) (string, bool) {
		return r.Month, r.Valid
	}))
	sort.Strings(months)
	return append([]string{AllMonths}, months...)
}

// filterMonth keeps the records of one month name; AllMonths or "" keeps all.
func filterMonth(records []Record, month string) []Record {
	if month == "" || month == AllMonths {
		return records
	}
	return lo.Filter(records, func(r Record, _ int) bool {
		return r.Valid && r.Month == month
	})
}
