package metrics

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Metric is a single KPI value. Rows is how many records contributed, so a
// renderer can tell a quiet day (Rows > 0, Value 0) from no data (Rows 0).
type Metric struct {
	Key   string
	Value decimal.Decimal
	Rows  int
}

func (m Metric) Int() int { return int(m.Value.IntPart()) }

func (m Metric) Float() float64 { return m.Value.InexactFloat64() }

// MarshalJSON writes {"<key>": value, "rows": n}.
func (m Metric) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		m.Key:  m.Value,
		"rows": m.Rows,
	})
}

func sumMetric(key string, records []Record) Metric {
	sum := sumAmounts(records)
	return Metric{Key: key, Value: sum.Decimal, Rows: countAmounts(records)}
}

func countMetric(key string, n int) Metric {
	return Metric{Key: key, Value: decimal.NewFromInt(int64(n)), Rows: n}
}
