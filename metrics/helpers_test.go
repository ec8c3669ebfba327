package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-insights/models"
)

var clientColumns = append([]string{
	models.ColTimestamp, models.ColName, models.ColPhoneNumber, models.ColBillAmount, models.ColServiceDoneBy,
}, models.ServiceColumns...)

var productColumns = []string{
	models.ColTimestamp, models.ColProductName, models.ColBillAmount, models.ColSoldBy,
}

// fridayEvening is 2024-03-01 18:00 UTC, ISO week 9.
var fridayEvening = time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC)

func engineAt(now time.Time) *Engine {
	return NewEngine(WithClock(func() time.Time { return now }), WithLocation(time.UTC))
}

func visit(ts, name, phone, amount, staff string, services ...string) models.Row {
	row := models.Row{
		models.ColTimestamp:     ts,
		models.ColName:          name,
		models.ColPhoneNumber:   phone,
		models.ColBillAmount:    amount,
		models.ColServiceDoneBy: staff,
	}
	for _, s := range services {
		row[s] = "Yes"
	}
	return row
}

func sale(ts, product, amount, soldBy string) models.Row {
	return models.Row{
		models.ColTimestamp:   ts,
		models.ColProductName: product,
		models.ColBillAmount:  amount,
		models.ColSoldBy:      soldBy,
	}
}

func clientFrame(t *testing.T, e *Engine, rows ...models.Row) *Frame {
	t.Helper()
	f, err := e.Normalize(models.NewTable(models.ClientData, clientColumns, rows))
	require.NoError(t, err)
	return f
}

func productFrame(t *testing.T, e *Engine, rows ...models.Row) *Frame {
	t.Helper()
	f, err := e.Normalize(models.NewTable(models.ProductSale, productColumns, rows))
	require.NoError(t, err)
	return f
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, context ...string) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s %v", want, got.String(), context)
}
