package metrics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"salon-insights/models"
	"salon-insights/utils"
)

// ErrMissingColumn means the snapshot does not have a column a metric reads.
var ErrMissingColumn = errors.New("missing column")

// Record is one normalized row. The raw cells are kept untouched; Time and
// the calendar fields are derived and are only meaningful when Valid is set.
type Record struct {
	Index int
	Row   models.Row

	Time  time.Time
	Valid bool

	Date  time.Time // midnight of Time's calendar day
	Month string    // English month name
	Week    int // ISO-8601 week number
	ISOYear int // year the ISO week belongs to
	Year    int
}

func (r Record) Get(column string) string {
	return strings.TrimSpace(r.Row[column])
}

// Phone is the canonical customer key, "" when the row has none.
func (r Record) Phone() string {
	return utils.CanonicalPhone(r.Row[models.ColPhoneNumber])
}

// Amount parses Bill Amount. Blank or malformed amounts report ok=false and
// are left out of every sum.
func (r Record) Amount() (decimal.Decimal, bool) {
	return parseAmount(r.Row[models.ColBillAmount])
}

func (r Record) monthNumber() int {
	if !r.Valid {
		return 0
	}
	return int(r.Time.Month())
}

// Frame is a normalized snapshot of one dataset.
type Frame struct {
	Dataset string
	Columns []string
	Records []Record

	// Unparsed counts rows whose timestamp could not be read.
	Unparsed int
}

func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Records)
}

func (f *Frame) Empty() bool { return f.Len() == 0 }

func (f *Frame) HasColumn(name string) bool {
	if f == nil {
		return false
	}
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ready reports whether a metric has anything to compute. An empty frame is
// not an error; a non-empty frame without the needed columns is.
func (f *Frame) ready(columns ...string) (bool, error) {
	if f.Empty() {
		return false, nil
	}
	for _, c := range columns {
		if !f.HasColumn(c) {
			return false, fmt.Errorf("%w %q in dataset %q", ErrMissingColumn, c, f.Dataset)
		}
	}
	return true, nil
}

func (f *Frame) all() []Record {
	if f == nil {
		return nil
	}
	return f.Records
}

// timed returns the records with a usable timestamp.
func (f *Frame) timed() []Record {
	out := make([]Record, 0, f.Len())
	for _, r := range f.all() {
		if r.Valid {
			out = append(out, r)
		}
	}
	return out
}

var amountNoise = strings.NewReplacer(",", "", "₹", "", "Rs.", "", "Rs", "", " ", "")

func parseAmount(raw string) (decimal.Decimal, bool) {
	s := amountNoise.Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
