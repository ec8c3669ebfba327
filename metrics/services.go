package metrics

import (
	"sort"

	"salon-insights/models"
)

// ServiceUsage is how many rows ticked one service column.
type ServiceUsage struct {
	Service string `json:"Service"`
	Count   int    `json:"count"`
}

// ServiceCount counts, per service column, the rows whose cell is non-blank.
// A row can count toward several services. Services nobody used are omitted;
// the rest come most used first, ties in column order.
func (e *Engine) ServiceCount(f *Frame, month string) ([]ServiceUsage, error) {
	required := append([]string{models.ColName, models.ColTimestamp}, models.ServiceColumns...)
	ok, err := f.ready(required...)
	if !ok {
		return []ServiceUsage{}, err
	}

	records := filterMonth(f.Records, month)
	out := []ServiceUsage{}
	for _, service := range models.ServiceColumns {
		n := 0
		for _, r := range records {
			if r.Get(service) != "" {
				n++
			}
		}
		if n > 0 {
			out = append(out, ServiceUsage{Service: service, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

// UniqueServiceCounts is the same table, shown under its own month selector.
func (e *Engine) UniqueServiceCounts(f *Frame, month string) ([]ServiceUsage, error) {
	return e.ServiceCount(f, month)
}
