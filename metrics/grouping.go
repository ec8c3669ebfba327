package metrics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// group is the set of records sharing a key, kept in first-seen order.
type group struct {
	key     string
	records []Record
}

// groupBy buckets records by key. Records for which key reports ok=false are
// dropped. Groups come back in the order their first record appeared, so a
// stable sort afterwards leaves ties in input order.
func groupBy(records []Record, key func(Record) (string, bool)) []group {
	index := make(map[string]int)
	var groups []group
	for _, r := range records {
		k, ok := key(r)
		if !ok {
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].records = append(groups[i].records, r)
	}
	return groups
}

// sumAmounts adds up Bill Amount. The result is null when no record had an
// amount, matching SQL SUM over nothing.
func sumAmounts(records []Record) decimal.NullDecimal {
	total := decimal.Zero
	valid := false
	for _, r := range records {
		if amt, ok := r.Amount(); ok {
			total = total.Add(amt)
			valid = true
		}
	}
	return decimal.NullDecimal{Decimal: total, Valid: valid}
}

func countAmounts(records []Record) int {
	n := 0
	for _, r := range records {
		if _, ok := r.Amount(); ok {
			n++
		}
	}
	return n
}

func distinct(records []Record, key func(Record) string) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		if k := key(r); k != "" {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}

// rankBySum orders groups by their amount total, dropping groups whose total
// is null. Ties keep their input order.
func rankBySum(groups []group, descending bool) []rankedGroup {
	ranked := make([]rankedGroup, 0, len(groups))
	for _, g := range groups {
		sum := sumAmounts(g.records)
		if !sum.Valid {
			continue
		}
		ranked = append(ranked, rankedGroup{group: g, sum: sum.Decimal})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if descending {
			return ranked[i].sum.GreaterThan(ranked[j].sum)
		}
		return ranked[i].sum.LessThan(ranked[j].sum)
	})
	return ranked
}

type rankedGroup struct {
	group
	sum decimal.Decimal
}

// rankByCount orders groups by record count, largest first.
func rankByCount(groups []group) []group {
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].records) > len(groups[j].records)
	})
	return groups
}

func truncate[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// onePercent is the incentive rate on billed amounts.
var onePercent = decimal.NewFromFloat(0.01)
