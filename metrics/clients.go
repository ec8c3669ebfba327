package metrics

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"salon-insights/models"
)

const (
	// ClientListSize bounds the top and least client tables.
	ClientListSize = 20
	// SpenderListSize bounds the legacy top-spender list.
	SpenderListSize = 10
)

// ClientSpend is one customer, keyed by canonical phone.
type ClientSpend struct {
	PhoneNumber string              `json:"phone_number"`
	Name        string              `json:"name"`
	Visits      int                 `json:"visits"`
	TotalSpent  decimal.NullDecimal `json:"total_spent"`
}

// TopClientsSpendVisits lists the 20 customers who spent the most. Visits is
// the number of rows billed to the phone.
func (e *Engine) TopClientsSpendVisits(f *Frame) ([]ClientSpend, error) {
	return e.clientsBySpend(f, true)
}

// LeastClientsSpendVisits lists the 20 customers who spent the least.
func (e *Engine) LeastClientsSpendVisits(f *Frame) ([]ClientSpend, error) {
	return e.clientsBySpend(f, false)
}

func (e *Engine) clientsBySpend(f *Frame, descending bool) ([]ClientSpend, error) {
	ok, err := f.ready(models.ColPhoneNumber, models.ColName, models.ColBillAmount)
	if !ok {
		return []ClientSpend{}, err
	}
	ranked := truncate(rankBySum(groupBy(f.Records, byPhone), descending), ClientListSize)
	return lo.Map(ranked, func(g rankedGroup, _ int) ClientSpend {
		return ClientSpend{
			PhoneNumber: g.key,
			Name:        displayName(g.records),
			Visits:      len(g.records),
			TotalSpent:  decimal.NewNullDecimal(g.sum),
		}
	}), nil
}

// ClientVisits is a row of the legacy by-name visit ranking.
type ClientVisits struct {
	Name   string `json:"Name"`
	Visits int    `json:"visits"`
}

// TopClientsByVisits is the legacy top-20 list keyed by display name.
func (e *Engine) TopClientsByVisits(f *Frame) ([]ClientVisits, error) {
	ok, err := f.ready(models.ColName)
	if !ok {
		return []ClientVisits{}, err
	}
	ranked := truncate(rankByCount(groupBy(f.Records, byColumn(models.ColName))), ClientListSize)
	return lo.Map(ranked, func(g group, _ int) ClientVisits {
		return ClientVisits{Name: g.key, Visits: len(g.records)}
	}), nil
}

// Spender is a row of the legacy by-name spend ranking.
type Spender struct {
	Name       string          `json:"Name"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// TopSpenders is the legacy top-10 list keyed by display name.
func (e *Engine) TopSpenders(f *Frame) ([]Spender, error) {
	ok, err := f.ready(models.ColName, models.ColBillAmount)
	if !ok {
		return []Spender{}, err
	}
	ranked := truncate(rankBySum(groupBy(f.Records, byColumn(models.ColName)), true), SpenderListSize)
	return lo.Map(ranked, func(g rankedGroup, _ int) Spender {
		return Spender{Name: g.key, TotalSpent: g.sum}
	}), nil
}

// SpendVisits feeds the spend-versus-visits scatter plot.
type SpendVisits struct {
	PhoneNumber      string              `json:"phone_number"`
	Name             string              `json:"name"`
	Visits           int                 `json:"visits"`
	TotalSpent       decimal.NullDecimal `json:"total_spent"`
	AvgSpendPerVisit decimal.NullDecimal `json:"avg_spend_per_visit"`
}

// SpendVsVisits lists every customer with total spend and the average per
// billed row, rounded to 2 places. Customers with no amount at all are kept
// with null spend and sorted last.
func (e *Engine) SpendVsVisits(f *Frame) ([]SpendVisits, error) {
	ok, err := f.ready(models.ColPhoneNumber, models.ColName, models.ColBillAmount)
	if !ok {
		return []SpendVisits{}, err
	}
	groups := groupBy(f.Records, byPhone)
	ranked := rankBySum(groups, true)

	out := make([]SpendVisits, 0, len(groups))
	inRanking := make(map[string]struct{}, len(ranked))
	for _, g := range ranked {
		inRanking[g.key] = struct{}{}
		visits := decimal.NewFromInt(int64(len(g.records)))
		out = append(out, SpendVisits{
			PhoneNumber:      g.key,
			Name:             displayName(g.records),
			Visits:           len(g.records),
			TotalSpent:       decimal.NewNullDecimal(g.sum),
			AvgSpendPerVisit: decimal.NewNullDecimal(round2(g.sum.Div(visits))),
		})
	}
	for _, g := range groups {
		if _, ok := inRanking[g.key]; ok {
			continue
		}
		out = append(out, SpendVisits{
			PhoneNumber: g.key,
			Name:        displayName(g.records),
			Visits:      len(g.records),
		})
	}
	return out, nil
}

// byPhone keys records by canonical phone and drops rows without one.
func byPhone(r Record) (string, bool) {
	p := r.Phone()
	return p, p != ""
}

// displayName picks the first non-blank name among a customer's rows.
func displayName(records []Record) string {
	for _, r := range records {
		if n := r.Get(models.ColName); n != "" {
			return n
		}
	}
	return ""
}
