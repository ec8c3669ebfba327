package metrics

import (
	"encoding/json"
	"sort"
	"time"

	"salon-insights/models"
	"salon-insights/utils"
)

// Day is a calendar date that serialises as YYYY-MM-DD.
type Day struct{ time.Time }

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

// LastVisit is how long a customer has been away.
type LastVisit struct {
	PhoneNumber        string `json:"Phone Number"`
	CustomerName       string `json:"Customer_Name"`
	LastVisitDate      Day    `json:"Last_Visit_Date"`
	DaysSinceLastVisit int    `json:"Days Since Last Visit"`
}

// DaysSinceLastVisit reports, per canonical phone, the last day it was
// billed and the whole days elapsed since, longest absence first.
//
// Each (phone, day) is first collapsed to its latest bill; when two bills
// share a timestamp the later row wins. Rows without a phone or a timestamp
// are ignored.
func (e *Engine) DaysSinceLastVisit(f *Frame) ([]LastVisit, error) {
	ok, err := f.ready(models.ColPhoneNumber, models.ColName)
	if !ok {
		return []LastVisit{}, err
	}

	type dayKey struct {
		phone string
		day   time.Time
	}
	latest := make(map[dayKey]Record)
	var phones []string
	seenPhone := make(map[string]struct{})
	for _, r := range f.timed() {
		p := r.Phone()
		if p == "" {
			continue
		}
		if _, ok := seenPhone[p]; !ok {
			seenPhone[p] = struct{}{}
			phones = append(phones, p)
		}
		k := dayKey{phone: p, day: r.Date}
		if cur, ok := latest[k]; !ok || !r.Time.Before(cur.Time) {
			latest[k] = r
		}
	}

	last := make(map[string]Record, len(phones))
	for k, r := range latest {
		if cur, ok := last[k.phone]; !ok || r.Date.After(cur.Date) {
			last[k.phone] = r
		}
	}

	now := e.Now()
	out := make([]LastVisit, 0, len(phones))
	for _, p := range phones {
		r := last[p]
		out = append(out, LastVisit{
			PhoneNumber:        p,
			CustomerName:       r.Get(models.ColName),
			LastVisitDate:      Day{r.Date},
			DaysSinceLastVisit: utils.DaysBetween(r.Date, now),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysSinceLastVisit > out[j].DaysSinceLastVisit
	})
	return out, nil
}
