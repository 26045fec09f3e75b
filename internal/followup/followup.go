// Package followup computes which people are overdue for contact and
// which are coming due, from their cadence and latest interaction date.
package followup

import (
	"sort"
	"time"
)

// UpcomingWindowDays is how far ahead the "upcoming" list looks. The
// window is inclusive: someone due exactly 14 days out still shows up,
// as does someone due today.
const UpcomingWindowDays = 14

// Input is one person with a follow-up cadence. Latest is nil when the
// person has no recorded interactions.
type Input struct {
	PersonID    int64
	Name        string
	CadenceDays int64
	Latest      *time.Time
	CreatedAt   time.Time
}

// Entry is one line of the overdue or upcoming list.
type Entry struct {
	PersonID       int64      `json:"person_id"`
	Name           string     `json:"name"`
	CadenceDays    int64      `json:"cadence_days"`
	Latest         *time.Time `json:"latest_interaction"`
	NeverContacted bool       `json:"never_contacted"`
	DaysOverdue    int64      `json:"days_overdue,omitempty"`
	DaysUntilDue   int64      `json:"days_until_due,omitempty"`
}

// Report holds both lists, already ordered for display.
type Report struct {
	Overdue  []Entry `json:"overdue"`
	Upcoming []Entry `json:"upcoming"`
}

// daysBetween counts whole calendar days from a to b, ignoring
// time-of-day.
func daysBetween(a, b time.Time) int64 {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int64(bu.Sub(au) / (24 * time.Hour))
}

// Build classifies every input as overdue, upcoming, or neither, relative
// to today.
//
// A person is overdue when strictly more than cadence days have passed
// since the latest interaction; a person with a cadence but no
// interactions at all is perpetually overdue. Upcoming means the due date
// falls within [today, today+UpcomingWindowDays].
func Build(inputs []Input, today time.Time) *Report {
	r := &Report{Overdue: []Entry{}, Upcoming: []Entry{}}

	for _, in := range inputs {
		e := Entry{
			PersonID:    in.PersonID,
			Name:        in.Name,
			CadenceDays: in.CadenceDays,
			Latest:      in.Latest,
		}

		if in.Latest == nil {
			e.NeverContacted = true
			e.DaysOverdue = daysBetween(in.CreatedAt, today) - in.CadenceDays
			if e.DaysOverdue < 0 {
				e.DaysOverdue = 0
			}
			r.Overdue = append(r.Overdue, e)
			continue
		}

		since := daysBetween(*in.Latest, today)
		until := in.CadenceDays - since
		switch {
		case since > in.CadenceDays:
			e.DaysOverdue = since - in.CadenceDays
			r.Overdue = append(r.Overdue, e)
		case until >= 0 && until <= UpcomingWindowDays:
			e.DaysUntilDue = until
			r.Upcoming = append(r.Upcoming, e)
		}
	}

	// Most overdue first; never-contacted people lead the list.
	sort.SliceStable(r.Overdue, func(i, j int) bool {
		a, b := r.Overdue[i], r.Overdue[j]
		if a.NeverContacted != b.NeverContacted {
			return a.NeverContacted
		}
		if a.DaysOverdue != b.DaysOverdue {
			return a.DaysOverdue > b.DaysOverdue
		}
		return a.Name < b.Name
	})

	// Soonest due first.
	sort.SliceStable(r.Upcoming, func(i, j int) bool {
		a, b := r.Upcoming[i], r.Upcoming[j]
		if a.DaysUntilDue != b.DaysUntilDue {
			return a.DaysUntilDue < b.DaysUntilDue
		}
		return a.Name < b.Name
	})

	return r
}
