package api

import (
	"strings"
	"time"

	"rolo/internal/followup"
	"rolo/internal/graph"
	"rolo/internal/store"
)

// DashboardResponse is the aggregate view: header counts plus the
// overdue and upcoming follow-up lists.
type DashboardResponse struct {
	Counts   store.Counts     `json:"counts"`
	Overdue  []followup.Entry `json:"overdue"`
	Upcoming []followup.Entry `json:"upcoming"`
}

func (s *Service) Dashboard() (*DashboardResponse, error) {
	counts, err := s.store.CountsSummary()
	if err != nil {
		return nil, s.friendly("loading dashboard", err)
	}
	rows, err := s.store.FollowUpRows()
	if err != nil {
		return nil, s.friendly("loading dashboard", err)
	}

	inputs := make([]followup.Input, 0, len(rows))
	for _, r := range rows {
		in := followup.Input{
			PersonID:    r.PersonID,
			Name:        r.Name,
			CadenceDays: r.CadenceDays,
			CreatedAt:   r.CreatedAt,
		}
		if r.LatestDate != nil {
			if t, err := time.Parse("2006-01-02", *r.LatestDate); err == nil {
				in.Latest = &t
			}
		}
		inputs = append(inputs, in)
	}

	report := followup.Build(inputs, time.Now().UTC())
	return &DashboardResponse{
		Counts:   *counts,
		Overdue:  report.Overdue,
		Upcoming: report.Upcoming,
	}, nil
}

// Search runs the typeahead over person and organization names.
func (s *Service) Search(query string, limit int) ([]store.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, store.Validationf("search query is required")
	}
	out, err := s.store.Search(query, limit)
	return out, s.friendly("searching", err)
}

// Graph returns the full node/edge view.
func (s *Service) Graph() (*graph.View, error) {
	v, err := graph.FromStore(s.store)
	if err != nil {
		return nil, s.friendly("building graph", err)
	}
	return v, nil
}
