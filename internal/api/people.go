package api

import (
	"strings"

	"rolo/internal/store"
)

// CreatePersonRequest creates a person. Empty optional fields are stored
// as NULL; CadenceDays 0 means no follow-up cadence.
type CreatePersonRequest struct {
	FirstName   string
	MiddleName  string
	LastName    string
	Notes       string
	CadenceDays int64
}

func (s *Service) CreatePerson(req CreatePersonRequest) (*store.Person, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, store.Validationf("first name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return nil, store.Validationf("last name is required")
	}
	if req.CadenceDays < 0 {
		return nil, store.Validationf("follow-up cadence must be a positive number of days")
	}

	p, err := s.store.CreatePerson(&store.Person{
		FirstName:           strings.TrimSpace(req.FirstName),
		MiddleName:          optStr(strings.TrimSpace(req.MiddleName)),
		LastName:            strings.TrimSpace(req.LastName),
		Notes:               optStr(req.Notes),
		FollowUpCadenceDays: optInt(req.CadenceDays),
	})
	return p, s.friendly("creating person", err)
}

func (s *Service) GetPerson(id int64) (*store.PersonDetail, error) {
	d, err := s.store.GetPersonDetail(id)
	return d, s.friendly("reading person", err)
}

// UpdatePersonRequest applies partial changes: nil pointers leave a field
// untouched, ClearNotes/ClearCadence drop the optional fields.
type UpdatePersonRequest struct {
	ID           int64
	FirstName    *string
	MiddleName   *string
	LastName     *string
	Notes        *string
	CadenceDays  *int64
	ClearNotes   bool
	ClearCadence bool
}

func (s *Service) UpdatePerson(req UpdatePersonRequest) (*store.Person, error) {
	p, err := s.store.GetPerson(req.ID)
	if err != nil {
		return nil, s.friendly("reading person", err)
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return nil, store.Validationf("first name is required")
		}
		p.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return nil, store.Validationf("last name is required")
		}
		p.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.MiddleName != nil {
		p.MiddleName = optStr(strings.TrimSpace(*req.MiddleName))
	}
	if req.Notes != nil {
		p.Notes = optStr(*req.Notes)
	}
	if req.ClearNotes {
		p.Notes = nil
	}
	if req.CadenceDays != nil {
		if *req.CadenceDays < 1 {
			return nil, store.Validationf("follow-up cadence must be a positive number of days")
		}
		p.FollowUpCadenceDays = req.CadenceDays
	}
	if req.ClearCadence {
		p.FollowUpCadenceDays = nil
	}

	updated, err := s.store.UpdatePerson(p)
	return updated, s.friendly("updating person", err)
}

func (s *Service) DeletePerson(id int64) error {
	return s.friendly("deleting person", s.store.DeletePerson(id))
}

// ListPeopleRequest selects one page of people. Sort must be one of the
// allow-listed fields; anything else falls back to the default order.
type ListPeopleRequest struct {
	Page     int
	PageSize int
	Sort     string
	Desc     bool
}

func (s *Service) ListPeople(req ListPeopleRequest) (*store.PersonPage, error) {
	if req.PageSize < 1 {
		req.PageSize = s.pageSize
	}
	page, err := s.store.ListPeople(store.ListOptions{
		Page:     req.Page,
		PageSize: req.PageSize,
		Sort:     req.Sort,
		Desc:     req.Desc,
	})
	return page, s.friendly("listing people", err)
}
