package api

import (
	"strings"

	"rolo/internal/store"
)

// CreateOrgRequest creates an organization under an existing org type.
type CreateOrgRequest struct {
	Name      string
	OrgTypeID int64
	Notes     string
}

func (s *Service) CreateOrganization(req CreateOrgRequest) (*store.Organization, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, store.Validationf("organization name is required")
	}
	if req.OrgTypeID < 1 {
		return nil, store.Validationf("organization type is required")
	}
	o, err := s.store.CreateOrganization(strings.TrimSpace(req.Name), req.OrgTypeID, optStr(req.Notes))
	return o, s.friendly("creating organization", err)
}

func (s *Service) GetOrganization(id int64) (*store.OrgDetail, error) {
	d, err := s.store.GetOrgDetail(id)
	return d, s.friendly("reading organization", err)
}

// UpdateOrgRequest applies partial changes to an organization.
type UpdateOrgRequest struct {
	ID         int64
	Name       *string
	OrgTypeID  *int64
	Notes      *string
	ClearNotes bool
}

func (s *Service) UpdateOrganization(req UpdateOrgRequest) (*store.Organization, error) {
	o, err := s.store.GetOrganization(req.ID)
	if err != nil {
		return nil, s.friendly("reading organization", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, store.Validationf("organization name is required")
		}
		o.Name = strings.TrimSpace(*req.Name)
	}
	if req.OrgTypeID != nil {
		o.OrgTypeID = *req.OrgTypeID
	}
	if req.Notes != nil {
		o.Notes = optStr(*req.Notes)
	}
	if req.ClearNotes {
		o.Notes = nil
	}

	updated, err := s.store.UpdateOrganization(o)
	return updated, s.friendly("updating organization", err)
}

func (s *Service) DeleteOrganization(id int64) error {
	return s.friendly("deleting organization", s.store.DeleteOrganization(id))
}

func (s *Service) ListOrganizations() ([]store.OrgListRow, error) {
	rows, err := s.store.ListOrganizations()
	return rows, s.friendly("listing organizations", err)
}

func (s *Service) OrgTypes() ([]store.LookupValue, error) {
	v, err := s.store.OrgTypes()
	return v, s.friendly("listing organization types", err)
}

func (s *Service) InteractionTypes() ([]store.LookupValue, error) {
	v, err := s.store.InteractionTypes()
	return v, s.friendly("listing interaction types", err)
}

func (s *Service) AddOrgType(name string) (*store.LookupValue, error) {
	if strings.TrimSpace(name) == "" {
		return nil, store.Validationf("type name is required")
	}
	v, err := s.store.CreateOrgType(strings.TrimSpace(name))
	return v, s.friendly("creating organization type", err)
}

func (s *Service) AddInteractionType(name string) (*store.LookupValue, error) {
	if strings.TrimSpace(name) == "" {
		return nil, store.Validationf("type name is required")
	}
	v, err := s.store.CreateInteractionType(strings.TrimSpace(name))
	return v, s.friendly("creating interaction type", err)
}
