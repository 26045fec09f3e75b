package api

import (
	"rolo/internal/store"
)

// LogInteractionRequest records one interaction with a person. Date is a
// calendar date in YYYY-MM-DD form.
type LogInteractionRequest struct {
	PersonID int64
	TypeID   int64
	Date     string
	Notes    string
}

func (s *Service) LogInteraction(req LogInteractionRequest) (*store.Interaction, error) {
	if req.PersonID < 1 {
		return nil, store.Validationf("person is required")
	}
	if req.TypeID < 1 {
		return nil, store.Validationf("interaction type is required")
	}
	if req.Date == "" {
		return nil, store.Validationf("date is required")
	}
	in, err := s.store.CreateInteraction(req.PersonID, req.TypeID, req.Date, optStr(req.Notes))
	return in, s.friendly("logging interaction", err)
}

// UpdateInteractionRequest applies partial changes to an interaction.
type UpdateInteractionRequest struct {
	ID     int64
	TypeID *int64
	Date   *string
	Notes  *string
}

func (s *Service) UpdateInteraction(req UpdateInteractionRequest) (*store.Interaction, error) {
	in, err := s.store.GetInteraction(req.ID)
	if err != nil {
		return nil, s.friendly("reading interaction", err)
	}

	if req.TypeID != nil {
		in.TypeID = *req.TypeID
	}
	if req.Date != nil {
		in.Date = *req.Date
	}
	if req.Notes != nil {
		in.Notes = optStr(*req.Notes)
	}

	updated, err := s.store.UpdateInteraction(in)
	return updated, s.friendly("updating interaction", err)
}

func (s *Service) DeleteInteraction(id int64) error {
	return s.friendly("deleting interaction", s.store.DeleteInteraction(id))
}

func (s *Service) ListInteractions(personID int64) ([]store.Interaction, error) {
	out, err := s.store.InteractionsByPerson(personID)
	return out, s.friendly("listing interactions", err)
}
