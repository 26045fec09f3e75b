package api

// LinkPeopleRequest relates two people. The pair is unordered; the store
// normalizes it.
type LinkPeopleRequest struct {
	PersonA int64
	PersonB int64
	Label   string
}

func (s *Service) LinkPeople(req LinkPeopleRequest) error {
	return s.friendly("linking people", s.store.LinkPeople(req.PersonA, req.PersonB, optStr(req.Label)))
}

func (s *Service) UnlinkPeople(a, b int64) error {
	return s.friendly("unlinking people", s.store.UnlinkPeople(a, b))
}

// LinkOrgPersonRequest relates an organization and a person.
type LinkOrgPersonRequest struct {
	OrganizationID int64
	PersonID       int64
	Label          string
}

func (s *Service) LinkOrgPerson(req LinkOrgPersonRequest) error {
	return s.friendly("linking organization and person",
		s.store.LinkOrgPerson(req.OrganizationID, req.PersonID, optStr(req.Label)))
}

func (s *Service) UnlinkOrgPerson(orgID, personID int64) error {
	return s.friendly("unlinking organization and person", s.store.UnlinkOrgPerson(orgID, personID))
}
