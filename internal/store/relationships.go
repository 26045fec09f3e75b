package store

import "fmt"

// LinkPeople records an unordered relationship between two people. The
// pair is normalized to (min, max) before the write so (A,B) and (B,A)
// land on the same row.
func (s *Store) LinkPeople(a, b int64, label *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a == b {
		return Validationf("cannot link a person to themselves")
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	if _, err := s.getPerson(lo); err != nil {
		return err
	}
	if _, err := s.getPerson(hi); err != nil {
		return err
	}

	_, err := s.conn.Exec(`
		INSERT INTO relationship_person_person (person_1_id, person_2_id, label)
		VALUES (?, ?, ?)
	`, lo, hi, label)
	if isUniqueErr(err) {
		return Validationf("those two people are already linked")
	}
	if err != nil {
		return fmt.Errorf("linking people %d and %d: %w", a, b, err)
	}
	return nil
}

// UnlinkPeople removes the relationship between two people, in either
// argument order.
func (s *Store) UnlinkPeople(a, b int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	res, err := s.conn.Exec(`
		DELETE FROM relationship_person_person
		WHERE person_1_id = ? AND person_2_id = ?
	`, lo, hi)
	if err != nil {
		return fmt.Errorf("unlinking people %d and %d: %w", a, b, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Entity: "relationship", Ref: fmt.Sprintf("%d-%d", a, b)}
	}
	return nil
}

// LinkOrgPerson records a membership link between an organization and a
// person.
func (s *Store) LinkOrgPerson(orgID, personID int64, label *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getOrganization(orgID); err != nil {
		return err
	}
	if _, err := s.getPerson(personID); err != nil {
		return err
	}

	_, err := s.conn.Exec(`
		INSERT INTO relationship_organization_person (organization_id, person_id, label)
		VALUES (?, ?, ?)
	`, orgID, personID, label)
	if isUniqueErr(err) {
		return Validationf("that person is already linked to that organization")
	}
	if err != nil {
		return fmt.Errorf("linking organization %d and person %d: %w", orgID, personID, err)
	}
	return nil
}

// UnlinkOrgPerson removes an organization-person link.
func (s *Store) UnlinkOrgPerson(orgID, personID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(`
		DELETE FROM relationship_organization_person
		WHERE organization_id = ? AND person_id = ?
	`, orgID, personID)
	if err != nil {
		return fmt.Errorf("unlinking organization %d and person %d: %w", orgID, personID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Entity: "relationship", Ref: fmt.Sprintf("%d-%d", orgID, personID)}
	}
	return nil
}

// personLinks returns all person-person relationships touching personID,
// seen from that person's side.
func (s *Store) personLinks(personID int64) ([]PersonLink, error) {
	rows, err := s.conn.Query(`
		SELECT r.id, p.id, p.first_name, p.middle_name, p.last_name, r.label
		FROM relationship_person_person r
		JOIN person p ON p.id = CASE
			WHEN r.person_1_id = ?1 THEN r.person_2_id
			ELSE r.person_1_id
		END
		WHERE r.person_1_id = ?1 OR r.person_2_id = ?1
		ORDER BY p.last_name COLLATE NOCASE, p.first_name COLLATE NOCASE
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("listing relationships for person %d: %w", personID, err)
	}
	defer rows.Close()

	var out []PersonLink
	for rows.Next() {
		var l PersonLink
		var first, last string
		var middle *string
		if err := rows.Scan(&l.RelationshipID, &l.OtherID, &first, &middle, &last, &l.Label); err != nil {
			return nil, fmt.Errorf("scanning relationship row: %w", err)
		}
		l.OtherName = displayName(first, middle, last)
		out = append(out, l)
	}
	return out, rows.Err()
}

const orgLinkCols = `r.id, o.id, o.name, p.id, p.first_name, p.middle_name, p.last_name, r.label`

func scanOrgLink(scanner interface{ Scan(dest ...any) error }) (OrgLink, error) {
	var l OrgLink
	var first, last string
	var middle *string
	err := scanner.Scan(&l.RelationshipID, &l.OrganizationID, &l.Organization,
		&l.PersonID, &first, &middle, &last, &l.Label)
	if err != nil {
		return l, err
	}
	l.PersonName = displayName(first, middle, last)
	return l, nil
}

func (s *Store) orgLinksForPerson(personID int64) ([]OrgLink, error) {
	rows, err := s.conn.Query(`
		SELECT `+orgLinkCols+`
		FROM relationship_organization_person r
		JOIN organization o ON o.id = r.organization_id
		JOIN person p ON p.id = r.person_id
		WHERE r.person_id = ?
		ORDER BY o.name COLLATE NOCASE
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("listing organizations for person %d: %w", personID, err)
	}
	defer rows.Close()
	return collectOrgLinks(rows)
}

func (s *Store) peopleForOrg(orgID int64) ([]OrgLink, error) {
	rows, err := s.conn.Query(`
		SELECT `+orgLinkCols+`
		FROM relationship_organization_person r
		JOIN organization o ON o.id = r.organization_id
		JOIN person p ON p.id = r.person_id
		WHERE r.organization_id = ?
		ORDER BY p.last_name COLLATE NOCASE, p.first_name COLLATE NOCASE
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing people for organization %d: %w", orgID, err)
	}
	defer rows.Close()
	return collectOrgLinks(rows)
}

func collectOrgLinks(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]OrgLink, error) {
	var out []OrgLink
	for rows.Next() {
		l, err := scanOrgLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning organization link row: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// AllPersonRelationships returns every person-person row, for the graph
// view.
func (s *Store) AllPersonRelationships() ([]PersonPairRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(`
		SELECT id, person_1_id, person_2_id, label FROM relationship_person_person
	`)
	if err != nil {
		return nil, fmt.Errorf("listing person relationships: %w", err)
	}
	defer rows.Close()

	var out []PersonPairRow
	for rows.Next() {
		var r PersonPairRow
		if err := rows.Scan(&r.ID, &r.Person1ID, &r.Person2ID, &r.Label); err != nil {
			return nil, fmt.Errorf("scanning person relationship row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AllOrgPersonRelationships returns every organization-person row, for
// the graph view.
func (s *Store) AllOrgPersonRelationships() ([]OrgPersonRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(`
		SELECT id, organization_id, person_id, label FROM relationship_organization_person
	`)
	if err != nil {
		return nil, fmt.Errorf("listing organization relationships: %w", err)
	}
	defer rows.Close()

	var out []OrgPersonRow
	for rows.Next() {
		var r OrgPersonRow
		if err := rows.Scan(&r.ID, &r.OrganizationID, &r.PersonID, &r.Label); err != nil {
			return nil, fmt.Errorf("scanning organization relationship row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AllPeopleBrief returns (id, display name) for every person, for the
// graph view.
func (s *Store) AllPeopleBrief() (map[int64]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(`SELECT id, first_name, middle_name, last_name FROM person`)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]string)
	for rows.Next() {
		var id int64
		var first, last string
		var middle *string
		if err := rows.Scan(&id, &first, &middle, &last); err != nil {
			return nil, fmt.Errorf("scanning person row: %w", err)
		}
		out[id] = displayName(first, middle, last)
	}
	return out, rows.Err()
}

// AllOrganizationsBrief returns (id, name) for every organization, for
// the graph view.
func (s *Store) AllOrganizationsBrief() (map[int64]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(`SELECT id, name FROM organization`)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning organization row: %w", err)
		}
		out[id] = name
	}
	return out, rows.Err()
}
