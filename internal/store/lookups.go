package store

import "fmt"

func (s *Store) listLookup(table string) ([]LookupValue, error) {
	rows, err := s.conn.Query(`SELECT id, name FROM ` + table + ` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	var out []LookupValue
	for rows.Next() {
		var v LookupValue
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) createLookup(table, name string) (*LookupValue, error) {
	res, err := s.conn.Exec(`INSERT INTO `+table+` (name) VALUES (?)`, name)
	if isUniqueErr(err) {
		return nil, Validationf("%s %q already exists", lookupLabel(table), name)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted %s id: %w", table, err)
	}
	return &LookupValue{ID: id, Name: name}, nil
}

func (s *Store) deleteLookup(table string, id int64) error {
	res, err := s.conn.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	if isForeignKeyErr(err) {
		return Validationf("%s %d is still in use", lookupLabel(table), id)
	}
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", table, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(lookupLabel(table), id)
	}
	return nil
}

func lookupLabel(table string) string {
	if table == "org_type" {
		return "organization type"
	}
	return "interaction type"
}

// OrgTypes lists the org_type lookup table.
func (s *Store) OrgTypes() ([]LookupValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLookup("org_type")
}

// InteractionTypes lists the interaction_type lookup table.
func (s *Store) InteractionTypes() ([]LookupValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLookup("interaction_type")
}

// CreateOrgType adds a custom organization type.
func (s *Store) CreateOrgType(name string) (*LookupValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLookup("org_type", name)
}

// CreateInteractionType adds a custom interaction type.
func (s *Store) CreateInteractionType(name string) (*LookupValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLookup("interaction_type", name)
}

// DeleteOrgType removes an organization type. Fails with a validation
// error while organizations still reference it.
func (s *Store) DeleteOrgType(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLookup("org_type", id)
}

// DeleteInteractionType removes an interaction type. Fails with a
// validation error while interactions still reference it.
func (s *Store) DeleteInteractionType(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLookup("interaction_type", id)
}
