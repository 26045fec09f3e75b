package store

import (
	"database/sql"
	"errors"
	"fmt"
)

const orgCols = `o.id, o.name, o.org_type_id, t.name, o.notes, o.created_at, o.updated_at`

func scanOrg(scanner interface{ Scan(dest ...any) error }) (Organization, error) {
	var o Organization
	var created, updated string
	err := scanner.Scan(&o.ID, &o.Name, &o.OrgTypeID, &o.OrgType, &o.Notes, &created, &updated)
	if err != nil {
		return o, err
	}
	o.CreatedAt = parseTime(created)
	o.UpdatedAt = parseTime(updated)
	return o, nil
}

// CreateOrganization inserts an organization. Duplicate names and unknown
// org types are validation errors.
func (s *Store) CreateOrganization(name string, orgTypeID int64, notes *string) (*Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(`
		INSERT INTO organization (name, org_type_id, notes) VALUES (?, ?, ?)
	`, name, orgTypeID, notes)
	if isUniqueErr(err) {
		return nil, Validationf("an organization named %s already exists", name)
	}
	if isForeignKeyErr(err) {
		return nil, Validationf("unknown organization type %d", orgTypeID)
	}
	if err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted organization id: %w", err)
	}
	return s.getOrganization(id)
}

// GetOrganization returns a single organization by id.
func (s *Store) GetOrganization(id int64) (*Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrganization(id)
}

func (s *Store) getOrganization(id int64) (*Organization, error) {
	row := s.conn.QueryRow(`
		SELECT `+orgCols+`
		FROM organization o
		JOIN org_type t ON t.id = o.org_type_id
		WHERE o.id = ?
	`, id)
	o, err := scanOrg(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("organization", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading organization %d: %w", id, err)
	}
	return &o, nil
}

// UpdateOrganization writes all mutable columns back and bumps updated_at.
func (s *Store) UpdateOrganization(o *Organization) (*Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(`
		UPDATE organization
		SET name = ?, org_type_id = ?, notes = ?, updated_at = datetime('now')
		WHERE id = ?
	`, o.Name, o.OrgTypeID, o.Notes, o.ID)
	if isUniqueErr(err) {
		return nil, Validationf("an organization named %s already exists", o.Name)
	}
	if isForeignKeyErr(err) {
		return nil, Validationf("unknown organization type %d", o.OrgTypeID)
	}
	if err != nil {
		return nil, fmt.Errorf("updating organization %d: %w", o.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, notFound("organization", o.ID)
	}
	return s.getOrganization(o.ID)
}

// DeleteOrganization removes an organization; its person links cascade.
func (s *Store) DeleteOrganization(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(`DELETE FROM organization WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting organization %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("organization", id)
	}
	return nil
}

// ListOrganizations returns all organizations sorted by name, with member
// counts joined in.
func (s *Store) ListOrganizations() ([]OrgListRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(`
		SELECT ` + orgCols + `, COUNT(r.id)
		FROM organization o
		JOIN org_type t ON t.id = o.org_type_id
		LEFT JOIN relationship_organization_person r ON r.organization_id = o.id
		GROUP BY o.id
		ORDER BY o.name COLLATE NOCASE
	`)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	defer rows.Close()

	var out []OrgListRow
	for rows.Next() {
		var r OrgListRow
		var created, updated string
		err := rows.Scan(&r.ID, &r.Name, &r.OrgTypeID, &r.OrgType, &r.Notes,
			&created, &updated, &r.MemberCount)
		if err != nil {
			return nil, fmt.Errorf("scanning organization row: %w", err)
		}
		r.CreatedAt = parseTime(created)
		r.UpdatedAt = parseTime(updated)
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetOrgDetail returns an organization with its linked people.
func (s *Store) GetOrgDetail(id int64) (*OrgDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.getOrganization(id)
	if err != nil {
		return nil, err
	}
	people, err := s.peopleForOrg(id)
	if err != nil {
		return nil, err
	}
	return &OrgDetail{Organization: *o, People: people}, nil
}
