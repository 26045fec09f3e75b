package store

import (
	"database/sql"
	"errors"
	"fmt"
)

const personCols = `p.id, p.first_name, p.middle_name, p.last_name, p.notes,
	p.follow_up_cadence_days, p.created_at, p.updated_at`

// scanPerson scans a row with the personCols columns in order.
func scanPerson(scanner interface{ Scan(dest ...any) error }) (Person, error) {
	var p Person
	var created, updated string
	err := scanner.Scan(
		&p.ID, &p.FirstName, &p.MiddleName, &p.LastName, &p.Notes,
		&p.FollowUpCadenceDays, &created, &updated,
	)
	if err != nil {
		return p, err
	}
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	return p, nil
}

// CreatePerson inserts a person and returns the stored row. A duplicate
// (first_name, last_name) pair is a validation error.
func (s *Store) CreatePerson(p *Person) (*Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(`
		INSERT INTO person (first_name, middle_name, last_name, notes, follow_up_cadence_days)
		VALUES (?, ?, ?, ?, ?)
	`, p.FirstName, p.MiddleName, p.LastName, p.Notes, p.FollowUpCadenceDays)
	if isUniqueErr(err) {
		return nil, Validationf("a person named %s %s already exists", p.FirstName, p.LastName)
	}
	if isCheckErr(err) {
		return nil, Validationf("follow-up cadence must be a positive number of days")
	}
	if err != nil {
		return nil, fmt.Errorf("creating person: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted person id: %w", err)
	}
	return s.getPerson(id)
}

// GetPerson returns a single person by id.
func (s *Store) GetPerson(id int64) (*Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getPerson(id)
}

func (s *Store) getPerson(id int64) (*Person, error) {
	row := s.conn.QueryRow(`SELECT `+personCols+` FROM person p WHERE p.id = ?`, id)
	p, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("person", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading person %d: %w", id, err)
	}
	return &p, nil
}

// UpdatePerson writes all mutable columns of p back and bumps updated_at.
func (s *Store) UpdatePerson(p *Person) (*Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(`
		UPDATE person
		SET first_name = ?, middle_name = ?, last_name = ?, notes = ?,
		    follow_up_cadence_days = ?, updated_at = datetime('now')
		WHERE id = ?
	`, p.FirstName, p.MiddleName, p.LastName, p.Notes, p.FollowUpCadenceDays, p.ID)
	if isUniqueErr(err) {
		return nil, Validationf("a person named %s %s already exists", p.FirstName, p.LastName)
	}
	if isCheckErr(err) {
		return nil, Validationf("follow-up cadence must be a positive number of days")
	}
	if err != nil {
		return nil, fmt.Errorf("updating person %d: %w", p.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, notFound("person", p.ID)
	}
	return s.getPerson(p.ID)
}

// DeletePerson removes a person; interactions and relationship rows
// cascade away with it.
func (s *Store) DeletePerson(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(`DELETE FROM person WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting person %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("person", id)
	}
	return nil
}

// ListOptions control a paginated person listing.
type ListOptions struct {
	Page     int
	PageSize int
	Sort     string
	Desc     bool
}

// personSortFields is the allow-list of sortable columns. Anything else
// falls back to the default ordering; user input never reaches the SQL
// text directly.
var personSortFields = map[string]string{
	"first_name":              "p.first_name COLLATE NOCASE",
	"middle_name":             "p.middle_name COLLATE NOCASE",
	"last_name":               "p.last_name COLLATE NOCASE",
	"follow_up_cadence_days":  "p.follow_up_cadence_days",
	"latest_interaction_date": "latest_interaction_date",
}

const defaultPageSize = 25

// ListPeople returns one page of people with interaction aggregates,
// sorted by an allow-listed field.
func (s *Store) ListPeople(opts ListOptions) (*PersonPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = defaultPageSize
	}

	orderExpr, ok := personSortFields[opts.Sort]
	if !ok {
		orderExpr = personSortFields["last_name"]
	}
	dir := "ASC"
	if opts.Desc {
		dir = "DESC"
	}

	var total int64
	if err := s.conn.QueryRow(`SELECT COUNT(*) FROM person`).Scan(&total); err != nil {
		return nil, fmt.Errorf("counting people: %w", err)
	}

	rows, err := s.conn.Query(fmt.Sprintf(`
		SELECT `+personCols+`,
		       MAX(i.interaction_date) AS latest_interaction_date,
		       COUNT(i.id)
		FROM person p
		LEFT JOIN interaction i ON i.person_id = p.id
		GROUP BY p.id
		ORDER BY %s %s, p.last_name COLLATE NOCASE ASC, p.id ASC
		LIMIT ? OFFSET ?
	`, orderExpr, dir), opts.PageSize, (opts.Page-1)*opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	page := &PersonPage{
		Rows:       []PersonListRow{},
		Total:      total,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: (total + int64(opts.PageSize) - 1) / int64(opts.PageSize),
	}

	for rows.Next() {
		var r PersonListRow
		var created, updated string
		err := rows.Scan(
			&r.ID, &r.FirstName, &r.MiddleName, &r.LastName, &r.Notes,
			&r.FollowUpCadenceDays, &created, &updated,
			&r.LatestInteractionDate, &r.InteractionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning person row: %w", err)
		}
		r.CreatedAt = parseTime(created)
		r.UpdatedAt = parseTime(updated)
		page.Rows = append(page.Rows, r)
	}
	return page, rows.Err()
}

// GetPersonDetail returns a person with interactions and relationships
// resolved.
func (s *Store) GetPersonDetail(id int64) (*PersonDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getPerson(id)
	if err != nil {
		return nil, err
	}

	interactions, err := s.interactionsByPerson(id)
	if err != nil {
		return nil, err
	}
	people, err := s.personLinks(id)
	if err != nil {
		return nil, err
	}
	orgs, err := s.orgLinksForPerson(id)
	if err != nil {
		return nil, err
	}

	return &PersonDetail{
		Person:        *p,
		Interactions:  interactions,
		People:        people,
		Organizations: orgs,
	}, nil
}

// FollowUpRows returns one row per person with a cadence set, with the
// latest interaction date joined in (nil when never contacted).
func (s *Store) FollowUpRows() ([]FollowUpRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(`
		SELECT p.id, p.first_name, p.middle_name, p.last_name,
		       p.follow_up_cadence_days, MAX(i.interaction_date), p.created_at
		FROM person p
		LEFT JOIN interaction i ON i.person_id = p.id
		WHERE p.follow_up_cadence_days IS NOT NULL
		GROUP BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying follow-up rows: %w", err)
	}
	defer rows.Close()

	var out []FollowUpRow
	for rows.Next() {
		var r FollowUpRow
		var first, last, created string
		var middle *string
		if err := rows.Scan(&r.PersonID, &first, &middle, &last, &r.CadenceDays, &r.LatestDate, &created); err != nil {
			return nil, fmt.Errorf("scanning follow-up row: %w", err)
		}
		r.Name = displayName(first, middle, last)
		r.CreatedAt = parseTime(created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountsSummary returns the dashboard header counts.
func (s *Store) CountsSummary() (*Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c Counts
	row := s.conn.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM person),
			(SELECT COUNT(*) FROM organization),
			(SELECT COUNT(*) FROM interaction),
			(SELECT COUNT(*) FROM relationship_person_person) +
			(SELECT COUNT(*) FROM relationship_organization_person)
	`)
	if err := row.Scan(&c.People, &c.Organizations, &c.Interactions, &c.Links); err != nil {
		return nil, fmt.Errorf("counting entities: %w", err)
	}
	return &c, nil
}
