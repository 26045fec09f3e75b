package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const interactionCols = `i.id, i.person_id, i.interaction_type_id, t.name,
	i.interaction_date, i.notes, i.created_at, i.updated_at`

func scanInteraction(scanner interface{ Scan(dest ...any) error }) (Interaction, error) {
	var in Interaction
	var created, updated string
	err := scanner.Scan(&in.ID, &in.PersonID, &in.TypeID, &in.TypeName,
		&in.Date, &in.Notes, &created, &updated)
	if err != nil {
		return in, err
	}
	in.CreatedAt = parseTime(created)
	in.UpdatedAt = parseTime(updated)
	return in, nil
}

func validDate(date string) error {
	if _, err := time.Parse(dateFormat, date); err != nil {
		return Validationf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

// CreateInteraction records an interaction with a person on a calendar
// date (YYYY-MM-DD).
func (s *Store) CreateInteraction(personID, typeID int64, date string, notes *string) (*Interaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validDate(date); err != nil {
		return nil, err
	}
	// Check the person first so a bad id reads as not-found rather than
	// an opaque foreign key failure.
	if _, err := s.getPerson(personID); err != nil {
		return nil, err
	}

	res, err := s.conn.Exec(`
		INSERT INTO interaction (person_id, interaction_type_id, interaction_date, notes)
		VALUES (?, ?, ?, ?)
	`, personID, typeID, date, notes)
	if isForeignKeyErr(err) {
		return nil, Validationf("unknown interaction type %d", typeID)
	}
	if err != nil {
		return nil, fmt.Errorf("creating interaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted interaction id: %w", err)
	}
	return s.getInteraction(id)
}

// GetInteraction returns a single interaction by id.
func (s *Store) GetInteraction(id int64) (*Interaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getInteraction(id)
}

func (s *Store) getInteraction(id int64) (*Interaction, error) {
	row := s.conn.QueryRow(`
		SELECT `+interactionCols+`
		FROM interaction i
		JOIN interaction_type t ON t.id = i.interaction_type_id
		WHERE i.id = ?
	`, id)
	in, err := scanInteraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("interaction", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading interaction %d: %w", id, err)
	}
	return &in, nil
}

// UpdateInteraction writes the type, date and notes back and bumps
// updated_at.
func (s *Store) UpdateInteraction(in *Interaction) (*Interaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validDate(in.Date); err != nil {
		return nil, err
	}

	res, err := s.conn.Exec(`
		UPDATE interaction
		SET interaction_type_id = ?, interaction_date = ?, notes = ?, updated_at = datetime('now')
		WHERE id = ?
	`, in.TypeID, in.Date, in.Notes, in.ID)
	if isForeignKeyErr(err) {
		return nil, Validationf("unknown interaction type %d", in.TypeID)
	}
	if err != nil {
		return nil, fmt.Errorf("updating interaction %d: %w", in.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, notFound("interaction", in.ID)
	}
	return s.getInteraction(in.ID)
}

// DeleteInteraction removes one interaction.
func (s *Store) DeleteInteraction(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(`DELETE FROM interaction WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting interaction %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("interaction", id)
	}
	return nil
}

// InteractionsByPerson returns a person's interactions, most recent first.
func (s *Store) InteractionsByPerson(personID int64) ([]Interaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getPerson(personID); err != nil {
		return nil, err
	}
	return s.interactionsByPerson(personID)
}

func (s *Store) interactionsByPerson(personID int64) ([]Interaction, error) {
	rows, err := s.conn.Query(`
		SELECT `+interactionCols+`
		FROM interaction i
		JOIN interaction_type t ON t.id = i.interaction_type_id
		WHERE i.person_id = ?
		ORDER BY i.interaction_date DESC, i.id DESC
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("listing interactions for person %d: %w", personID, err)
	}
	defer rows.Close()

	var out []Interaction
	for rows.Next() {
		in, err := scanInteraction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning interaction row: %w", err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
