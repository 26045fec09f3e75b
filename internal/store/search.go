package store

import (
	"fmt"
	"strings"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// likePattern builds a case-insensitive substring pattern, escaping LIKE
// metacharacters in the user's input.
func likePattern(query string) string {
	q := strings.ToLower(query)
	q = strings.ReplaceAll(q, `\`, `\\`)
	q = strings.ReplaceAll(q, `%`, `\%`)
	q = strings.ReplaceAll(q, `_`, `\_`)
	return "%" + q + "%"
}

// Search runs the typeahead: case-insensitive substring match over person
// name fields and organization names, people first, capped at limit.
func (s *Store) Search(query string, limit int) ([]SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if strings.TrimSpace(query) == "" {
		return []SearchResult{}, nil
	}

	pattern := likePattern(query)
	results := make([]SearchResult, 0, limit)

	rows, err := s.conn.Query(`
		SELECT id, first_name, middle_name, last_name
		FROM person
		WHERE lower(first_name) LIKE ?1 ESCAPE '\'
		   OR lower(middle_name) LIKE ?1 ESCAPE '\'
		   OR lower(last_name) LIKE ?1 ESCAPE '\'
		ORDER BY last_name COLLATE NOCASE, first_name COLLATE NOCASE
		LIMIT ?2
	`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("searching people: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var first, last string
		var middle *string
		if err := rows.Scan(&id, &first, &middle, &last); err != nil {
			return nil, fmt.Errorf("scanning person search row: %w", err)
		}
		results = append(results, SearchResult{
			Kind:  "person",
			ID:    id,
			Label: displayName(first, middle, last),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(results) >= limit {
		return results[:limit], nil
	}

	orgRows, err := s.conn.Query(`
		SELECT id, name
		FROM organization
		WHERE lower(name) LIKE ?1 ESCAPE '\'
		ORDER BY name COLLATE NOCASE
		LIMIT ?2
	`, pattern, limit-len(results))
	if err != nil {
		return nil, fmt.Errorf("searching organizations: %w", err)
	}
	defer orgRows.Close()

	for orgRows.Next() {
		var id int64
		var name string
		if err := orgRows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning organization search row: %w", err)
		}
		results = append(results, SearchResult{Kind: "organization", ID: id, Label: name})
	}
	return results, orgRows.Err()
}
