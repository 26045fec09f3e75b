package store

import (
	"fmt"

	"go.uber.org/zap"
)

// migrations are applied in order; PRAGMA user_version records how many have
// run. Each entry is executed inside its own transaction.
var migrations = []string{
	migration1,
}

const migration1 = `
CREATE TABLE org_type (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE interaction_type (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE person (
	id                     INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name             TEXT NOT NULL,
	middle_name            TEXT,
	last_name              TEXT NOT NULL,
	notes                  TEXT,
	follow_up_cadence_days INTEGER CHECK (follow_up_cadence_days > 0),
	created_at             TEXT NOT NULL DEFAULT (datetime('now')),
	updated_at             TEXT NOT NULL DEFAULT (datetime('now')),
	UNIQUE (first_name, last_name)
);

CREATE TABLE organization (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL UNIQUE,
	org_type_id INTEGER NOT NULL REFERENCES org_type (id) ON DELETE RESTRICT,
	notes       TEXT,
	created_at  TEXT NOT NULL DEFAULT (datetime('now')),
	updated_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE interaction (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	person_id           INTEGER NOT NULL REFERENCES person (id) ON DELETE CASCADE,
	interaction_type_id INTEGER NOT NULL REFERENCES interaction_type (id) ON DELETE RESTRICT,
	interaction_date    TEXT NOT NULL,
	notes               TEXT,
	created_at          TEXT NOT NULL DEFAULT (datetime('now')),
	updated_at          TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE relationship_person_person (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	person_1_id INTEGER NOT NULL REFERENCES person (id) ON DELETE CASCADE,
	person_2_id INTEGER NOT NULL REFERENCES person (id) ON DELETE CASCADE,
	label       TEXT,
	created_at  TEXT NOT NULL DEFAULT (datetime('now')),
	CHECK (person_1_id < person_2_id),
	UNIQUE (person_1_id, person_2_id)
);

CREATE TABLE relationship_organization_person (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	organization_id INTEGER NOT NULL REFERENCES organization (id) ON DELETE CASCADE,
	person_id       INTEGER NOT NULL REFERENCES person (id) ON DELETE CASCADE,
	label           TEXT,
	created_at      TEXT NOT NULL DEFAULT (datetime('now')),
	UNIQUE (organization_id, person_id)
);

CREATE INDEX idx_interaction_person ON interaction (person_id);
CREATE INDEX idx_interaction_date ON interaction (interaction_date);
CREATE INDEX idx_rel_pp_p1 ON relationship_person_person (person_1_id);
CREATE INDEX idx_rel_pp_p2 ON relationship_person_person (person_2_id);
CREATE INDEX idx_rel_op_org ON relationship_organization_person (organization_id);
CREATE INDEX idx_rel_op_person ON relationship_organization_person (person_id);

INSERT OR IGNORE INTO org_type (name) VALUES
	('employer'), ('school'), ('club'), ('community'), ('other');

INSERT OR IGNORE INTO interaction_type (name) VALUES
	('meeting'), ('call'), ('email'), ('text'), ('event'), ('other');
`

// migrate applies all migrations past the recorded user_version.
// Opening an already-migrated database is a no-op.
func (s *Store) migrate() error {
	var version int
	if err := s.conn.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading user_version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.conn.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", i+1, err)
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", i+1, err)
		}
		// PRAGMA does not accept bind parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("bumping user_version to %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", i+1, err)
		}
		s.log.Info("applied migration", zap.Int("version", i+1))
	}

	return nil
}
