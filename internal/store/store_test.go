package store

import (
	"testing"

	"go.uber.org/zap"
)

// setupTestStore opens an in-memory database through the real migration
// path.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", zap.NewNop())
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string { return &s }
func intPtr(v int64) *int64   { return &v }

func addPerson(t *testing.T, s *Store, first, last string, cadence *int64) *Person {
	t.Helper()
	p, err := s.CreatePerson(&Person{FirstName: first, LastName: last, FollowUpCadenceDays: cadence})
	if err != nil {
		t.Fatalf("creating person %s %s: %v", first, last, err)
	}
	return p
}

func addOrg(t *testing.T, s *Store, name string) *Organization {
	t.Helper()
	types, err := s.OrgTypes()
	if err != nil || len(types) == 0 {
		t.Fatalf("listing org types: %v", err)
	}
	o, err := s.CreateOrganization(name, types[0].ID, nil)
	if err != nil {
		t.Fatalf("creating organization %s: %v", name, err)
	}
	return o
}

func interactionTypeID(t *testing.T, s *Store) int64 {
	t.Helper()
	types, err := s.InteractionTypes()
	if err != nil || len(types) == 0 {
		t.Fatalf("listing interaction types: %v", err)
	}
	return types[0].ID
}

func logOn(t *testing.T, s *Store, personID int64, date string) *Interaction {
	t.Helper()
	in, err := s.CreateInteraction(personID, interactionTypeID(t, s), date, nil)
	if err != nil {
		t.Fatalf("creating interaction on %s: %v", date, err)
	}
	return in
}

func TestMigrateIdempotent(t *testing.T) {
	s := setupTestStore(t)

	// Running the migration path again on the same connection must be a
	// no-op, not a "table already exists" failure.
	if err := s.migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	var version int
	if err := s.Conn().QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatal(err)
	}
	if version != len(migrations) {
		t.Errorf("user_version = %d, want %d", version, len(migrations))
	}
}

func TestLookupSeeds(t *testing.T) {
	s := setupTestStore(t)

	orgTypes, err := s.OrgTypes()
	if err != nil {
		t.Fatal(err)
	}
	if len(orgTypes) != 5 {
		t.Errorf("got %d org types, want 5", len(orgTypes))
	}

	interactionTypes, err := s.InteractionTypes()
	if err != nil {
		t.Fatal(err)
	}
	if len(interactionTypes) != 6 {
		t.Errorf("got %d interaction types, want 6", len(interactionTypes))
	}

	found := false
	for _, v := range interactionTypes {
		if v.Name == "meeting" {
			found = true
		}
	}
	if !found {
		t.Error("seeded interaction types missing 'meeting'")
	}
}

func TestDeleteReferencedInteractionType(t *testing.T) {
	s := setupTestStore(t)
	p := addPerson(t, s, "Ada", "Lovelace", nil)
	in := logOn(t, s, p.ID, "2026-01-15")

	err := s.DeleteInteractionType(in.TypeID)
	if !IsValidation(err) {
		t.Fatalf("deleting referenced type: got %v, want validation error", err)
	}

	// Once the interaction is gone the type can be removed.
	if err := s.DeleteInteraction(in.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteInteractionType(in.TypeID); err != nil {
		t.Fatalf("deleting unreferenced type: %v", err)
	}
}
