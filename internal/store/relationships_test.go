package store

import "testing"

func TestLinkPeopleNormalized(t *testing.T) {
	s := setupTestStore(t)
	a := addPerson(t, s, "Jane", "Doe", nil)
	b := addPerson(t, s, "John", "Smith", nil)

	// Insert with the higher id first; the row must still be stored as
	// (min, max).
	if err := s.LinkPeople(b.ID, a.ID, nil); err != nil {
		t.Fatal(err)
	}

	var p1, p2 int64
	err := s.Conn().QueryRow(`SELECT person_1_id, person_2_id FROM relationship_person_person`).Scan(&p1, &p2)
	if err != nil {
		t.Fatal(err)
	}
	if p1 >= p2 {
		t.Errorf("pair not normalized: (%d, %d)", p1, p2)
	}

	// The same pair in the opposite order is the same relationship.
	err = s.LinkPeople(a.ID, b.ID, nil)
	if !IsValidation(err) {
		t.Fatalf("reversed duplicate: got %v, want validation error", err)
	}
}

func TestLinkPersonToSelf(t *testing.T) {
	s := setupTestStore(t)
	a := addPerson(t, s, "Solo", "Person", nil)

	err := s.LinkPeople(a.ID, a.ID, nil)
	if !IsValidation(err) {
		t.Fatalf("self link: got %v, want validation error", err)
	}
}

func TestLinkPeopleMissingPerson(t *testing.T) {
	s := setupTestStore(t)
	a := addPerson(t, s, "Only", "One", nil)

	err := s.LinkPeople(a.ID, 999, nil)
	if !IsNotFound(err) {
		t.Fatalf("missing person: got %v, want not-found error", err)
	}
}

func TestUnlinkPeopleEitherOrder(t *testing.T) {
	s := setupTestStore(t)
	a := addPerson(t, s, "Jane", "Doe", nil)
	b := addPerson(t, s, "John", "Smith", nil)

	if err := s.LinkPeople(a.ID, b.ID, nil); err != nil {
		t.Fatal(err)
	}
	// Unlink with reversed arguments must find the normalized row.
	if err := s.UnlinkPeople(b.ID, a.ID); err != nil {
		t.Fatalf("reversed unlink: %v", err)
	}

	err := s.UnlinkPeople(a.ID, b.ID)
	if !IsNotFound(err) {
		t.Fatalf("second unlink: got %v, want not-found error", err)
	}
}

func TestLinkOrgPersonDuplicate(t *testing.T) {
	s := setupTestStore(t)
	p := addPerson(t, s, "Jane", "Doe", nil)
	o := addOrg(t, s, "Acme")

	if err := s.LinkOrgPerson(o.ID, p.ID, nil); err != nil {
		t.Fatal(err)
	}
	err := s.LinkOrgPerson(o.ID, p.ID, nil)
	if !IsValidation(err) {
		t.Fatalf("duplicate org link: got %v, want validation error", err)
	}
}

func TestDeleteOrganizationCascadesLinks(t *testing.T) {
	s := setupTestStore(t)
	p := addPerson(t, s, "Jane", "Doe", nil)
	o := addOrg(t, s, "Acme")

	if err := s.LinkOrgPerson(o.ID, p.ID, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteOrganization(o.ID); err != nil {
		t.Fatal(err)
	}

	var n int
	if err := s.Conn().QueryRow(`SELECT COUNT(*) FROM relationship_organization_person`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("org delete left %d link rows", n)
	}

	// The person survives.
	if _, err := s.GetPerson(p.ID); err != nil {
		t.Errorf("person deleted by org cascade: %v", err)
	}
}
