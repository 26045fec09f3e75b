package store

import "testing"

func TestCreateInteractionBadDate(t *testing.T) {
	s := setupTestStore(t)
	p := addPerson(t, s, "Jane", "Doe", nil)

	_, err := s.CreateInteraction(p.ID, interactionTypeID(t, s), "15/01/2026", nil)
	if !IsValidation(err) {
		t.Fatalf("bad date: got %v, want validation error", err)
	}
}

func TestCreateInteractionMissingPerson(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.CreateInteraction(123, interactionTypeID(t, s), "2026-01-15", nil)
	if !IsNotFound(err) {
		t.Fatalf("missing person: got %v, want not-found error", err)
	}
}

func TestCreateInteractionUnknownType(t *testing.T) {
	s := setupTestStore(t)
	p := addPerson(t, s, "Jane", "Doe", nil)

	_, err := s.CreateInteraction(p.ID, 999, "2026-01-15", nil)
	if !IsValidation(err) {
		t.Fatalf("unknown type: got %v, want validation error", err)
	}
}

func TestUpdateInteraction(t *testing.T) {
	s := setupTestStore(t)
	p := addPerson(t, s, "Jane", "Doe", nil)
	in := logOn(t, s, p.ID, "2026-01-15")

	in.Date = "2026-02-20"
	in.Notes = strPtr("caught up over coffee")
	updated, err := s.UpdateInteraction(in)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Date != "2026-02-20" {
		t.Errorf("date = %s", updated.Date)
	}
	if updated.Notes == nil || *updated.Notes != "caught up over coffee" {
		t.Errorf("notes = %v", updated.Notes)
	}
}

func TestFollowUpRows(t *testing.T) {
	s := setupTestStore(t)
	withCadence := addPerson(t, s, "Jane", "Doe", intPtr(30))
	addPerson(t, s, "No", "Cadence", nil)
	never := addPerson(t, s, "Never", "Contacted", intPtr(14))

	logOn(t, s, withCadence.ID, "2026-01-01")
	logOn(t, s, withCadence.ID, "2026-04-01")

	rows, err := s.FollowUpRows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (people without a cadence are excluded)", len(rows))
	}

	byID := map[int64]FollowUpRow{}
	for _, r := range rows {
		byID[r.PersonID] = r
	}

	jane := byID[withCadence.ID]
	if jane.LatestDate == nil || *jane.LatestDate != "2026-04-01" {
		t.Errorf("latest date = %v, want the most recent interaction", jane.LatestDate)
	}
	if byID[never.ID].LatestDate != nil {
		t.Errorf("never-contacted person has latest date %v", *byID[never.ID].LatestDate)
	}
}

func TestCountsSummary(t *testing.T) {
	s := setupTestStore(t)
	a := addPerson(t, s, "Jane", "Doe", nil)
	b := addPerson(t, s, "John", "Smith", nil)
	o := addOrg(t, s, "Acme")
	logOn(t, s, a.ID, "2026-01-15")
	if err := s.LinkPeople(a.ID, b.ID, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.LinkOrgPerson(o.ID, a.ID, nil); err != nil {
		t.Fatal(err)
	}

	c, err := s.CountsSummary()
	if err != nil {
		t.Fatal(err)
	}
	want := Counts{People: 2, Organizations: 1, Interactions: 1, Links: 2}
	if *c != want {
		t.Errorf("counts = %+v, want %+v", *c, want)
	}
}
