package store

import (
	"fmt"
	"testing"
)

func TestCreatePersonDuplicate(t *testing.T) {
	s := setupTestStore(t)
	addPerson(t, s, "Jane", "Doe", nil)

	_, err := s.CreatePerson(&Person{FirstName: "Jane", LastName: "Doe"})
	if !IsValidation(err) {
		t.Fatalf("duplicate create: got %v, want validation error", err)
	}

	// The failed insert must not have left a row behind.
	page, err := s.ListPeople(ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 {
		t.Errorf("total = %d after rejected duplicate, want 1", page.Total)
	}
}

func TestGetPersonNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetPerson(42)
	if !IsNotFound(err) {
		t.Fatalf("got %v, want not-found error", err)
	}
	if got := err.Error(); got != "person 42 not found" {
		t.Errorf("message = %q", got)
	}
}

func TestUpdatePersonBumpsUpdatedAt(t *testing.T) {
	s := setupTestStore(t)
	p := addPerson(t, s, "Grace", "Hopper", nil)

	p.Notes = strPtr("met at conference")
	updated, err := s.UpdatePerson(p)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Notes == nil || *updated.Notes != "met at conference" {
		t.Errorf("notes not persisted: %v", updated.Notes)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", updated.UpdatedAt, updated.CreatedAt)
	}
}

func TestDeletePersonCascades(t *testing.T) {
	s := setupTestStore(t)
	a := addPerson(t, s, "Alan", "Turing", nil)
	b := addPerson(t, s, "John", "von Neumann", nil)
	o := addOrg(t, s, "Bletchley Park")

	logOn(t, s, a.ID, "2026-02-01")
	if err := s.LinkPeople(a.ID, b.ID, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.LinkOrgPerson(o.ID, a.ID, nil); err != nil {
		t.Fatal(err)
	}

	if err := s.DeletePerson(a.ID); err != nil {
		t.Fatal(err)
	}

	var interactions, pp, op int
	if err := s.Conn().QueryRow(`SELECT COUNT(*) FROM interaction`).Scan(&interactions); err != nil {
		t.Fatal(err)
	}
	if err := s.Conn().QueryRow(`SELECT COUNT(*) FROM relationship_person_person`).Scan(&pp); err != nil {
		t.Fatal(err)
	}
	if err := s.Conn().QueryRow(`SELECT COUNT(*) FROM relationship_organization_person`).Scan(&op); err != nil {
		t.Fatal(err)
	}
	if interactions != 0 || pp != 0 || op != 0 {
		t.Errorf("cascade left rows behind: interactions=%d person-person=%d org-person=%d",
			interactions, pp, op)
	}
}

func TestListPeoplePagination(t *testing.T) {
	s := setupTestStore(t)
	for i := 0; i < 7; i++ {
		addPerson(t, s, "P", fmt.Sprintf("Surname%02d", i), nil)
	}

	page, err := s.ListPeople(ListOptions{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 7 {
		t.Errorf("total = %d, want 7", page.Total)
	}
	if page.TotalPages != 3 {
		t.Errorf("total_pages = %d, want 3", page.TotalPages)
	}
	if len(page.Rows) != 3 {
		t.Fatalf("page 2 has %d rows, want 3", len(page.Rows))
	}
	if page.Rows[0].LastName != "Surname03" {
		t.Errorf("page 2 starts at %s, want Surname03", page.Rows[0].LastName)
	}
}

func TestListPeopleEmpty(t *testing.T) {
	s := setupTestStore(t)

	page, err := s.ListPeople(ListOptions{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 0 || page.TotalPages != 0 || len(page.Rows) != 0 {
		t.Errorf("empty listing: total=%d total_pages=%d rows=%d, want all zero",
			page.Total, page.TotalPages, len(page.Rows))
	}
}

func TestListPeopleSortAllowList(t *testing.T) {
	s := setupTestStore(t)
	addPerson(t, s, "Zoe", "Adams", nil)
	addPerson(t, s, "Amy", "Zhang", nil)

	// An unrecognized sort field must fall back to the default ordering,
	// never reach the SQL text.
	hostile, err := s.ListPeople(ListOptions{Sort: "last_name; DROP TABLE person--"})
	if err != nil {
		t.Fatalf("hostile sort field errored: %v", err)
	}
	byDefault, err := s.ListPeople(ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if hostile.Rows[0].ID != byDefault.Rows[0].ID {
		t.Error("unrecognized sort field changed the ordering")
	}

	// The person table must still exist.
	if _, err := s.GetPerson(hostile.Rows[0].ID); err != nil {
		t.Fatalf("person table damaged: %v", err)
	}
}

func TestListPeopleSortByLatestInteraction(t *testing.T) {
	s := setupTestStore(t)
	a := addPerson(t, s, "Old", "Contact", nil)
	b := addPerson(t, s, "Recent", "Contact", nil)
	logOn(t, s, a.ID, "2026-01-01")
	logOn(t, s, b.ID, "2026-06-01")

	page, err := s.ListPeople(ListOptions{Sort: "latest_interaction_date", Desc: true})
	if err != nil {
		t.Fatal(err)
	}
	if page.Rows[0].ID != b.ID {
		t.Errorf("desc latest-interaction sort: first row is %d, want %d", page.Rows[0].ID, b.ID)
	}
	if page.Rows[0].LatestInteractionDate == nil || *page.Rows[0].LatestInteractionDate != "2026-06-01" {
		t.Errorf("latest date = %v, want 2026-06-01", page.Rows[0].LatestInteractionDate)
	}
}

func TestPersonDetail(t *testing.T) {
	s := setupTestStore(t)
	a := addPerson(t, s, "Jane", "Doe", intPtr(30))
	b := addPerson(t, s, "John", "Smith", nil)
	o := addOrg(t, s, "Acme")

	logOn(t, s, a.ID, "2026-03-01")
	logOn(t, s, a.ID, "2026-05-01")
	if err := s.LinkPeople(a.ID, b.ID, strPtr("friend")); err != nil {
		t.Fatal(err)
	}
	if err := s.LinkOrgPerson(o.ID, a.ID, strPtr("employee")); err != nil {
		t.Fatal(err)
	}

	d, err := s.GetPersonDetail(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Interactions) != 2 {
		t.Fatalf("got %d interactions, want 2", len(d.Interactions))
	}
	if d.Interactions[0].Date != "2026-05-01" {
		t.Errorf("interactions not newest-first: %s", d.Interactions[0].Date)
	}
	if len(d.People) != 1 || d.People[0].OtherID != b.ID {
		t.Errorf("person links = %+v", d.People)
	}
	if d.People[0].OtherName != "John Smith" {
		t.Errorf("other name = %q", d.People[0].OtherName)
	}
	if len(d.Organizations) != 1 || d.Organizations[0].Organization != "Acme" {
		t.Errorf("org links = %+v", d.Organizations)
	}
}

func TestCadenceCheckConstraint(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.CreatePerson(&Person{FirstName: "Bad", LastName: "Cadence", FollowUpCadenceDays: intPtr(-5)})
	if !IsValidation(err) {
		t.Fatalf("negative cadence: got %v, want validation error", err)
	}
}
