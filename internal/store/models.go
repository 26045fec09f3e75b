package store

import (
	"strings"
	"time"
)

// timeFormat is how datetime('now') renders timestamps in SQLite.
const timeFormat = "2006-01-02 15:04:05"

// dateFormat is the storage format for interaction dates (calendar date,
// no time of day).
const dateFormat = "2006-01-02"

// Person is a row in the person table.
type Person struct {
	ID                  int64     `json:"id"`
	FirstName           string    `json:"first_name"`
	MiddleName          *string   `json:"middle_name"`
	LastName            string    `json:"last_name"`
	Notes               *string   `json:"notes"`
	FollowUpCadenceDays *int64    `json:"follow_up_cadence_days"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DisplayName renders "First Middle Last" with the middle name omitted
// when absent.
func (p *Person) DisplayName() string {
	return displayName(p.FirstName, p.MiddleName, p.LastName)
}

func displayName(first string, middle *string, last string) string {
	parts := []string{first}
	if middle != nil && *middle != "" {
		parts = append(parts, *middle)
	}
	parts = append(parts, last)
	return strings.Join(parts, " ")
}

// PersonListRow is one entry of a paginated person listing, with
// interaction aggregates joined in.
type PersonListRow struct {
	Person
	LatestInteractionDate *string `json:"latest_interaction_date"`
	InteractionCount      int64   `json:"interaction_count"`
}

// PersonPage is one page of a person listing.
type PersonPage struct {
	Rows       []PersonListRow `json:"rows"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int64           `json:"total_pages"`
}

// PersonDetail is a person with all related entities resolved.
type PersonDetail struct {
	Person
	Interactions  []Interaction `json:"interactions"`
	People        []PersonLink  `json:"people"`
	Organizations []OrgLink     `json:"organizations"`
}

// Organization is a row in the organization table, with the type name
// joined in.
type Organization struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OrgTypeID int64     `json:"org_type_id"`
	OrgType   string    `json:"org_type"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrgListRow is one entry of an organization listing.
type OrgListRow struct {
	Organization
	MemberCount int64 `json:"member_count"`
}

// OrgDetail is an organization with its linked people.
type OrgDetail struct {
	Organization
	People []OrgLink `json:"people"`
}

// LookupValue is a row of a lookup table (org_type, interaction_type).
type LookupValue struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Interaction is a row in the interaction table, with the type name
// joined in. Date is a calendar date in YYYY-MM-DD form.
type Interaction struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"person_id"`
	TypeID    int64     `json:"type_id"`
	TypeName  string    `json:"type"`
	Date      string    `json:"date"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonLink is a person-person relationship seen from one side.
type PersonLink struct {
	RelationshipID int64   `json:"relationship_id"`
	OtherID        int64   `json:"other_id"`
	OtherName      string  `json:"other_name"`
	Label          *string `json:"label"`
}

// OrgLink is an organization-person relationship.
type OrgLink struct {
	RelationshipID int64   `json:"relationship_id"`
	OrganizationID int64   `json:"organization_id"`
	Organization   string  `json:"organization"`
	PersonID       int64   `json:"person_id"`
	PersonName     string  `json:"person_name"`
	Label          *string `json:"label"`
}

// PersonPairRow is a raw person-person relationship row, used by the
// graph extraction.
type PersonPairRow struct {
	ID        int64
	Person1ID int64
	Person2ID int64
	Label     *string
}

// OrgPersonRow is a raw organization-person relationship row.
type OrgPersonRow struct {
	ID             int64
	OrganizationID int64
	PersonID       int64
	Label          *string
}

// FollowUpRow feeds the follow-up computation: one row per person with a
// cadence set. LatestDate is nil when the person has no interactions.
type FollowUpRow struct {
	PersonID    int64
	Name        string
	CadenceDays int64
	LatestDate  *string
	CreatedAt   time.Time
}

// SearchResult is one typeahead hit.
type SearchResult struct {
	Kind  string `json:"kind"` // "person" or "organization"
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// Counts are the dashboard header numbers.
type Counts struct {
	People        int64 `json:"people"`
	Organizations int64 `json:"organizations"`
	Interactions  int64 `json:"interactions"`
	Links         int64 `json:"links"`
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeFormat, s)
	return t
}
