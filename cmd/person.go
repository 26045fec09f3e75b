package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rolo/internal/api"
)

var (
	personFirst   string
	personMiddle  string
	personLast    string
	personNotes   string
	personCadence int64

	personListPage     int
	personListPageSize int
	personListSort     string
	personListDesc     bool
	personListJSON     bool

	personShowJSON bool

	personUpdateClearNotes   bool
	personUpdateClearCadence bool
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Manage people",
}

var personAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a person",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		p, err := svc.CreatePerson(api.CreatePersonRequest{
			FirstName:   personFirst,
			MiddleName:  personMiddle,
			LastName:    personLast,
			Notes:       personNotes,
			CadenceDays: personCadence,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (id %d)\n", p.DisplayName(), p.ID)
		return nil
	},
}

var personShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a person with interactions and relationships",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[0])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		d, err := svc.GetPerson(id)
		if err != nil {
			return err
		}

		if personShowJSON {
			return printJSON(d)
		}

		fmt.Printf("\n  %s (id %d)\n", d.DisplayName(), d.ID)
		if d.FollowUpCadenceDays != nil {
			fmt.Printf("  Follow-up every %d days\n", *d.FollowUpCadenceDays)
		}
		if d.Notes != nil {
			fmt.Printf("  Notes: %s\n", *d.Notes)
		}

		if len(d.Interactions) > 0 {
			fmt.Printf("\n  INTERACTIONS (%d)\n", len(d.Interactions))
			for _, in := range d.Interactions {
				fmt.Printf("    %s  %-8s %s  (%s)\n", in.Date, in.TypeName, orDash(in.Notes), relDate(in.Date))
			}
		}
		if len(d.People) > 0 {
			fmt.Printf("\n  PEOPLE (%d)\n", len(d.People))
			for _, l := range d.People {
				fmt.Printf("    %s (id %d)  %s\n", l.OtherName, l.OtherID, orDash(l.Label))
			}
		}
		if len(d.Organizations) > 0 {
			fmt.Printf("\n  ORGANIZATIONS (%d)\n", len(d.Organizations))
			for _, l := range d.Organizations {
				fmt.Printf("    %s (id %d)  %s\n", l.Organization, l.OrganizationID, orDash(l.Label))
			}
		}
		fmt.Println()
		return nil
	},
}

var personListCmd = &cobra.Command{
	Use:   "list",
	Short: "List people, paginated and sorted",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		page, err := svc.ListPeople(api.ListPeopleRequest{
			Page:     personListPage,
			PageSize: personListPageSize,
			Sort:     personListSort,
			Desc:     personListDesc,
		})
		if err != nil {
			return err
		}

		if personListJSON {
			return printJSON(page)
		}

		fmt.Printf("\n  %-5s %-30s %-8s %-12s %s\n", "ID", "NAME", "CADENCE", "LAST CONTACT", "COUNT")
		for _, r := range page.Rows {
			cadence := "-"
			if r.FollowUpCadenceDays != nil {
				cadence = fmt.Sprintf("%dd", *r.FollowUpCadenceDays)
			}
			last := "-"
			if r.LatestInteractionDate != nil {
				last = *r.LatestInteractionDate
			}
			fmt.Printf("  %-5d %-30s %-8s %-12s %d\n", r.ID, r.DisplayName(), cadence, last, r.InteractionCount)
		}
		fmt.Printf("\n  page %d of %d (%d total)\n\n", page.Page, page.TotalPages, page.Total)
		return nil
	},
}

var personUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[0])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		req := api.UpdatePersonRequest{
			ID:           id,
			ClearNotes:   personUpdateClearNotes,
			ClearCadence: personUpdateClearCadence,
		}
		if cmd.Flags().Changed("first") {
			req.FirstName = &personFirst
		}
		if cmd.Flags().Changed("middle") {
			req.MiddleName = &personMiddle
		}
		if cmd.Flags().Changed("last") {
			req.LastName = &personLast
		}
		if cmd.Flags().Changed("notes") {
			req.Notes = &personNotes
		}
		if cmd.Flags().Changed("cadence") {
			req.CadenceDays = &personCadence
		}

		p, err := svc.UpdatePerson(req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %s (id %d)\n", p.DisplayName(), p.ID)
		return nil
	},
}

var personRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a person and their interactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[0])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := svc.DeletePerson(id); err != nil {
			return err
		}
		fmt.Printf("Deleted person %d\n", id)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{personAddCmd, personUpdateCmd} {
		c.Flags().StringVar(&personFirst, "first", "", "First name")
		c.Flags().StringVar(&personMiddle, "middle", "", "Middle name")
		c.Flags().StringVar(&personLast, "last", "", "Last name")
		c.Flags().StringVar(&personNotes, "notes", "", "Free-text notes")
		c.Flags().Int64Var(&personCadence, "cadence", 0, "Follow-up cadence in days")
	}
	personUpdateCmd.Flags().BoolVar(&personUpdateClearNotes, "clear-notes", false, "Remove the notes")
	personUpdateCmd.Flags().BoolVar(&personUpdateClearCadence, "clear-cadence", false, "Remove the follow-up cadence")

	personShowCmd.Flags().BoolVar(&personShowJSON, "json", false, "Output as JSON")

	personListCmd.Flags().IntVar(&personListPage, "page", 1, "Page number")
	personListCmd.Flags().IntVar(&personListPageSize, "page-size", 0, "Rows per page")
	personListCmd.Flags().StringVar(&personListSort, "sort", "last_name",
		"Sort field: first_name, middle_name, last_name, follow_up_cadence_days, latest_interaction_date")
	personListCmd.Flags().BoolVar(&personListDesc, "desc", false, "Sort descending")
	personListCmd.Flags().BoolVar(&personListJSON, "json", false, "Output as JSON")

	personCmd.AddCommand(personAddCmd, personShowCmd, personListCmd, personUpdateCmd, personRmCmd)
	rootCmd.AddCommand(personCmd)
}
