package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rolo/internal/api"
)

var (
	orgName   string
	orgTypeID int64
	orgNotes  string

	orgShowJSON       bool
	orgListJSON       bool
	orgUpdateClrNotes bool
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
}

var orgAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an organization",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		o, err := svc.CreateOrganization(api.CreateOrgRequest{
			Name:      orgName,
			OrgTypeID: orgTypeID,
			Notes:     orgNotes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (id %d, type %s)\n", o.Name, o.ID, o.OrgType)
		return nil
	},
}

var orgShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an organization with its people",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid organization id %q", args[0])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		d, err := svc.GetOrganization(id)
		if err != nil {
			return err
		}

		if orgShowJSON {
			return printJSON(d)
		}

		fmt.Printf("\n  %s (id %d, %s)\n", d.Name, d.ID, d.OrgType)
		if d.Notes != nil {
			fmt.Printf("  Notes: %s\n", *d.Notes)
		}
		if len(d.People) > 0 {
			fmt.Printf("\n  PEOPLE (%d)\n", len(d.People))
			for _, l := range d.People {
				fmt.Printf("    %s (id %d)  %s\n", l.PersonName, l.PersonID, orDash(l.Label))
			}
		}
		fmt.Println()
		return nil
	},
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		rows, err := svc.ListOrganizations()
		if err != nil {
			return err
		}

		if orgListJSON {
			return printJSON(rows)
		}

		fmt.Printf("\n  %-5s %-30s %-12s %s\n", "ID", "NAME", "TYPE", "PEOPLE")
		for _, r := range rows {
			fmt.Printf("  %-5d %-30s %-12s %d\n", r.ID, r.Name, r.OrgType, r.MemberCount)
		}
		fmt.Println()
		return nil
	},
}

var orgUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid organization id %q", args[0])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		req := api.UpdateOrgRequest{ID: id, ClearNotes: orgUpdateClrNotes}
		if cmd.Flags().Changed("name") {
			req.Name = &orgName
		}
		if cmd.Flags().Changed("type") {
			req.OrgTypeID = &orgTypeID
		}
		if cmd.Flags().Changed("notes") {
			req.Notes = &orgNotes
		}

		o, err := svc.UpdateOrganization(req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %s (id %d)\n", o.Name, o.ID)
		return nil
	},
}

var orgRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid organization id %q", args[0])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := svc.DeleteOrganization(id); err != nil {
			return err
		}
		fmt.Printf("Deleted organization %d\n", id)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{orgAddCmd, orgUpdateCmd} {
		c.Flags().StringVar(&orgName, "name", "", "Organization name")
		c.Flags().Int64Var(&orgTypeID, "type", 0, "Organization type id (see 'rolo types')")
		c.Flags().StringVar(&orgNotes, "notes", "", "Free-text notes")
	}
	orgUpdateCmd.Flags().BoolVar(&orgUpdateClrNotes, "clear-notes", false, "Remove the notes")
	orgShowCmd.Flags().BoolVar(&orgShowJSON, "json", false, "Output as JSON")
	orgListCmd.Flags().BoolVar(&orgListJSON, "json", false, "Output as JSON")

	orgCmd.AddCommand(orgAddCmd, orgShowCmd, orgListCmd, orgUpdateCmd, orgRmCmd)
	rootCmd.AddCommand(orgCmd)
}
