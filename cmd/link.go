package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rolo/internal/api"
)

var linkLabel string

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Relate people and organizations",
}

var linkPersonCmd = &cobra.Command{
	Use:   "person <id> <id>",
	Short: "Link two people (order does not matter)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[0])
		}
		b, err := parseID(args[1])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[1])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := svc.LinkPeople(api.LinkPeopleRequest{PersonA: a, PersonB: b, Label: linkLabel}); err != nil {
			return err
		}
		fmt.Printf("Linked people %d and %d\n", a, b)
		return nil
	},
}

var linkOrgCmd = &cobra.Command{
	Use:   "org <org-id> <person-id>",
	Short: "Link an organization and a person",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid organization id %q", args[0])
		}
		personID, err := parseID(args[1])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[1])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := svc.LinkOrgPerson(api.LinkOrgPersonRequest{
			OrganizationID: orgID,
			PersonID:       personID,
			Label:          linkLabel,
		}); err != nil {
			return err
		}
		fmt.Printf("Linked organization %d and person %d\n", orgID, personID)
		return nil
	},
}

var linkRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove a relationship",
}

var linkRmPersonCmd = &cobra.Command{
	Use:   "person <id> <id>",
	Short: "Unlink two people",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[0])
		}
		b, err := parseID(args[1])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[1])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := svc.UnlinkPeople(a, b); err != nil {
			return err
		}
		fmt.Printf("Unlinked people %d and %d\n", a, b)
		return nil
	},
}

var linkRmOrgCmd = &cobra.Command{
	Use:   "org <org-id> <person-id>",
	Short: "Unlink an organization and a person",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid organization id %q", args[0])
		}
		personID, err := parseID(args[1])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[1])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := svc.UnlinkOrgPerson(orgID, personID); err != nil {
			return err
		}
		fmt.Printf("Unlinked organization %d and person %d\n", orgID, personID)
		return nil
	},
}

func init() {
	linkPersonCmd.Flags().StringVar(&linkLabel, "label", "", "Relationship label (e.g. friend, colleague)")
	linkOrgCmd.Flags().StringVar(&linkLabel, "label", "", "Relationship label (e.g. member, alum)")

	linkRmCmd.AddCommand(linkRmPersonCmd, linkRmOrgCmd)
	linkCmd.AddCommand(linkPersonCmd, linkOrgCmd, linkRmCmd)
	rootCmd.AddCommand(linkCmd)
}
