package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typesJSON bool

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List organization and interaction types",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		orgTypes, err := svc.OrgTypes()
		if err != nil {
			return err
		}
		interactionTypes, err := svc.InteractionTypes()
		if err != nil {
			return err
		}

		if typesJSON {
			return printJSON(map[string]any{
				"org_types":         orgTypes,
				"interaction_types": interactionTypes,
			})
		}

		fmt.Println("\n  ORGANIZATION TYPES")
		for _, v := range orgTypes {
			fmt.Printf("    %-5d %s\n", v.ID, v.Name)
		}
		fmt.Println("\n  INTERACTION TYPES")
		for _, v := range interactionTypes {
			fmt.Printf("    %-5d %s\n", v.ID, v.Name)
		}
		fmt.Println()
		return nil
	},
}

var typesAddCmd = &cobra.Command{
	Use:   "add <org|interaction> <name>",
	Short: "Add a custom type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		switch args[0] {
		case "org":
			v, err := svc.AddOrgType(args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Added organization type %s (id %d)\n", v.Name, v.ID)
		case "interaction":
			v, err := svc.AddInteractionType(args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Added interaction type %s (id %d)\n", v.Name, v.ID)
		default:
			return fmt.Errorf("unknown type table %q, expected org or interaction", args[0])
		}
		return nil
	},
}

func init() {
	typesCmd.Flags().BoolVar(&typesJSON, "json", false, "Output as JSON")
	typesCmd.AddCommand(typesAddCmd)
	rootCmd.AddCommand(typesCmd)
}
