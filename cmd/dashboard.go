package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var dashboardJSON bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show overdue and upcoming follow-ups",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		d, err := svc.Dashboard()
		if err != nil {
			return err
		}

		if dashboardJSON {
			return printJSON(d)
		}

		c := d.Counts
		fmt.Printf("\n  %d people, %d organizations, %d interactions, %d links\n",
			c.People, c.Organizations, c.Interactions, c.Links)

		fmt.Printf("\n  OVERDUE (%d)\n", len(d.Overdue))
		fmt.Println("  ────────────────────────────────────────")
		for _, e := range d.Overdue {
			if e.NeverContacted {
				fmt.Printf("  %-30s never contacted (every %dd)\n", e.Name, e.CadenceDays)
				continue
			}
			fmt.Printf("  %-30s %d days overdue, last contact %s\n",
				e.Name, e.DaysOverdue, humanize.Time(*e.Latest))
		}

		fmt.Printf("\n  UPCOMING (%d)\n", len(d.Upcoming))
		fmt.Println("  ────────────────────────────────────────")
		for _, e := range d.Upcoming {
			when := fmt.Sprintf("due in %d days", e.DaysUntilDue)
			if e.DaysUntilDue == 0 {
				when = "due today"
			}
			fmt.Printf("  %-30s %s (every %dd)\n", e.Name, when, e.CadenceDays)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(dashboardCmd)
}
