package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Dump the relationship graph as JSON nodes and edges",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		v, err := svc.Graph()
		if err != nil {
			return err
		}
		return printJSON(v)
	},
}

var graphStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the graph and list unconnected entities",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		v, err := svc.Graph()
		if err != nil {
			return err
		}
		st := v.Summary()

		fmt.Println("\n  GRAPH")
		fmt.Println("  ────────────────────────────────────────")
		fmt.Printf("  People: %d  Organizations: %d\n", st.People, st.Organizations)
		fmt.Printf("  Person links: %d  Organization links: %d\n", st.PersonEdges, st.OrgEdges)

		isolated := v.Isolated()
		if len(isolated) > 0 {
			fmt.Printf("\n  Not connected to anything (%d):\n", len(isolated))
			for _, n := range isolated {
				fmt.Printf("    - %s (%s)\n", n.Label, n.Kind)
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	graphCmd.AddCommand(graphStatsCmd)
	rootCmd.AddCommand(graphCmd)
}
