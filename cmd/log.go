package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rolo/internal/api"
)

var (
	logTypeID int64
	logDate   string
	logNotes  string

	logListJSON bool
)

var logCmd = &cobra.Command{
	Use:   "log <person-id>",
	Short: "Record an interaction with a person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		personID, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[0])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		date := logDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		in, err := svc.LogInteraction(api.LogInteractionRequest{
			PersonID: personID,
			TypeID:   logTypeID,
			Date:     date,
			Notes:    logNotes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s on %s (id %d)\n", in.TypeName, in.Date, in.ID)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:   "list <person-id>",
	Short: "List a person's interactions, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		personID, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id %q", args[0])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		out, err := svc.ListInteractions(personID)
		if err != nil {
			return err
		}

		if logListJSON {
			return printJSON(out)
		}

		for _, in := range out {
			fmt.Printf("  %-5d %s  %-8s %s  (%s)\n", in.ID, in.Date, in.TypeName, orDash(in.Notes), relDate(in.Date))
		}
		return nil
	},
}

var logRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an interaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("invalid interaction id %q", args[0])
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := svc.DeleteInteraction(id); err != nil {
			return err
		}
		fmt.Printf("Deleted interaction %d\n", id)
		return nil
	},
}

func init() {
	logCmd.Flags().Int64Var(&logTypeID, "type", 0, "Interaction type id (see 'rolo types')")
	logCmd.Flags().StringVar(&logDate, "date", "", "Date as YYYY-MM-DD (default today)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Free-text notes")
	logListCmd.Flags().BoolVar(&logListJSON, "json", false, "Output as JSON")

	logCmd.AddCommand(logListCmd, logRmCmd)
	rootCmd.AddCommand(logCmd)
}
