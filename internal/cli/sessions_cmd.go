package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/derive"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/store"
)

func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Browse the demo session collection",
	}

	cmd.AddCommand(newSessionsListCmd())
	cmd.AddCommand(newSessionsShowCmd())
	return cmd
}

func newSessionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewSeededStore()
			for _, s := range st.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %-16s %-9s %3d/100 %-6s %s\n",
					s.ID, s.Date.Format("2006-01-02 15:04"), s.Result,
					s.MatchScore, derive.MatchBand(s.MatchScore), s.CustomerCompany.Name)
			}
			return nil
		},
	}
}

func newSessionsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the coaching report for one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewSeededStore()
			session, err := st.Get(args[0])
			if err != nil {
				return fmt.Errorf("session not found: %s", args[0])
			}
			printReport(cmd.OutOrStdout(), session)
			return nil
		},
	}
}
