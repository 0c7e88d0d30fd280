package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/analyzer"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/taxonomy"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		source   string
		campaign string
		prev     string
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a call recording or transcript",
		Long: "Analyze runs the full analysis over an audio file (mp3, wav, m4a, mp4) or " +
			"transcript (vtt, srt, txt) and prints the coaching report.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				return fmt.Errorf("--source is required; one of:\n  %s", strings.Join(taxonomy.LeadSources, "\n  "))
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			svc := newAnalyzerService()
			session, err := svc.AnalyzeUpload(cmd.Context(), analyzer.Upload{
				Filename:        args[0],
				Content:         content,
				Source:          source,
				CampaignVersion: campaign,
				PrevInteraction: prev,
			}, resolveAgent())
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), session)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "lead source for the call (required)")
	cmd.Flags().StringVar(&campaign, "campaign", "", "campaign version the call belongs to")
	cmd.Flags().StringVar(&prev, "prev", "", "previous interaction context")

	return cmd
}
