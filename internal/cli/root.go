// Package cli implements the vibeflow command tree.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/analyzer"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/config"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/domain"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/llm"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/logging"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/taxonomy"
)

var (
	cfgFile  string
	logLevel string

	// loaded at init time
	cfg config.Config
	log *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vibeflow",
		Short: "Vibe Flow — sales call coaching analysis",
		Long:  "Vibe Flow analyzes recorded sales calls and transcripts, profiles the customer, and derives coaching insight from the dialogue.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			level := logLevel
			if level == "" {
				level = cfg.Logging.Level
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "vibeflow.yaml", "config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newSessionsCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// newAnalyzerService builds the provider client and analyzer from config.
func newAnalyzerService() *analyzer.Service {
	timeout := time.Duration(cfg.Provider.TimeoutSeconds) * time.Second
	client := llm.NewGeminiClient(cfg.Provider.APIKey, cfg.Provider.Model, timeout)
	return analyzer.NewService(client, log)
}

// resolveAgent returns the configured agent profile: a custom declaration
// when present, otherwise the selected preset.
func resolveAgent() domain.AgentProfile {
	if cfg.Agent.Custom() {
		name := cfg.Agent.Name
		if name == "" {
			name = "Agent"
		}
		return domain.AgentProfile{
			Name:            name,
			Features:        cfg.Agent.Features,
			Strengths:       cfg.Agent.Strengths,
			PersuasionMatch: cfg.Agent.PersuasionMatch,
		}
	}
	return taxonomy.AgentByProfile(cfg.Agent.Profile)
}

// configIssues renders validation problems with the loaded config.
func configIssues() []string {
	var out []string
	for _, issue := range config.Validate(&cfg) {
		out = append(out, issue.String())
	}
	return out
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
