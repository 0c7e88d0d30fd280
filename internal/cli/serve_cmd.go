package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/api"
	"github.com/Team-Dovie/HyperSales-Playbook-Demo/internal/store"
)

func newServeCmd() *cobra.Command {
	var noSeed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if issues := configIssues(); len(issues) > 0 {
				return errors.New("invalid config: " + issues[0])
			}

			st := store.NewSessionStore()
			if !noSeed {
				st = store.NewSeededStore()
			}

			server := api.NewServer(st, newAnalyzerService(), resolveAgent(), log)
			addr := fmt.Sprintf("%s:%d", cfg.Server.Bind, cfg.Server.Port)
			srv := &http.Server{Addr: addr, Handler: server.Router()}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", addr).Int("sessions", st.Len()).Msg("server listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "start with an empty session collection")

	return cmd
}
