package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpusched/api"
	"cpusched/internal/schedulers"
	"cpusched/internal/store"
)

func newServeCmd() *cobra.Command {
	var noStore bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var runs store.Store
			if !noStore {
				st, err := openStore(ctx)
				if err != nil {
					return err
				}
				defer st.Close()
				runs = st
			}

			handler := api.NewSchedulerHandlerImpl(cfg, schedulers.NewSimulator(logger), runs, logger)
			app := api.NewApp(handler, logger)

			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				if err := app.Shutdown(); err != nil {
					logger.Error("shutdown", "error", err)
				}
			}()

			logger.Info("listening", "addr", cfg.Addr(), "store", !noStore)
			if err := app.Listen(cfg.Addr()); err != nil {
				return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noStore, "no-store", false, "Do not keep a run history")
	return cmd
}

func openStore(ctx context.Context) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(cfg.StorePath, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("migrate %s: %w", cfg.StorePath, err)
	}
	return st, nil
}
