package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/typespeed-backend/internal/adapter/postgres"
	"github.com/heartmarshall/typespeed-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/typespeed-backend/internal/config"
)

type resetCleaner interface {
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
	Close()
}

type poolCleaner struct {
	*account.Repo
	close func()
}

func (c poolCleaner) Close() { c.close() }

// openCleaner is swapped in tests.
var openCleaner = func(ctx context.Context, cfg config.DatabaseConfig) (resetCleaner, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return poolCleaner{Repo: account.New(pool), close: pool.Close}, nil
}

func newCleanupCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "cleanup-resets",
		Short: "Clear password reset tokens that have expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			c, err := openCleaner(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer c.Close()

			n, err := c.ClearExpiredResetTokens(ctx, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d expired reset tokens.\n", n)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline for the cleanup")
	return cmd
}
