package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/typespeed-backend/internal/adapter/postgres"
)

// migrator is the subset of postgres.Migrator the commands use.
type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	Down(ctx context.Context) (*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
	Close() error
}

// openMigrator is swapped in tests.
var openMigrator = func(ctx context.Context, dsn string) (migrator, error) {
	return postgres.NewMigrator(ctx, dsn)
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, func(ctx context.Context, m migrator, out io.Writer) error {
				results, err := m.Up(ctx)
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(out, "no pending migrations")
				}
				for _, r := range results {
					fmt.Fprintf(out, "OK   %s (%s)\n", r.Source.Path, r.Duration.Round(time.Millisecond))
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, func(ctx context.Context, m migrator, out io.Writer) error {
				r, err := m.Down(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "OK   %s (%s)\n", r.Source.Path, r.Duration.Round(time.Millisecond))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, func(ctx context.Context, m migrator, out io.Writer) error {
				status, err := m.Status(ctx)
				if err != nil {
					return err
				}
				return printStatus(out, status)
			})
		},
	})

	return cmd
}

func withMigrator(cmd *cobra.Command, fn func(ctx context.Context, m migrator, out io.Writer) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := openMigrator(cmd.Context(), cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(cmd.Context(), m, cmd.OutOrStdout())
}

func printStatus(out io.Writer, status []*goose.MigrationStatus) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range status {
		applied := "-"
		if s.State == goose.StateApplied {
			applied = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}
