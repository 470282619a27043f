package main

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"costar/internal/config"
	"costar/internal/datasets"
	"costar/internal/fileutil"
	"costar/internal/logging"
)

func newDatasetsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Manage the local IMDB dataset cache",
	}

	cmd.AddCommand(newDatasetsFetchCommand(ctx))
	cmd.AddCommand(newDatasetsStatusCommand(ctx))
	cmd.AddCommand(newDatasetsClearCommand(ctx))

	return cmd
}

func newDatasetsFetchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download any missing dataset files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, manifest, err := datasetsSetup(ctx)
			if err != nil {
				return err
			}
			if manifest != nil {
				defer manifest.Close()
			}

			provider := datasets.NewProvider(cfg, logger, manifest)
			paths, err := provider.EnsureAll(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d datasets ready in %s\n", len(paths), cfg.Paths.DataDir)
			return nil
		},
	}
}

func newDatasetsStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the cache state of each dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, manifest, err := datasetsSetup(ctx)
			if err != nil {
				return err
			}
			if manifest != nil {
				defer manifest.Close()
			}

			provider := datasets.NewProvider(cfg, logger, manifest)
			statuses := provider.Statuses(cmd.Context())

			rows := make([]table.Row, 0, len(statuses))
			for _, st := range statuses {
				size, fetched := "missing", "never"
				if st.Present {
					size = humanize.IBytes(uint64(st.SizeBytes))
				}
				if !st.FetchedAt.IsZero() {
					fetched = humanize.Time(st.FetchedAt)
				}
				rows = append(rows, table.Row{string(st.Dataset), size, fetched})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(table.Row{"Dataset", "Size", "Fetched"}, rows, 2))

			if total, err := fileutil.DirSize(cfg.Paths.DataDir); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Total cache size: %s (%s)\n", humanize.IBytes(uint64(total)), cfg.Paths.DataDir)
			}
			return nil
		},
	}
}

func newDatasetsClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete cached dataset files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, manifest, err := datasetsSetup(ctx)
			if err != nil {
				return err
			}
			if manifest != nil {
				defer manifest.Close()
			}

			provider := datasets.NewProvider(cfg, logger, manifest)
			if err := provider.Clear(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cleared dataset cache in %s\n", cfg.Paths.DataDir)
			return nil
		},
	}
}

func datasetsSetup(ctx *commandContext) (*config.Config, *slog.Logger, *datasets.Manifest, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, nil, nil, err
	}

	manifest, err := datasets.OpenManifest(cfg.Paths.DataDir)
	if err != nil {
		logger.Warn("fetch manifest unavailable",
			logging.Error(err),
			logging.String(logging.FieldEventType, "manifest_open_failed"),
			logging.String(logging.FieldErrorHint, "delete manifest.db in the data directory to rebuild it"),
		)
		manifest = nil
	}
	return cfg, logger, manifest, nil
}
