package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pkordes/pool-logbook/backend/internal/service"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format  string
		archive bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every pool and logbook entry",
		Long: `Write one row per logbook entry (pool fields repeated) to stdout.
Pools without entries produce one row with empty log columns.

With --archive the CSV is uploaded to the configured S3 bucket instead
(ARCHIVE_S3_BUCKET, ARCHIVE_S3_REGION, ARCHIVE_S3_ENDPOINT).

EXAMPLES:

  poolctl export --format csv > pools.csv
  poolctl export --format json | jq .
  poolctl export --archive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			out := cmd.OutOrStdout()

			if archive {
				res, err := a.export.Archive(ctx)
				if err != nil {
					return fmt.Errorf("failed to archive export: %w", err)
				}
				color.New(color.FgGreen).Fprintf(out, "✓ Archived %d rows to %s\n", res.Rows, res.Location)
				return nil
			}

			rows, err := a.export.Export(ctx)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			switch format {
			case "csv":
				return service.WriteCSV(out, rows)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			default:
				return fmt.Errorf("unknown format %q: want csv or json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	cmd.Flags().BoolVar(&archive, "archive", false, "upload a CSV snapshot to S3 instead of printing")
	return cmd
}
