package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List pools",
		Long: `List every pool in insertion order.

OUTPUT FORMAT:

  Each line shows: ID  OWNER  TYPE  VOLUME  LOG COUNT`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			pools, err := a.pools.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list pools: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(pools) == 0 {
				fmt.Fprintln(out, "No pools found.")
				return nil
			}

			faint := color.New(color.Faint)
			for _, p := range pools {
				fmt.Fprintf(out, "%s %s %s %.2f m³ %s\n",
					faint.Sprint(p.ID),
					padRight(p.OwnerName, 20),
					padRight(p.Type, 12),
					p.WaterVolume,
					faint.Sprintf("(%d logs)", len(p.Logbook)))
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <pool-id>",
		Short: "Show a pool and its logbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			pool, err := a.pools.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("pool not found: %s", args[0])
			}

			out := cmd.OutOrStdout()
			color.New(color.Bold).Fprintf(out, "Pool %s\n", pool.ID)
			fmt.Fprintln(out, pool.DisplayInfo())
			if pool.NextMaintenance != "" {
				fmt.Fprintf(out, "Next Maintenance: %s\n", pool.NextMaintenance)
			}
			fmt.Fprintln(out)
			color.New(color.Bold).Fprintln(out, "Logbook")
			fmt.Fprintln(out, pool.DisplayLogbook())

			if n := len(pool.Logbook); n > 0 {
				fmt.Fprintln(out)
				printAdvisories(out, pool.Logbook[n-1].Advisories())
			}
			return nil
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var (
		params domain.PoolParams
		volume float64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a pool",
		Long: `Register a pool. The water volume defaults to length x width x depth;
pass --volume to record a measured value instead.

EXAMPLES:

  poolctl create --owner Alice --length 10 --width 5 --depth 2 --type chlorine
  poolctl create --owner Bob --length 8 --width 4 --depth 1.5 --type salt --volume 45`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if cmd.Flags().Changed("volume") {
				params.WaterVolume = &volume
			}
			pool, err := a.pools.Create(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create pool: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Pool created with ID: %s\n", pool.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&params.OwnerName, "owner", "", "owner name (required)")
	f.Float64Var(&params.Length, "length", 0, "length in meters (required)")
	f.Float64Var(&params.Width, "width", 0, "width in meters (required)")
	f.Float64Var(&params.Depth, "depth", 0, "average depth in meters (required)")
	f.StringVar(&params.Type, "type", "", "pool type, e.g. chlorine or salt (required)")
	f.StringVar(&params.Notes, "notes", "", "free-form notes")
	f.StringVar(&params.NextMaintenance, "next", "", "next maintenance date")
	f.Float64Var(&volume, "volume", 0, "water volume in cubic meters")
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every pool",
		Long: `Delete every pool and its logbook.

CAUTION:

  This permanently deletes all data in the configured store. There is no undo.
  Pass --yes to confirm.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all pools without --yes")
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			n, err := a.pools.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete pools: %w", err)
			}
			color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted %d pools\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show pool and logbook totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.stats.Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute stats: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pools: %d\nLogs:  %d\n", st.TotalPools, st.TotalLogs)
			return nil
		},
	}
}

func printAdvisories(out io.Writer, adv domain.LogAdvisories) {
	fmt.Fprintf(out, "%s %s\n", levelColor(adv.PH.Level).Sprintf("pH %-4s", adv.PH.Level), adv.PH.Message)
	fmt.Fprintf(out, "%s %s\n", levelColor(adv.Chlorine.Level).Sprintf("Cl %-4s", adv.Chlorine.Level), adv.Chlorine.Message)
}

func levelColor(l domain.Level) *color.Color {
	switch l {
	case domain.LevelOK:
		return color.New(color.FgGreen)
	case domain.LevelLow:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func padRight(s string, n int) string {
	return fmt.Sprintf("%-*s", n, s)
}
