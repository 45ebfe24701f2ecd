package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

func newLogCmd(a *app) *cobra.Command {
	var (
		params domain.LogParams
		ph, cl float64
	)
	cmd := &cobra.Command{
		Use:   "log <pool-id>",
		Short: "Record a maintenance visit",
		Long: `Record a maintenance visit with its pH and free chlorine readings.

EXAMPLES:

  poolctl log <pool-id> --date 2024-01-01 --ph 7.5 --chlorine 2
  poolctl log <pool-id> --date 2024-01-08 --ph 7.9 --chlorine 0.8 --notes "added shock"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			params.PHLevel, params.ChlorineLevel = ph, cl
			log, err := a.logs.Add(ctx, args[0], params)
			if err != nil {
				return fmt.Errorf("failed to record visit: %w", err)
			}
			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "✓ Logged visit %s\n", log.ID)
			printAdvisories(out, log.Advisories())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&params.Date, "date", "", "visit date (required)")
	f.Float64Var(&ph, "ph", 0, "measured pH (required)")
	f.Float64Var(&cl, "chlorine", 0, "measured free chlorine in ppm (required)")
	f.StringVar(&params.Notes, "notes", "", "what was done")
	f.StringVar(&params.ID, "id", "", "log id (UUID); generated when empty")
	_ = cmd.MarkFlagRequired("ph")
	_ = cmd.MarkFlagRequired("chlorine")
	return cmd
}

func newLogsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logs <pool-id>",
		Short: "List a pool's logbook",
		Long: `List a pool's logbook in recorded order.

OUTPUT FORMAT:

  Each line shows: ID  DATE  pH  CHLORINE  (NOTES)
  Readings outside the safe range are highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			logs, err := a.logs.List(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list logs: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No maintenance logs available.")
				return nil
			}

			faint := color.New(color.Faint)
			for _, l := range logs {
				adv := l.Advisories()
				notes := ""
				if l.Notes != "" {
					notes = faint.Sprintf(" (%s)", l.Notes)
				}
				fmt.Fprintf(out, "%s %s pH %s Cl %s%s\n",
					faint.Sprint(l.ID),
					padRight(l.Date, 12),
					levelColor(adv.PH.Level).Sprintf("%-5g", l.PHLevel),
					levelColor(adv.Chlorine.Level).Sprintf("%-5g", l.ChlorineLevel),
					notes)
			}
			return nil
		},
	}
}

func newDeleteLogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-log <pool-id> <log-id>",
		Aliases: []string{"rm-log"},
		Short:   "Delete one logbook entry",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if err := a.logs.Delete(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to delete log: %w", err)
			}
			color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted log %s\n", args[1])
			return nil
		},
	}
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels <pH> <chlorine>",
		Short: "Check readings against the safe ranges",
		Long: `Check a pH and free chlorine reading against the safe ranges
(pH 7.2 to 7.8, chlorine 1.0 to 3.0 ppm) without touching the store.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ph, cl float64
			if _, err := fmt.Sscan(args[0], &ph); err != nil {
				return fmt.Errorf("invalid pH %q", args[0])
			}
			if _, err := fmt.Sscan(args[1], &cl); err != nil {
				return fmt.Errorf("invalid chlorine %q", args[1])
			}
			printAdvisories(cmd.OutOrStdout(), domain.LogAdvisories{
				PH:       domain.CheckPH(ph),
				Chlorine: domain.CheckChlorine(cl),
			})
			return nil
		},
	}
}
