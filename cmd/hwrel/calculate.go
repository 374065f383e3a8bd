package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/hwrel/internal/config"
	"github.com/zulandar/hwrel/internal/db"
	"github.com/zulandar/hwrel/internal/hardware"
)

func newCalculateCmd() *cobra.Command {
	var (
		configPath string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "calculate <root-id>",
		Short: "Recalculate a hardware subtree",
		Long: `Predicts every part under the root, sums the assemblies and stores the
metrics. Prints the active, dormant and software hazard rates, total cost,
part count and power dissipation of the root, followed by any messages.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, configPath, args[0], workers)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent subtree workers (default from config)")
	return cmd
}

func runCalculate(cmd *cobra.Command, configPath, arg string, workers int) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if workers <= 0 {
		workers = cfg.Server.Workers
	}

	limits, err := db.LoadStressLimits(gormDB)
	if err != nil {
		return err
	}

	res, err := hardware.Recalculate(gormDB, hardware.RecalcOpts{
		RootID:       id,
		HRMultiplier: cfg.HRMultiplier,
		Workers:      workers,
		Limits:       limits,
		Trigger:      "cli",
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	hrm := cfg.HRMultiplier
	t := res.Totals
	fmt.Fprintf(out, "Calculated hardware %d (%d items, %d parts) in %dms\n",
		id, res.Run.Nodes, res.Run.Parts, res.Run.DurationMS)
	fmt.Fprintf(out, "Run: %s\n\n", res.Run.ID)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Active HR\t%s\n", formatRate(t[0], hrm))
	fmt.Fprintf(w, "Dormant HR\t%s\n", formatRate(t[1], hrm))
	fmt.Fprintf(w, "Software HR\t%s\n", formatRate(t[2], hrm))
	fmt.Fprintf(w, "Total cost\t%s\n", formatFloat(t[3]))
	fmt.Fprintf(w, "Part count\t%d\n", int(t[4]))
	fmt.Fprintf(w, "Power\t%s\n", formatFloat(t[5]))
	fmt.Fprintf(w, "MTBF (mission)\t%s\n", formatFloat(res.Metrics.MTBFMission))
	fmt.Fprintf(w, "Overstressed parts\t%d\n", res.Run.Overstressed)
	w.Flush()

	printMessages(out, res.Message)
	return nil
}

func newRunsCmd() *cobra.Command {
	var (
		configPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "runs <root-id>",
		Short: "List past calculations of a root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cfg, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			runs, err := hardware.ListRuns(gormDB, id, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintf(out, "No calculations recorded for %d.\n", id)
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tWHEN\tTRIGGER\tNODES\tPARTS\tOVERSTRESS\tACTIVE HR\tMS")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%d\n",
					shortID(r.ID), r.CreatedAt.Format("2006-01-02 15:04:05"), r.Trigger,
					r.Nodes, r.Parts, r.Overstressed, formatRate(r.HazardRateActive, cfg.HRMultiplier), r.DurationMS)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to show")
	return cmd
}

func newRefDesCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "refdes <root-id>",
		Short: "Rebuild composite reference designators",
		Long:  "Recomputes the colon-joined composite reference designator of every item under the root.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := hardware.RefreshRefDes(gormDB, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reference designators refreshed under %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	return cmd
}
