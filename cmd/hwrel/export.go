package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/zulandar/hwrel/internal/bom"
	"github.com/zulandar/hwrel/internal/config"
	"github.com/zulandar/hwrel/internal/db"
	"github.com/zulandar/hwrel/internal/hardware"
	"github.com/zulandar/hwrel/internal/report"
)

func newExportCmd() *cobra.Command {
	var (
		configPath  string
		output      string
		recalculate bool
	)

	cmd := &cobra.Command{
		Use:   "export <root-id>",
		Short: "Export a BoM subtree to an Excel workbook",
		Long: `Writes the subtree under the root to an .xlsx workbook with a BoM sheet and
a Messages sheet. Stored metrics are exported as-is unless --recalculate is
given. Without -o the file is written to report.dir.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, configPath, args[0], output, recalculate)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output .xlsx path")
	cmd.Flags().BoolVar(&recalculate, "recalculate", false, "recalculate the subtree before exporting")
	return cmd
}

func runExport(cmd *cobra.Command, configPath, arg, output string, recalculate bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	var (
		tree     *bom.Tree
		messages string
	)
	if recalculate {
		limits, err := db.LoadStressLimits(gormDB)
		if err != nil {
			return err
		}
		res, err := hardware.Recalculate(gormDB, hardware.RecalcOpts{
			RootID:       id,
			HRMultiplier: cfg.HRMultiplier,
			Workers:      cfg.Server.Workers,
			Limits:       limits,
			Trigger:      "cli",
		})
		if err != nil {
			return err
		}
		tree, messages = res.Tree, res.Message
	} else {
		if tree, err = hardware.LoadTree(gormDB, id); err != nil {
			return err
		}
	}

	if output == "" {
		if err := os.MkdirAll(cfg.Report.Dir, 0755); err != nil {
			return fmt.Errorf("create report dir %s: %w", cfg.Report.Dir, err)
		}
		output = filepath.Join(cfg.Report.Dir, report.Filename(int(id), time.Now()))
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := report.WriteBoM(f, tree, cfg.HRMultiplier, messages); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", tree.Len(), output)
	return nil
}
