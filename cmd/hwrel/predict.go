package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/hwrel/internal/config"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
	"gopkg.in/yaml.v3"
)

func newPredictCmd() *cobra.Command {
	var (
		configPath string
		defaults   bool
	)

	cmd := &cobra.Command{
		Use:   "predict <part.yaml>",
		Short: "Predict the hazard rate of a single part",
		Long: `Reads one part's attributes from a YAML file and runs the MIL-HDBK-217F
model for its category and method. No database is used. Stress limit
overrides are taken from --config when it is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limits := milhdbk217f.DefaultStressLimits()
			if cmd.Flags().Changed("config") {
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				limits = cfg.StressLimitTable()
			}
			return runPredict(cmd, args[0], limits, defaults)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "fill unset design inputs with typical values")
	return cmd
}

func runPredict(cmd *cobra.Command, path string, limits milhdbk217f.StressLimitTable, defaults bool) error {
	a, err := readAttributes(path)
	if err != nil {
		return err
	}
	if defaults {
		a = milhdbk217f.ApplyDefaults(a)
	}

	out, msg := milhdbk217f.NewDispatcher(limits).Calculate(a)

	w := cmd.OutOrStdout()
	kind := milhdbk217f.KindFor(out.CategoryID, out.SubcategoryID)
	fmt.Fprintf(w, "Part: %s (category %d, subcategory %d, method %d)\n\n",
		kind, out.CategoryID, out.SubcategoryID, out.HazardRateMethodID)
	writeFactors(w, out)
	printMessages(w, msg)
	return nil
}

func readAttributes(path string) (milhdbk217f.Attributes, error) {
	var a milhdbk217f.Attributes
	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
		return a, fmt.Errorf("parse %s: %w", path, err)
	}
	return a, nil
}

// writeFactors prints every non-zero computed factor followed by the
// hazard rates, which are always shown.
func writeFactors(out io.Writer, a milhdbk217f.Attributes) {
	factors := []struct {
		name string
		v    float64
	}{
		{"current_ratio", a.CurrentRatio},
		{"power_ratio", a.PowerRatio},
		{"voltage_ratio", a.VoltageRatio},
		{"lambda_b", a.LambdaB},
		{"lambda_bd", a.LambdaBD},
		{"lambda_bp", a.LambdaBP},
		{"lambda_cyc", a.LambdaCyc},
		{"lambda_eos", a.LambdaEOS},
		{"c1", a.C1},
		{"c2", a.C2},
		{"pi_a", a.PiA},
		{"pi_c", a.PiC},
		{"pi_cd", a.PiCD},
		{"pi_cf", a.PiCF},
		{"pi_cv", a.PiCV},
		{"pi_cyc", a.PiCYC},
		{"pi_e", a.PiE},
		{"pi_ecc", a.PiECC},
		{"pi_f", a.PiF},
		{"pi_i", a.PiI},
		{"pi_k", a.PiK},
		{"pi_l", a.PiL},
		{"pi_m", a.PiM},
		{"pi_mfg", a.PiMFG},
		{"pi_p", a.PiP},
		{"pi_pt", a.PiPT},
		{"pi_q", a.PiQ},
		{"pi_r", a.PiR},
		{"pi_s", a.PiS},
		{"pi_sr", a.PiSR},
		{"pi_t", a.PiT},
		{"pi_taps", a.PiTAPS},
		{"pi_u", a.PiU},
		{"pi_v", a.PiV},
		{"temperature_junction", a.TemperatureJunction},
		{"temperature_hot_spot", a.TemperatureHotSpot},
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range factors {
		if f.v != 0 {
			fmt.Fprintf(w, "%s\t%s\n", f.name, formatFloat(f.v))
		}
	}
	fmt.Fprintf(w, "hazard_rate_active\t%s\n", formatFloat(a.HazardRateActive))
	fmt.Fprintf(w, "hazard_rate_dormant\t%s\n", formatFloat(a.HazardRateDormant))
	fmt.Fprintf(w, "overstress\t%t\n", a.Overstress)
	w.Flush()

	if a.Reason != "" {
		fmt.Fprintf(out, "\nReason:\n%s\n", trimNewline(a.Reason))
	}
}
