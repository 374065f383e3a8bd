package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/hwrel/internal/config"
	"github.com/zulandar/hwrel/internal/hardware"
	"github.com/zulandar/hwrel/internal/models"
)

func newHardwareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hardware",
		Aliases: []string{"hw"},
		Short:   "Hardware BoM management commands",
	}

	cmd.AddCommand(newHardwareCreateCmd())
	cmd.AddCommand(newHardwareListCmd())
	cmd.AddCommand(newHardwareShowCmd())
	cmd.AddCommand(newHardwareUpdateCmd())
	cmd.AddCommand(newHardwareDeleteCmd())
	cmd.AddCommand(newHardwareChildrenCmd())
	cmd.AddCommand(newHardwareMoveCmd())
	return cmd
}

func newHardwareCreateCmd() *cobra.Command {
	var (
		configPath  string
		opts        hardware.CreateOpts
		rel         models.Reliability
		parentID    uint
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hardware item",
		Long:  "Creates an assembly or, with --part, a component/piece part under an optional parent assembly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ParentID = parentID
			opts.Description = description
			opts.Reliability = &rel
			return runHardwareCreate(cmd, configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	cmd.Flags().StringVar(&opts.Name, "name", "", "item name (required)")
	cmd.Flags().UintVar(&parentID, "parent", 0, "parent assembly ID (0 creates a root)")
	cmd.Flags().BoolVar(&opts.Part, "part", false, "create a component/piece part")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&opts.PartNumber, "part-number", "", "part number")
	cmd.Flags().StringVar(&opts.RefDes, "ref-des", "", "reference designator")
	cmd.Flags().IntVar(&opts.CategoryID, "category", 0, "component category ID (1-10)")
	cmd.Flags().IntVar(&opts.SubcategoryID, "subcategory", 0, "component subcategory ID")
	cmd.Flags().IntVar(&opts.Quantity, "quantity", 1, "quantity")
	cmd.Flags().Float64Var(&opts.DutyCycle, "duty-cycle", 100.0, "duty cycle in percent")
	cmd.Flags().Float64Var(&opts.MissionTime, "mission-time", 100.0, "mission time in hours")
	cmd.Flags().Float64Var(&opts.Cost, "cost", 0, "unit cost")
	cmd.Flags().IntVar(&opts.CostTypeID, "cost-type", 2, "cost type (1=specified, 2=calculated)")
	cmd.Flags().IntVar(&rel.HazardRateTypeID, "hr-type", 1, "hazard rate type (1=assessed, 2=specified rate, 3=specified MTBF)")
	cmd.Flags().IntVar(&rel.HazardRateMethodID, "method", 1, "prediction method (1=parts count, 2=part stress)")
	cmd.Flags().IntVar(&rel.EnvironmentActiveID, "env-active", 0, "active environment ID")
	cmd.Flags().IntVar(&rel.EnvironmentDormantID, "env-dormant", 0, "dormant environment ID")
	cmd.Flags().IntVar(&rel.QualityID, "quality", 0, "quality level ID")
	cmd.Flags().Float64Var(&rel.HazardRateSpecified, "hr-specified", 0, "specified hazard rate")
	cmd.Flags().Float64Var(&rel.MTBFSpecified, "mtbf-specified", 0, "specified MTBF in hours")
	cmd.MarkFlagRequired("name")
	return cmd
}

func runHardwareCreate(cmd *cobra.Command, configPath string, opts hardware.CreateOpts) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	hw, err := hardware.Create(gormDB, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	kind := "assembly"
	if hw.Part {
		kind = "part"
	}
	fmt.Fprintf(out, "Created %s %d\n", kind, hw.ID)
	if hw.CompRefDes != "" {
		fmt.Fprintf(out, "Ref des: %s\n", hw.CompRefDes)
	}
	if hw.ParentID != nil {
		fmt.Fprintf(out, "Parent: %d\n", *hw.ParentID)
	}
	return nil
}

func newHardwareListCmd() *cobra.Command {
	var (
		configPath string
		parentID   uint
		roots      bool
		parts      bool
		category   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hardware items",
		Long:  "Lists hardware items with optional filters. Output is formatted as a table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := hardware.ListFilters{
				RootsOnly:  roots,
				PartsOnly:  parts,
				CategoryID: category,
			}
			if cmd.Flags().Changed("parent") {
				filters.ParentID = &parentID
			}
			return runHardwareList(cmd, configPath, filters)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	cmd.Flags().UintVar(&parentID, "parent", 0, "filter by parent ID")
	cmd.Flags().BoolVar(&roots, "roots", false, "list only root assemblies")
	cmd.Flags().BoolVar(&parts, "parts", false, "list only component/piece parts")
	cmd.Flags().IntVar(&category, "category", 0, "filter by category ID")
	return cmd
}

func runHardwareList(cmd *cobra.Command, configPath string, filters hardware.ListFilters) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	items, err := hardware.List(gormDB, filters)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No hardware found.")
		return nil
	}
	writeHardwareTable(out, items)
	return nil
}

func writeHardwareTable(out io.Writer, items []models.Hardware) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREF DES\tNAME\tPART\tCATEGORY\tSUB\tQTY\tPARENT")
	for _, hw := range items {
		parent := "-"
		if hw.ParentID != nil {
			parent = fmt.Sprintf("%d", *hw.ParentID)
		}
		part := "no"
		if hw.Part {
			part = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			hw.ID, orDash(hw.CompRefDes), truncate(hw.Name, 40), part,
			categoryName(hw.CategoryID), hw.SubcategoryID, hw.Quantity, parent)
	}
	w.Flush()
}

func newHardwareShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show hardware item details",
		Long:  "Shows an item with its reliability inputs and the metrics of the last calculation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHardwareShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	return cmd
}

func runHardwareShow(cmd *cobra.Command, configPath, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	hw, err := hardware.Get(gormDB, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:           %d\n", hw.ID)
	fmt.Fprintf(out, "Name:         %s\n", hw.Name)
	fmt.Fprintf(out, "Ref des:      %s\n", orDash(hw.CompRefDes))
	fmt.Fprintf(out, "Part number:  %s\n", orDash(hw.PartNumber))
	fmt.Fprintf(out, "Part:         %t\n", hw.Part)
	if hw.ParentID != nil {
		fmt.Fprintf(out, "Parent:       %d\n", *hw.ParentID)
	}
	fmt.Fprintf(out, "Category:     %s (%d/%d)\n", categoryName(hw.CategoryID), hw.CategoryID, hw.SubcategoryID)
	fmt.Fprintf(out, "Quantity:     %d\n", hw.Quantity)
	fmt.Fprintf(out, "Duty cycle:   %s%%\n", formatFloat(hw.DutyCycle))
	fmt.Fprintf(out, "Mission time: %s h\n", formatFloat(hw.MissionTime))

	if r := hw.Reliability; r != nil {
		hrm := cfg.HRMultiplier
		fmt.Fprintf(out, "\nMethod:       %d (env %d/%d, quality %d)\n",
			r.HazardRateMethodID, r.EnvironmentActiveID, r.EnvironmentDormantID, r.QualityID)
		if r.CalculatedAt == nil {
			fmt.Fprintln(out, "Not calculated yet.")
		} else {
			fmt.Fprintf(out, "Active HR:    %s\n", formatRate(r.HazardRateActive, hrm))
			fmt.Fprintf(out, "Dormant HR:   %s\n", formatRate(r.HazardRateDormant, hrm))
			fmt.Fprintf(out, "Logistics HR: %s\n", formatRate(r.HazardRateLogistics, hrm))
			fmt.Fprintf(out, "MTBF:         %s h\n", formatFloat(r.MTBFLogistics))
			fmt.Fprintf(out, "Reliability:  %s\n", formatFloat(r.ReliabilityMission))
			fmt.Fprintf(out, "Parts:        %d\n", r.TotalPartCount)
			fmt.Fprintf(out, "Total cost:   %s\n", formatFloat(r.TotalCost))
			fmt.Fprintf(out, "Overstress:   %t\n", r.Overstress)
			fmt.Fprintf(out, "Calculated:   %s\n", r.CalculatedAt.Format("2006-01-02 15:04:05"))
			if r.Reason != "" {
				fmt.Fprintf(out, "\nReason:\n%s\n", strings.TrimRight(r.Reason, "\n"))
			}
		}
	}

	if hw.Description != "" {
		fmt.Fprintf(out, "\nDescription:\n%s\n", hw.Description)
	}
	return nil
}

func newHardwareUpdateCmd() *cobra.Command {
	var (
		configPath string
		sets       []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a hardware item",
		Long: `Updates fields of a hardware item with repeated --set key=value flags.

Keys address hardware columns (name, quantity, duty_cycle, ...). Prefix a key
with electrical., mechanical., nswc. or reliability. to address a design
record, e.g. --set electrical.voltage_ac_operating=12.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sets) == 0 {
				return fmt.Errorf("no fields to update; use --set key=value")
			}
			updates, err := parseSets(sets)
			if err != nil {
				return err
			}
			return runHardwareUpdate(cmd, configPath, args[0], updates)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field to update as key=value (repeatable)")
	return cmd
}

func runHardwareUpdate(cmd *cobra.Command, configPath, arg string, updates map[string]interface{}) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	if err := hardware.Update(gormDB, id, updates); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated hardware %d\n", id)
	return nil
}

func newHardwareDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a hardware item and its subtree",
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
			n, err := hardware.Delete(gormDB, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d hardware items\n", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	return cmd
}

func newHardwareChildrenCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "children <id>",
		Short: "List the direct children of an assembly",
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
			children, err := hardware.GetChildren(gormDB, id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(children) == 0 {
				fmt.Fprintf(out, "Hardware %d has no children.\n", id)
				return nil
			}
			writeHardwareTable(out, children)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	return cmd
}

func newHardwareMoveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "move <id> <new-parent-id>",
		Short: "Move a hardware item under another assembly",
		Long:  "Moves an item and its subtree under a new parent. A parent of 0 makes the item a root. Composite reference designators are refreshed.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var parent uint
			if args[1] != "0" {
				if parent, err = parseID(args[1]); err != nil {
					return err
				}
			}
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := hardware.Move(gormDB, id, parent); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved hardware %d under %d\n", id, parent)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to hwrel config file")
	return cmd
}
