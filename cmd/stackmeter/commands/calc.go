package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stackmeter/internal/calc"
	"stackmeter/internal/codec"
	"stackmeter/internal/domain"
	"stackmeter/internal/services/records"
)

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute minimum sampling points for a duct",
	}
	cmd.AddCommand(calcCircleCmd(), calcRectCmd(), calcSiteCmd())
	return cmd
}

func calcCircleCmd() *cobra.Command {
	var diameter float64
	format := newFormat("text", "text", "yaml")
	cmd := &cobra.Command{
		Use:   "circle",
		Short:       "Constraints for a circular duct",
		Args:        cobra.NoArgs,
		Annotations: noStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := calc.ForSite(domain.Site{Shape: domain.ShapeCircular, Diameter: diameter})
			if err != nil {
				return err
			}
			return printPlan(cmd.OutOrStdout(), plan, format.String())
		},
	}
	cmd.Flags().Float64VarP(&diameter, "diameter", "d", 0, "inner diameter in metres")
	cmd.Flags().Var(format, "format", "output format (text|yaml)")
	_ = cmd.MarkFlagRequired("diameter")
	return cmd
}

func calcRectCmd() *cobra.Command {
	var width, height float64
	format := newFormat("text", "text", "yaml")
	cmd := &cobra.Command{
		Use:   "rect",
		Short:       "Constraints for a rectangular duct",
		Args:        cobra.NoArgs,
		Annotations: noStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := calc.ForSite(domain.Site{Shape: domain.ShapeRectangular, Width: width, Height: height})
			if err != nil {
				return err
			}
			return printPlan(cmd.OutOrStdout(), plan, format.String())
		},
	}
	cmd.Flags().Float64Var(&width, "width", 0, "inner width in metres")
	cmd.Flags().Float64Var(&height, "height", 0, "inner height in metres")
	cmd.Flags().Var(format, "format", "output format (text|yaml)")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

// calc site uses the first record stored in the home domain.
func calcSiteCmd() *cobra.Command {
	format := newFormat("text", "text", "yaml")
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Constraints for the stored measurement site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sites, report, err := records.Load(cmd.Context(), appCtx.Store, codec.Home())
			if err != nil {
				return err
			}
			printReport(cmd.ErrOrStderr(), report)
			if len(sites) == 0 {
				return errors.New("no site stored; use put home <file>")
			}
			plan, err := calc.ForSite(sites[0])
			if err != nil {
				return err
			}
			return printPlan(cmd.OutOrStdout(), plan, format.String())
		},
	}
	cmd.Flags().Var(format, "format", "output format (text|yaml)")
	return cmd
}

func printPlan(w io.Writer, plan calc.Plan, format string) error {
	if format == "yaml" {
		return writeYAML(w, plan)
	}
	fmt.Fprintf(w, "shape:  %s\n", plan.Shape)
	fmt.Fprintf(w, "area:   %s m2\n", codec.FormatFloat(plan.Area))
	switch {
	case plan.Circular != nil:
		fmt.Fprintf(w, "axes:   %d\n", plan.Circular.MinimumMeasurementAxisCount)
		fmt.Fprintf(w, "points: %d\n", plan.Circular.MinimumMeasurementPointCount)
	case plan.Rectangular != nil:
		fmt.Fprintf(w, "sections per side: %d\n", plan.Rectangular.MinimumSectionAlongPipeSideCount)
		fmt.Fprintf(w, "points: %d\n", plan.Rectangular.MinimumMeasurementPointCount)
	}
	return nil
}
