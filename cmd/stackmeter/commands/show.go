package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"stackmeter/internal/codec"
	"stackmeter/internal/domain"
	"stackmeter/internal/services/records"
)

func showCmd() *cobra.Command {
	format := newFormat("csv", "csv", "yaml")
	cmd := &cobra.Command{
		Use:       "show <domain>",
		Short:     "Print the records stored for a domain",
		Args:      cobra.ExactArgs(1),
		ValidArgs: domainNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.Parse(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if format.String() == "yaml" {
				recs, report, err := loadRecords(ctx, appCtx.Store, id)
				if err != nil {
					return err
				}
				printReport(cmd.ErrOrStderr(), report)
				return writeYAML(out, recs)
			}
			text, _, err := appCtx.Store.Load(ctx, id.StorageKey())
			if err != nil {
				return err
			}
			normalised, report, err := codec.TableFor(id).Recode(text)
			if err != nil {
				return err
			}
			printReport(cmd.ErrOrStderr(), report)
			_, err = io.WriteString(out, normalised)
			return err
		},
	}
	cmd.Flags().Var(format, "format", "output format (csv|yaml)")
	return cmd
}

// loadRecords decodes id's stored records into their YAML view, which adds
// the values derived from each record.
func loadRecords(ctx context.Context, bs domain.BlobStore, id domain.ID) (any, *codec.Report, error) {
	switch id {
	case domain.Home:
		return load(ctx, bs, codec.Home(), same[domain.Site])
	case domain.Utilities:
		return load(ctx, bs, codec.Utilities(), newUtilityView)
	case domain.Flows:
		return load(ctx, bs, codec.Flows(), same[domain.FlowPoint])
	case domain.H2O:
		return load(ctx, bs, codec.H2O(), newH2OView)
	case domain.Dust:
		return load(ctx, bs, codec.Dust(), newDustView)
	case domain.GasAnalyzer:
		return load(ctx, bs, codec.GasAnalyzer(), newGasView)
	case domain.Aspiration:
		return load(ctx, bs, codec.Aspiration(), same[domain.AspirationRun])
	default:
		return nil, nil, fmt.Errorf("unknown domain %d", int(id))
	}
}

func load[R, V any](ctx context.Context, bs domain.BlobStore, c *codec.Codec[R], view func(R) V) (any, *codec.Report, error) {
	recs, report, err := records.Load(ctx, bs, c)
	if err != nil {
		return nil, nil, err
	}
	out := make([]V, len(recs))
	for i, r := range recs {
		out[i] = view(r)
	}
	return out, report, nil
}

func same[R any](r R) R { return r }

type utilityView struct {
	domain.UtilityEvent `yaml:",inline"`
	Duration            time.Duration `yaml:"duration,omitempty"`
}

func newUtilityView(e domain.UtilityEvent) utilityView {
	return utilityView{UtilityEvent: e, Duration: e.Duration()}
}

type h2oView struct {
	domain.H2ORun  `yaml:",inline"`
	CollectedWater float64 `yaml:"collected_water_g"`
}

func newH2OView(r domain.H2ORun) h2oView {
	return h2oView{H2ORun: r, CollectedWater: r.CollectedWater()}
}

type dustView struct {
	domain.DustRun `yaml:",inline"`
	CollectedMass  float64 `yaml:"collected_mass_mg"`
}

func newDustView(r domain.DustRun) dustView {
	return dustView{DustRun: r, CollectedMass: r.CollectedMass()}
}

type gasView struct {
	domain.GasAnalyzerCheck `yaml:",inline"`
	SpanDeviation           float64 `yaml:"span_deviation"`
}

func newGasView(c domain.GasAnalyzerCheck) gasView {
	return gasView{GasAnalyzerCheck: c, SpanDeviation: c.SpanDeviation()}
}

// printReport writes report's issues, if any.
func printReport(w io.Writer, report *codec.Report) {
	if report.OK() {
		return
	}
	fmt.Fprintln(w, report)
}
