package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stackmeter/internal/codec"
	"stackmeter/internal/domain"
	"stackmeter/internal/services/records"
)

// put <domain> <file>: replace a domain's records with the CSV in <file>.
func putCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "put <domain> <file>",
		Short:     "Replace a domain's records from a CSV file",
		Args:      cobra.ExactArgs(2),
		ValidArgs: domainNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			report, err := records.Replace(cmd.Context(), appCtx.Store, codec.TableFor(id), string(b))
			if err != nil {
				return err
			}
			printReport(cmd.ErrOrStderr(), report)
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d %s rows\n", report.Rows, id)
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "clear <domain>",
		Short:     "Reset a domain to its empty state",
		Args:      cobra.ExactArgs(1),
		ValidArgs: domainNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.Parse(args[0])
			if err != nil {
				return err
			}
			if err := records.Clear(cmd.Context(), appCtx.Store, codec.TableFor(id)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", id)
			return nil
		},
	}
}
