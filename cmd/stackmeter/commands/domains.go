package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"stackmeter/internal/domain"
)

func domainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List measurement domains in document order",
		Args:        cobra.NoArgs,
		Annotations: noStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tHEADING\tKEY")
			for _, id := range domain.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", id.Name(), id.Heading(), id.StorageKey())
			}
			return tw.Flush()
		},
	}
}

func domainNames() []string {
	names := make([]string, 0, domain.Count)
	for _, id := range domain.All() {
		names = append(names, id.Name())
	}
	return names
}
