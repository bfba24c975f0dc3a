package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stackmeter/internal/protocol"
)

// export [-o file]: write every domain into one session document.
func exportCmd() *cobra.Command {
	var output string
	var compress bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all domains into a session document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, diags, err := appCtx.Exchange.ExportAll(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range diags.Affected() {
				printReport(cmd.ErrOrStderr(), r)
			}
			if !cmd.Flags().Changed("compress") {
				compress = appCtx.Config.CompressExports
			}
			if compress {
				doc = protocol.Compress(doc)
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			if err := os.WriteFile(output, doc, 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d bytes to %s\n", len(doc), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&compress, "compress", false, "zstd-compress the document (default from config)")
	return cmd
}

// import <file>: replace every domain with the contents of a session document.
func importCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore all domains from a session document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if dryRun {
				staged, err := appCtx.Exchange.Stage(doc)
				if err != nil {
					return err
				}
				for _, r := range staged.Diagnostics.Affected() {
					printReport(cmd.ErrOrStderr(), r)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "document ok: %d domains, %d issues\n",
					len(staged.Entries), staged.Diagnostics.Total())
				return nil
			}
			diags, err := appCtx.Exchange.ImportAll(cmd.Context(), doc)
			for _, r := range diags.Affected() {
				printReport(cmd.ErrOrStderr(), r)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d domains, %d issues\n", len(diags), diags.Total())
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the document without writing")
	return cmd
}
