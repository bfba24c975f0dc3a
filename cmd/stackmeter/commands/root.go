package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stackmeter/internal/app"
)

// EnvPassphrase supplies the store passphrase when -p is not given.
const EnvPassphrase = "STACKMETER_PASSPHRASE"

// noStore marks commands that never read or write the store, so they run
// without opening it (and without a passphrase).
const storeAnnotation = "store"

var noStore = map[string]string{storeAnnotation: "none"}

var (
	home       string
	configPath string
	passphrase string
	logLevel   string
	appCtx     *app.App
)

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "stackmeter",
		Short:         "Stack emission measurement records",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".stackmeter")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			cfg.Passphrase = passphrase
			if cfg.Passphrase == "" {
				cfg.Passphrase = os.Getenv(EnvPassphrase)
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if cmd.Annotations[storeAnnotation] == "none" {
				appCtx = nil
				return nil
			}

			appCtx, err = app.New(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.stackmeter)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.toml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for encrypted storage (or $"+EnvPassphrase+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")

	root.AddCommand(domainsCmd(), calcCmd(), showCmd(), putCmd(), clearCmd(), exportCmd(), importCmd())
	return root
}

func Execute() error {
	return NewRoot().Execute()
}
