package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
	catalog    string
	theme      string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "atelier",
		Short:         "Atelier is a terminal clothing store with a virtual mannequin",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, open the store
			if len(args) == 0 {
				return runShop(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Settings file (default .atelier.yaml in the working or home directory)")
	cmd.PersistentFlags().StringVar(&flags.catalog, "catalog", "", "Catalog file (.yaml, .yml or .toml); the built-in catalog is used when empty")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Colour theme: light or dark")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append structured logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newShopCmd(app))
	cmd.AddCommand(newCatalogCmd(app))
	cmd.AddCommand(newOutfitCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
