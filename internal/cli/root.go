package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tvstore/catalog/configs"
)

// NewRootCommand creates the root command for the interactive catalog shell.
func NewRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "tvcatalog",
		Short: "Interactive TV store catalog manager",
		Long:  "Terminal menu for managing products, brands and categories in the TV store catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.LoadConfig()
			if err != nil {
				return err
			}

			log := zap.NewNop()
			if verbose {
				if log, err = zap.NewDevelopment(); err != nil {
					return err
				}
			}
			defer log.Sync()

			engine, err := configs.BuildEngine(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			return NewMenu(engine, os.Stdin, cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose engine logging")
	return cmd
}
