package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iphase-tech/iphase-site/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize iphase configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes the config file (.iphase.yml unless --config says otherwise).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
