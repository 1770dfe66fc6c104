package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iphase-tech/iphase-site/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "iphase",
	Short: "Serve and build the iPhase Technologies website",
	Long: `iphase renders the iPhase Technologies single-page site. It serves a
live version where scroll-spy, statistic counters and the contact form run
in a per-visitor session, and builds a static copy for plain file hosting.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
