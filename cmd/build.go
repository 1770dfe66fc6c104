package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iphase-tech/iphase-site/internal/content"
	"github.com/iphase-tech/iphase-site/internal/progress"
	"github.com/iphase-tech/iphase-site/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static copy of the site",
	Long: `Renders index.html, style.css, app.js and the search index into the output
directory. The static page shows the final statistic values and runs the
scroll-spy, toggles, search and the contact form stub in the browser, using
spy.margin and contact.reset_delay from the configuration.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}

	c, err := content.Load(cfg.Site.ContentFile)
	if err != nil {
		return err
	}

	generator := site.NewSiteGenerator(c, outputDir, cfg.Site.Title)
	generator.Reporter = progress.NewReporter(outputDir)
	generator.SpyMargin = cfg.Spy.Margin
	generator.ResetDelay = cfg.Contact.ResetDelay
	n, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	logger.Debug("static build complete", zap.String("output", outputDir), zap.Int("files", n))
	fmt.Printf("Static site generated: %s (%d files)\n", outputDir, n)
	return nil
}
