package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iphase-tech/iphase-site/internal/contact"
	"github.com/iphase-tech/iphase-site/internal/content"
	"github.com/iphase-tech/iphase-site/internal/progress"
	"github.com/iphase-tech/iphase-site/internal/scrollspy"
)

// Output file names of a static build.
const (
	IndexFile  = "index.html"
	StyleFile  = "style.css"
	ScriptFile = "app.js"
)

// StyleSheet returns the contents of style.css.
func StyleSheet() string { return cssContent }

// AppScript returns the contents of app.js.
func AppScript() string { return jsContent }

// SiteGenerator writes a static build of the page.
type SiteGenerator struct {
	Site      *content.Site
	OutputDir string
	Title     string
	Reporter  progress.Reporter
	Now       func() time.Time

	// Browser-side fallbacks, matching spy.margin and contact.reset_delay.
	SpyMargin  float64
	ResetDelay time.Duration
}

// NewSiteGenerator creates a SiteGenerator writing into outputDir.
func NewSiteGenerator(site *content.Site, outputDir, title string) *SiteGenerator {
	return &SiteGenerator{
		Site:      site,
		OutputDir: outputDir,
		Title:     title,
		Reporter:  progress.Nop{},
		Now:       time.Now,

		SpyMargin:  scrollspy.DefaultMargin,
		ResetDelay: contact.DefaultResetDelay,
	}
}

type outputFile struct {
	name   string
	render func() ([]byte, error)
}

// Generate builds the static site. Returns the number of files written.
func (gen *SiteGenerator) Generate() (int, error) {
	if gen.Site == nil {
		return 0, fmt.Errorf("no content to render")
	}
	if err := os.MkdirAll(gen.OutputDir, 0o755); err != nil {
		return 0, err
	}

	files := []outputFile{
		{IndexFile, gen.renderIndex},
		{StyleFile, func() ([]byte, error) { return []byte(cssContent), nil }},
		{ScriptFile, func() ([]byte, error) { return []byte(jsContent), nil }},
		{SearchIndexFile, gen.renderSearchIndex},
	}

	gen.Reporter.Start(len(files))
	defer gen.Reporter.Finish()

	for i, f := range files {
		data, err := f.render()
		if err != nil {
			return i, fmt.Errorf("rendering %s: %w", f.name, err)
		}
		if err := os.WriteFile(filepath.Join(gen.OutputDir, f.name), data, 0o644); err != nil {
			return i, fmt.Errorf("writing %s: %w", f.name, err)
		}
		gen.Reporter.FileWritten(i+1, f.name)
	}

	return len(files), nil
}

func (gen *SiteGenerator) renderIndex() ([]byte, error) {
	var buf bytes.Buffer
	st := InitialState(gen.Site, false)
	opts := Options{
		Title:      gen.Title,
		Year:       gen.Now().Year(),
		SpyMargin:  gen.SpyMargin,
		ResetDelay: gen.ResetDelay,
	}
	if err := Render(&buf, gen.Site, st, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gen *SiteGenerator) renderSearchIndex() ([]byte, error) {
	return SearchIndexJSON(gen.Site)
}
