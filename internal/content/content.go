// Package content holds the static tables the marketing page is rendered
// from: navigation, products, publications, timeline, team, statistics,
// research series, gallery and contact details.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Section ids in document order. The timeline is rendered in the "about"
// section.
const (
	SectionHome         = "home"
	SectionProducts     = "products"
	SectionPublications = "publications"
	SectionAbout        = "about"
	SectionTeam         = "team"
	SectionImpact       = "impact"
	SectionGallery      = "gallery"
	SectionContact      = "contact"
)

// Sections lists every scroll-spy section in document order.
var Sections = []string{
	SectionHome,
	SectionProducts,
	SectionPublications,
	SectionAbout,
	SectionTeam,
	SectionImpact,
	SectionGallery,
	SectionContact,
}

//go:embed default.yml
var defaultYAML []byte

// Default returns the built-in content.
func Default() (*Site, error) {
	return Parse(defaultYAML)
}

// Load reads content from path, or returns the built-in content when path
// is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the invariants the renderer and the scroll-spy rely on.
func (s *Site) Validate() error {
	if s.Brand.Name == "" {
		return fmt.Errorf("brand.name is required")
	}
	if len(s.Nav) == 0 {
		return fmt.Errorf("nav must list at least one section")
	}

	known := make(map[string]bool, len(Sections))
	for _, id := range Sections {
		known[id] = true
	}
	seen := make(map[string]bool, len(s.Nav))
	for i, item := range s.Nav {
		if item.ID == "" || item.Label == "" {
			return fmt.Errorf("nav[%d]: id and label are required", i)
		}
		if !known[item.ID] {
			return fmt.Errorf("nav[%d]: unknown section %q", i, item.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("nav[%d]: duplicate section %q", i, item.ID)
		}
		seen[item.ID] = true
	}

	for i, st := range s.Impact.Stats {
		if st.Target < 0 {
			return fmt.Errorf("impact.stats[%d]: target must be non-negative", i)
		}
		if st.Label == "" {
			return fmt.Errorf("impact.stats[%d]: label is required", i)
		}
	}

	years := make(map[string]bool, len(s.Impact.Research))
	for i, p := range s.Impact.Research {
		if p.Year == "" {
			return fmt.Errorf("impact.research[%d]: year is required", i)
		}
		if years[p.Year] {
			return fmt.Errorf("impact.research[%d]: duplicate year %q", i, p.Year)
		}
		if p.Pubs < 0 {
			return fmt.Errorf("impact.research[%d]: pubs must be non-negative", i)
		}
		years[p.Year] = true
	}

	return nil
}

// Label returns the nav label for a section id, or the id itself when the
// section is not in the nav.
func (s *Site) Label(id string) string {
	for _, item := range s.Nav {
		if item.ID == id {
			return item.Label
		}
	}
	return id
}
