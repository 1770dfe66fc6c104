package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "iPhase Technologies", site.Brand.Name)
	require.Len(t, site.Nav, 8)
	assert.Equal(t, NavItem{ID: "about", Label: "About"}, site.Nav[4])
	assert.Len(t, site.ProductList, 4)
	assert.Len(t, site.Papers, 3)
	assert.Len(t, site.Events, 6)
	assert.Len(t, site.Members, 4)
	assert.Len(t, site.Gallery.Images, 6)
	assert.Len(t, site.Footer.Links, 4)

	require.Len(t, site.Impact.Stats, 3)
	assert.Equal(t, Stat{Target: 50, Label: "Countries"}, site.Impact.Stats[0])
	assert.Equal(t, 250, site.Impact.Stats[1].Target)
	assert.Equal(t, 18, site.Impact.Stats[2].Target)

	require.Len(t, site.Impact.Research, 7)
	assert.Equal(t, ResearchPoint{Year: "2018", Pubs: 3}, site.Impact.Research[0])
	assert.Equal(t, ResearchPoint{Year: "2024", Pubs: 24}, site.Impact.Research[6])

	assert.Equal(t, "#0A2E5D", site.Palette.Primary)
}

func TestEveryNavItemNamesASection(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)
	for _, item := range site.Nav {
		assert.Contains(t, Sections, item.ID)
	}
	assert.Len(t, Sections, 8)
}

func TestLabel(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "About", site.Label("about"))
	assert.Equal(t, "nowhere", site.Label("nowhere"))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Site)
		want   string
	}{
		{"no brand", func(s *Site) { s.Brand.Name = "" }, "brand.name"},
		{"no nav", func(s *Site) { s.Nav = nil }, "nav must"},
		{"unknown section", func(s *Site) { s.Nav[0].ID = "timeline" }, "unknown section"},
		{"duplicate section", func(s *Site) { s.Nav[1].ID = "home" }, "duplicate section"},
		{"empty label", func(s *Site) { s.Nav[2].Label = "" }, "label are required"},
		{"negative stat", func(s *Site) { s.Impact.Stats[0].Target = -1 }, "non-negative"},
		{"unlabelled stat", func(s *Site) { s.Impact.Stats[1].Label = "" }, "label is required"},
		{"duplicate year", func(s *Site) { s.Impact.Research[1].Year = "2018" }, "duplicate year"},
		{"negative pubs", func(s *Site) { s.Impact.Research[0].Pubs = -3 }, "pubs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, err := Default()
			require.NoError(t, err)
			tt.mutate(site)
			err = site.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	data := strings.Replace(string(defaultYAML), "name: iPhase Technologies", "name: Acme Automation", 1)
	path := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Automation", site.Brand.Name)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("nav: [::"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestStoreReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o644))

	store, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	before := store.Get()

	require.NoError(t, os.WriteFile(path, []byte("brand: {}\n"), 0o644))
	assert.Error(t, store.Reload())
	assert.Same(t, before, store.Get())

	updated := strings.Replace(string(defaultYAML), "title: Our Products", "title: Product Range", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	require.NoError(t, store.Reload())
	assert.Equal(t, "Product Range", store.Get().Products.Title)
}

func TestStoreBuiltIn(t *testing.T) {
	store, err := NewStore("")
	require.NoError(t, err)
	assert.Equal(t, "iPhase Technologies", store.Get().Brand.Name)
	assert.NoError(t, store.Reload())
}
