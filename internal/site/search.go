package site

import (
	"encoding/json"
	"strings"

	"github.com/iphase-tech/iphase-site/internal/content"
)

// SearchIndexFile is the name the search index is served and written under.
const SearchIndexFile = "search-index.json"

// SearchEntry is one hit target for the mobile menu search box.
type SearchEntry struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex flattens the page content into entries that point at the
// section rendering them.
func BuildSearchIndex(s *content.Site) []SearchEntry {
	var entries []SearchEntry
	add := func(section, title, summary string, words ...string) {
		entries = append(entries, SearchEntry{
			Section: section,
			Title:   title,
			Summary: summary,
			Content: clip(strings.Join(append([]string{title, summary}, words...), " ")),
		})
	}

	add(content.SectionHome, s.Hero.Title, s.Hero.Subtitle)
	for _, p := range s.ProductList {
		add(content.SectionProducts, p.Name, p.Description)
	}
	for _, p := range s.Papers {
		add(content.SectionPublications, p.Title, p.Journal, p.Authors)
	}
	for _, e := range s.Events {
		add(content.SectionAbout, e.Year+" "+e.Title, e.Description)
	}
	for _, m := range s.Members {
		add(content.SectionTeam, m.Name, m.Role, m.Bio)
	}
	for _, st := range s.Impact.Stats {
		add(content.SectionImpact, st.Label, s.Impact.Title)
	}
	add(content.SectionGallery, s.Gallery.Title, s.Video.Title)
	add(content.SectionContact, s.Contact.Title, s.Contact.Intro,
		strings.Join(s.Contact.Address, " "), s.Contact.Phone, s.Contact.Email)

	return entries
}

func clip(s string) string {
	if len(s) > 2000 {
		return s[:2000]
	}
	return s
}

// SearchIndexJSON renders the search index served as search-index.json.
func SearchIndexJSON(s *content.Site) ([]byte, error) {
	return json.MarshalIndent(BuildSearchIndex(s), "", "  ")
}
