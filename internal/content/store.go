package content

import "sync/atomic"

// Store holds the current content and swaps it atomically on reload, so
// readers never see a partially loaded Site.
type Store struct {
	path string
	cur  atomic.Pointer[Site]
}

// NewStore loads content from path (empty for the built-in content).
func NewStore(path string) (*Store, error) {
	site, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.cur.Store(site)
	return s, nil
}

// Get returns the current content.
func (s *Store) Get() *Site { return s.cur.Load() }

// Path returns the file the store reloads from.
func (s *Store) Path() string { return s.path }

// Reload re-reads the content file. On error the previous content is kept.
func (s *Store) Reload() error {
	site, err := Load(s.path)
	if err != nil {
		return err
	}
	s.cur.Store(site)
	return nil
}
