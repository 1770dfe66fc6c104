// Package scrollspy decides which page section the visitor is looking at.
//
// The browser reports its scroll offset together with the current layout of
// every section; Spy picks the first section, in document order, whose
// vertical extent contains the offset plus a lookahead margin.
package scrollspy

// DefaultMargin anticipates a section boundary slightly before it is reached.
const DefaultMargin = 100

// Extent is the rendered vertical region of a section.
type Extent struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Contains reports whether y falls in [Top, Top+Height).
func (e Extent) Contains(y float64) bool {
	return e.Top <= y && y < e.Top+e.Height
}

// Layout yields the extent of a section, or false when the section has no
// rendered element at the moment.
type Layout interface {
	Extent(id string) (Extent, bool)
}

// LayoutMap is a Layout backed by a plain map, the shape browsers send.
type LayoutMap map[string]Extent

// Extent implements Layout.
func (m LayoutMap) Extent(id string) (Extent, bool) {
	e, ok := m[id]
	return e, ok
}

// Spy tracks the active section. It is not safe for concurrent use; the
// owning view serializes calls.
type Spy struct {
	sections []string
	margin   float64
	active   string
}

// New creates a Spy over sections in priority order. The first section is
// active until a scroll evaluation says otherwise.
func New(sections []string, margin float64) *Spy {
	s := &Spy{
		sections: append([]string(nil), sections...),
		margin:   margin,
	}
	if len(s.sections) > 0 {
		s.active = s.sections[0]
	}
	return s
}

// Active returns the current active section id.
func (s *Spy) Active() string { return s.active }

// Sections returns the section ids in priority order.
func (s *Spy) Sections() []string {
	return append([]string(nil), s.sections...)
}

// Evaluate matches offset+margin against the layout and publishes the first
// containing section as active. When nothing matches the previous value is
// kept. It returns the active section and whether it changed.
func (s *Spy) Evaluate(offset float64, layout Layout) (string, bool) {
	if layout == nil {
		return s.active, false
	}
	y := offset + s.margin
	for _, id := range s.sections {
		ext, ok := layout.Extent(id)
		if !ok {
			continue
		}
		if ext.Contains(y) {
			changed := id != s.active
			s.active = id
			return id, changed
		}
	}
	return s.active, false
}
