// Package view owns the UI state of one rendered page: the active nav
// section, the mobile menu, dark mode, the contact form and the statistic
// counters. A Page acquires a scroll subscription and one timer per counter
// when mounted and releases all of them when unmounted.
package view

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/iphase-tech/iphase-site/internal/contact"
	"github.com/iphase-tech/iphase-site/internal/content"
	"github.com/iphase-tech/iphase-site/internal/counter"
	"github.com/iphase-tech/iphase-site/internal/scrollspy"
)

var (
	ErrUnknownSection = errors.New("view: unknown section")
	ErrMounted        = errors.New("view: page was already mounted")
)

// Options configures a Page.
type Options struct {
	Sections        []string
	Margin          float64
	Stats           []content.Stat
	CounterDuration time.Duration
	CounterTick     time.Duration
	ResetDelay      time.Duration
}

// CounterState is the displayed value of one statistic.
type CounterState struct {
	Label  string `json:"label"`
	Target int    `json:"target"`
	Value  int    `json:"value"`
	Done   bool   `json:"done"`
}

// State is a point-in-time copy of everything the page renders from.
type State struct {
	ActiveSection string         `json:"active_section"`
	MenuOpen      bool           `json:"menu_open"`
	DarkMode      bool           `json:"dark_mode"`
	Form          contact.Data   `json:"form"`
	Submitted     bool           `json:"submitted"`
	Counters      []CounterState `json:"counters"`
}

// Page is the controller behind one page view. It is safe for concurrent
// use: counter goroutines and the event reader both mutate it.
type Page struct {
	onChange func()

	form     *contact.Form
	counters []*counter.Animator
	labels   []string

	mu        sync.Mutex
	spy       *scrollspy.Spy
	menuOpen  bool
	darkMode  bool
	mounted   bool
	unmounted bool
	release   []func()
}

// New builds an unmounted Page. onChange, if non-nil, is called after every
// state change, from whichever goroutine made it.
func New(opts Options, onChange func()) (*Page, error) {
	if len(opts.Sections) == 0 {
		opts.Sections = content.Sections
	}
	if opts.CounterDuration <= 0 {
		opts.CounterDuration = counter.DefaultDuration
	}
	if opts.CounterTick <= 0 {
		opts.CounterTick = counter.DefaultTick
	}

	p := &Page{
		onChange: onChange,
		spy:      scrollspy.New(opts.Sections, opts.Margin),
	}
	p.form = contact.NewForm(opts.ResetDelay, p.notify)

	for _, st := range opts.Stats {
		a, err := counter.New(st.Target, opts.CounterDuration, opts.CounterTick)
		if err != nil {
			return nil, fmt.Errorf("counter %q: %w", st.Label, err)
		}
		p.counters = append(p.counters, a)
		p.labels = append(p.labels, st.Label)
	}
	return p, nil
}

func (p *Page) notify() {
	if p.onChange != nil {
		p.onChange()
	}
}

// Mount subscribes to scroll events on feed and starts every counter. A
// Page mounts once; remounting means building a new Page, which restarts
// the counters from zero.
func (p *Page) Mount(feed *scrollspy.Feed) error {
	p.mu.Lock()
	if p.mounted || p.unmounted {
		p.mu.Unlock()
		return ErrMounted
	}
	p.mounted = true
	p.mu.Unlock()

	var release []func()
	if feed != nil {
		release = append(release, feed.Subscribe(p.HandleScroll))
	}
	for _, a := range p.counters {
		stop, err := a.Start(func(int, bool) { p.notify() })
		if err != nil {
			for _, r := range release {
				r()
			}
			return err
		}
		release = append(release, stop)
	}

	p.mu.Lock()
	if p.unmounted {
		// Unmount raced with Mount; release what was just acquired.
		p.mu.Unlock()
		for _, r := range release {
			r()
		}
		return nil
	}
	p.release = release
	p.mu.Unlock()
	return nil
}

// Unmount cancels the scroll subscription, stops the counters and the
// pending form reset. It is idempotent. It must not be called from
// onChange.
func (p *Page) Unmount() {
	p.mu.Lock()
	if p.unmounted {
		p.mu.Unlock()
		return
	}
	p.unmounted = true
	release := p.release
	p.release = nil
	p.mu.Unlock()

	for _, r := range release {
		r()
	}
	p.form.Close()
}

// HandleScroll evaluates the scroll-spy for one scroll event.
func (p *Page) HandleScroll(ev scrollspy.ScrollEvent) {
	p.mu.Lock()
	_, changed := p.spy.Evaluate(ev.Offset, ev.Layout)
	p.mu.Unlock()
	if changed {
		p.notify()
	}
}

// ToggleDarkMode flips the dark-mode flag and returns the new value.
func (p *Page) ToggleDarkMode() bool {
	p.mu.Lock()
	p.darkMode = !p.darkMode
	v := p.darkMode
	p.mu.Unlock()
	p.notify()
	return v
}

// ToggleMenu opens or closes the mobile menu and returns the new value.
func (p *Page) ToggleMenu() bool {
	p.mu.Lock()
	p.menuOpen = !p.menuOpen
	v := p.menuOpen
	p.mu.Unlock()
	p.notify()
	return v
}

// Navigate handles a click on a nav entry: the mobile menu closes and the
// browser jumps to the anchor. The active section follows from the scroll
// that the jump causes.
func (p *Page) Navigate(section string) error {
	p.mu.Lock()
	if !slices.Contains(p.spy.Sections(), section) {
		p.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	p.menuOpen = false
	p.mu.Unlock()
	p.notify()
	return nil
}

// SetField updates one contact form input.
func (p *Page) SetField(field contact.Field, value string) error {
	if err := p.form.Set(field, value); err != nil {
		return err
	}
	p.notify()
	return nil
}

// Submit submits the contact form.
func (p *Page) Submit() (contact.Data, error) {
	d, err := p.form.Submit()
	if err != nil {
		return contact.Data{}, err
	}
	p.notify()
	return d, nil
}

// Acknowledge shows the contact confirmation for a message accepted by the
// form fallback.
func (p *Page) Acknowledge() error {
	if err := p.form.Acknowledge(); err != nil {
		return err
	}
	p.notify()
	return nil
}

// Snapshot returns the current state.
func (p *Page) Snapshot() State {
	p.mu.Lock()
	st := State{
		ActiveSection: p.spy.Active(),
		MenuOpen:      p.menuOpen,
		DarkMode:      p.darkMode,
	}
	p.mu.Unlock()

	st.Form = p.form.Data()
	st.Submitted = p.form.Submitted()
	st.Counters = make([]CounterState, len(p.counters))
	for i, a := range p.counters {
		st.Counters[i] = CounterState{
			Label:  p.labels[i],
			Target: a.Target(),
			Value:  a.Value(),
			Done:   a.Done(),
		}
	}
	return st
}
