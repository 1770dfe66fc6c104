package scrollspy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pageSections = []string{"home", "products", "publications", "about", "team", "impact", "gallery", "contact"}

// stackedLayout lays the sections out back to back, each height tall.
func stackedLayout(ids []string, height float64) LayoutMap {
	m := make(LayoutMap, len(ids))
	for i, id := range ids {
		m[id] = Extent{Top: float64(i) * height, Height: height}
	}
	return m
}

func TestNewStartsOnFirstSection(t *testing.T) {
	s := New(pageSections, DefaultMargin)
	assert.Equal(t, "home", s.Active())
	assert.Equal(t, pageSections, s.Sections())

	empty := New(nil, DefaultMargin)
	assert.Equal(t, "", empty.Active())
}

func TestEvaluateEveryOffsetInsideSection(t *testing.T) {
	layout := stackedLayout(pageSections, 800)
	s := New(pageSections, DefaultMargin)

	for i, id := range pageSections {
		top := float64(i) * 800
		// Every adjusted offset in [top, top+height) selects the section.
		for _, y := range []float64{top, top + 1, top + 400, top + 799.5} {
			got, _ := s.Evaluate(y-DefaultMargin, layout)
			assert.Equal(t, id, got, "adjusted offset %v", y)
		}
	}
}

func TestEvaluateMarginAnticipatesBoundary(t *testing.T) {
	layout := stackedLayout(pageSections, 1000)
	s := New(pageSections, DefaultMargin)

	got, changed := s.Evaluate(899, layout)
	assert.Equal(t, "home", got)
	assert.False(t, changed)

	got, changed = s.Evaluate(900, layout)
	assert.Equal(t, "products", got)
	assert.True(t, changed)
}

func TestEvaluateNoMatchKeepsPrevious(t *testing.T) {
	layout := stackedLayout(pageSections, 500)
	s := New(pageSections, DefaultMargin)

	got, _ := s.Evaluate(1100, layout)
	require.Equal(t, "publications", got)

	// Far past the bottom of the page.
	got, changed := s.Evaluate(1e6, layout)
	assert.Equal(t, "publications", got)
	assert.False(t, changed)

	// Above the top (negative overscroll).
	got, changed = s.Evaluate(-500, layout)
	assert.Equal(t, "publications", got)
	assert.False(t, changed)

	// Nil layout is tolerated.
	got, changed = s.Evaluate(0, nil)
	assert.Equal(t, "publications", got)
	assert.False(t, changed)
}

func TestEvaluateSkipsMissingSections(t *testing.T) {
	layout := stackedLayout(pageSections, 500)
	delete(layout, "products")
	delete(layout, "about")
	s := New(pageSections, DefaultMargin)

	// The products region has no element: nothing matches, home stays.
	got, changed := s.Evaluate(500, layout)
	assert.Equal(t, "home", got)
	assert.False(t, changed)

	got, _ = s.Evaluate(900, layout)
	assert.Equal(t, "publications", got)
}

func TestEvaluateFirstMatchWinsOnOverlap(t *testing.T) {
	layout := LayoutMap{
		"home":     {Top: 0, Height: 1000},
		"products": {Top: 0, Height: 1000},
	}
	s := New([]string{"products", "home"}, 0)
	got, _ := s.Evaluate(10, layout)
	assert.Equal(t, "products", got)
}

func TestActiveNeverResetsOnceMatched(t *testing.T) {
	layout := stackedLayout(pageSections, 700)
	s := New(pageSections, DefaultMargin)
	offsets := []float64{0, 5000, -100, 1e9, 2200, 3, 99999, -1e9, 4000}
	for _, off := range offsets {
		got, _ := s.Evaluate(off, layout)
		assert.NotEmpty(t, got)
		assert.Contains(t, pageSections, got)
	}
}

func TestExtentContains(t *testing.T) {
	e := Extent{Top: 100, Height: 50}
	assert.True(t, e.Contains(100))
	assert.True(t, e.Contains(149.99))
	assert.False(t, e.Contains(150))
	assert.False(t, e.Contains(99.99))
	assert.False(t, Extent{Top: 10}.Contains(10))
}

func TestFeedDeliversInOrderAndCancels(t *testing.T) {
	f := NewFeed()
	var got []string

	cancelA := f.Subscribe(func(ev ScrollEvent) { got = append(got, "a") })
	cancelB := f.Subscribe(func(ev ScrollEvent) { got = append(got, "b") })
	require.Equal(t, 2, f.Len())

	f.Publish(ScrollEvent{Offset: 1})
	assert.Equal(t, []string{"a", "b"}, got)

	cancelA()
	cancelA()
	assert.Equal(t, 1, f.Len())

	f.Publish(ScrollEvent{Offset: 2})
	assert.Equal(t, []string{"a", "b", "b"}, got)

	cancelB()
	f.Publish(ScrollEvent{Offset: 3})
	assert.Equal(t, []string{"a", "b", "b"}, got)
	assert.Equal(t, 0, f.Len())
}

func TestFeedConcurrentPublishAndCancel(t *testing.T) {
	f := NewFeed()
	var mu sync.Mutex
	calls := 0
	cancel := f.Subscribe(func(ScrollEvent) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Publish(ScrollEvent{Offset: float64(i*100 + j)})
			}
		}(i)
	}
	wg.Wait()
	cancel()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 800, calls)
}
