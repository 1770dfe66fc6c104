package counter

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSequenceFiftyTakes125Ticks(t *testing.T) {
	seq, err := Sequence(50, 2000*time.Millisecond, 16*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, seq, 125)
	assert.Equal(t, 50, seq[len(seq)-1])

	for i, v := range seq {
		assert.LessOrEqual(t, v, 50, "tick %d overshoots", i+1)
		if i > 0 {
			assert.GreaterOrEqual(t, v, seq[i-1], "tick %d decreases", i+1)
		}
	}
	// Only the final tick shows the target.
	assert.Equal(t, 49, seq[123])
}

func TestSequenceOtherTargets(t *testing.T) {
	for _, target := range []int{1, 18, 250, 7, 100000} {
		seq, err := Sequence(target, DefaultDuration, DefaultTick)
		require.NoError(t, err)
		require.Len(t, seq, 125, "target %d", target)
		assert.Equal(t, target, seq[len(seq)-1])
		for i := 1; i < len(seq); i++ {
			assert.GreaterOrEqual(t, seq[i], seq[i-1])
			assert.LessOrEqual(t, seq[i], target)
		}
	}
}

func TestTickCountRoundsUp(t *testing.T) {
	// 100ms / 30ms = 3.33 steps: the accumulator first reaches the target
	// on the fourth tick.
	a, err := New(10, 100*time.Millisecond, 30*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 4, a.TotalTicks())

	seq, err := Sequence(10, 100*time.Millisecond, 30*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 9, 10}, seq)
}

func TestZeroTargetIsImmediatelyDone(t *testing.T) {
	a, err := New(0, DefaultDuration, DefaultTick)
	require.NoError(t, err)
	assert.True(t, a.Done())
	assert.Equal(t, 0, a.Value())
	assert.Equal(t, 0, a.TotalTicks())

	v, done := a.Step()
	assert.Equal(t, 0, v)
	assert.True(t, done)
	assert.Equal(t, 0, a.Ticks())

	var calls []int
	stop, err := a.Start(func(v int, done bool) {
		assert.True(t, done)
		calls = append(calls, v)
	})
	require.NoError(t, err)
	stop()
	assert.Equal(t, []int{0}, calls)
}

func TestStepAfterDoneIsNoop(t *testing.T) {
	a, err := New(3, 3*time.Millisecond, time.Millisecond)
	require.NoError(t, err)
	for !a.Done() {
		a.Step()
	}
	ticks := a.Ticks()
	v, done := a.Step()
	assert.Equal(t, 3, v)
	assert.True(t, done)
	assert.Equal(t, ticks, a.Ticks())
}

func TestNewRejectsInvalidInput(t *testing.T) {
	_, err := New(-1, DefaultDuration, DefaultTick)
	assert.True(t, errors.Is(err, ErrNegativeTarget))

	_, err = New(5, 0, DefaultTick)
	assert.True(t, errors.Is(err, ErrInvalidTiming))

	_, err = New(5, DefaultDuration, -time.Millisecond)
	assert.True(t, errors.Is(err, ErrInvalidTiming))
}

func TestStartRunsToCompletionAndReleasesTicker(t *testing.T) {
	a, err := New(20, 20*time.Millisecond, time.Millisecond)
	require.NoError(t, err)

	var mu sync.Mutex
	var values []int
	finished := make(chan struct{})
	stop, err := a.Start(func(v int, done bool) {
		mu.Lock()
		values = append(values, v)
		mu.Unlock()
		if done {
			close(finished)
		}
	})
	require.NoError(t, err)

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("animation did not finish")
	}
	stop()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, values, 20)
	assert.Equal(t, 20, values[len(values)-1])
	assert.Equal(t, 20, a.Value())
}

func TestStopCancelsEarly(t *testing.T) {
	a, err := New(1000, time.Hour, time.Millisecond)
	require.NoError(t, err)

	var mu sync.Mutex
	calls := 0
	stop, err := a.Start(func(int, bool) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	stop()
	stop()

	mu.Lock()
	after := calls
	mu.Unlock()
	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, after, calls, "no updates after stop")
	assert.False(t, a.Done())
	assert.Less(t, a.Value(), 1000)
}

func TestStartTwiceFails(t *testing.T) {
	a, err := New(5, time.Hour, time.Hour)
	require.NoError(t, err)
	stop, err := a.Start(nil)
	require.NoError(t, err)
	defer stop()

	_, err = a.Start(nil)
	assert.ErrorIs(t, err, ErrStarted)
}
