package contact

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fill(t *testing.T, f *Form, d Data) {
	t.Helper()
	require.NoError(t, f.Set(FieldName, d.Name))
	require.NoError(t, f.Set(FieldEmail, d.Email))
	require.NoError(t, f.Set(FieldMessage, d.Message))
}

func TestSubmitClearsFieldsAndRevertsFlag(t *testing.T) {
	var changes atomic.Int32
	f := NewForm(20*time.Millisecond, func() { changes.Add(1) })
	defer f.Close()

	fill(t, f, Data{Name: "Ann", Email: "a@x.com", Message: "Hi"})
	assert.Equal(t, Data{Name: "Ann", Email: "a@x.com", Message: "Hi"}, f.Data())

	accepted, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, Data{Name: "Ann", Email: "a@x.com", Message: "Hi"}, accepted)
	assert.True(t, f.Submitted())
	assert.Equal(t, Data{}, f.Data())

	require.Eventually(t, func() bool { return !f.Submitted() }, 2*time.Second, 2*time.Millisecond)
	assert.Equal(t, int32(1), changes.Load())
}

func TestSubmitRequiresEveryField(t *testing.T) {
	f := NewForm(time.Hour, nil)
	defer f.Close()

	fill(t, f, Data{Name: "Ann", Email: "a@x.com", Message: "   "})
	_, err := f.Submit()
	assert.ErrorIs(t, err, ErrMissingField)
	assert.False(t, f.Submitted())
	assert.Equal(t, "Ann", f.Data().Name, "rejected submit keeps the input")
}

func TestSetUnknownField(t *testing.T) {
	f := NewForm(time.Hour, nil)
	defer f.Close()
	assert.ErrorIs(t, f.Set("phone", "123"), ErrUnknownField)

	_, err := Data{}.Get("phone")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestResubmitRestartsDelay(t *testing.T) {
	var changes atomic.Int32
	f := NewForm(60*time.Millisecond, func() { changes.Add(1) })
	defer f.Close()

	fill(t, f, Data{Name: "a", Email: "b", Message: "c"})
	_, err := f.Submit()
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	fill(t, f, Data{Name: "d", Email: "e", Message: "f"})
	_, err = f.Submit()
	require.NoError(t, err)

	// The first timer would have fired by now; the restarted one has not.
	time.Sleep(40 * time.Millisecond)
	assert.True(t, f.Submitted())

	require.Eventually(t, func() bool { return !f.Submitted() }, 2*time.Second, 2*time.Millisecond)
	assert.Equal(t, int32(1), changes.Load())
}

func TestCloseCancelsPendingReset(t *testing.T) {
	var changes atomic.Int32
	f := NewForm(10*time.Millisecond, func() { changes.Add(1) })

	fill(t, f, Data{Name: "a", Email: "b", Message: "c"})
	_, err := f.Submit()
	require.NoError(t, err)

	f.Close()
	f.Close()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, int32(0), changes.Load())
	assert.True(t, f.Submitted(), "flag is frozen once closed")

	_, err = f.Submit()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, f.Acknowledge(), ErrClosed)
}

func TestAcknowledgeShowsConfirmation(t *testing.T) {
	var changes atomic.Int32
	f := NewForm(10*time.Millisecond, func() { changes.Add(1) })
	defer f.Close()

	require.NoError(t, f.Set(FieldName, "half typed"))
	require.NoError(t, f.Acknowledge())
	assert.True(t, f.Submitted())
	assert.Equal(t, Data{}, f.Data())

	require.Eventually(t, func() bool { return !f.Submitted() }, 2*time.Second, 2*time.Millisecond)
	assert.Equal(t, int32(1), changes.Load())
}

func TestDefaultDelay(t *testing.T) {
	f := NewForm(0, nil)
	assert.Equal(t, DefaultResetDelay, f.delay)
}

func postForm(h http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandlerAccepts(t *testing.T) {
	h := Handler(zap.NewNop())
	w := postForm(h, url.Values{"name": {"Ann"}, "email": {"a@x.com"}, "message": {"Hi"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, SentLocation, w.Header().Get("Location"))
}

func TestHandlerMissingField(t *testing.T) {
	h := Handler(zap.NewNop())
	w := postForm(h, url.Values{"name": {"Ann"}, "email": {"a@x.com"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, MissingLocation, w.Header().Get("Location"))
}
