// Package contact implements the contact form stub. Submissions are never
// transmitted anywhere: the form clears itself, raises a "submitted" flag
// and lowers it again after a fixed delay.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultResetDelay is how long the confirmation stays visible.
const DefaultResetDelay = 3 * time.Second

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

var (
	ErrUnknownField = errors.New("contact: unknown field")
	ErrMissingField = errors.New("contact: required field is empty")
	ErrClosed       = errors.New("contact: form is closed")
)

// Data is the current value of every field.
type Data struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Get returns the value of field.
func (d Data) Get(field Field) (string, error) {
	switch field {
	case FieldName:
		return d.Name, nil
	case FieldEmail:
		return d.Email, nil
	case FieldMessage:
		return d.Message, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func (d *Data) set(field Field, value string) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldMessage:
		d.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Validate enforces the same presence rule as the inputs' required
// attribute.
func (d Data) Validate() error {
	for _, f := range Fields {
		v, _ := d.Get(f)
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}
	return nil
}

// Form is one visitor's contact form. It is safe for concurrent use.
type Form struct {
	delay    time.Duration
	onChange func()

	mu        sync.Mutex
	data      Data
	submitted bool
	timer     *time.Timer
	gen       int
	pending   sync.WaitGroup
	closed    bool
}

// NewForm creates an empty form whose confirmation lasts delay. onChange,
// if non-nil, is called after the submitted flag reverts on its own.
func NewForm(delay time.Duration, onChange func()) *Form {
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	return &Form{delay: delay, onChange: onChange}
}

// Set updates one field.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.set(field, value)
}

// Data returns a copy of the field values.
func (f *Form) Data() Data {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// Submitted reports whether the confirmation is showing.
func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// Submit accepts the current values: it raises the submitted flag, clears
// every field and schedules the flag to drop after the delay. A submit while
// the flag is already up restarts the delay. The accepted values are
// returned; nothing is sent anywhere.
func (f *Form) Submit() (Data, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return Data{}, ErrClosed
	}
	if err := f.data.Validate(); err != nil {
		return Data{}, err
	}

	accepted := f.data
	f.confirmLocked()
	return accepted, nil
}

// Acknowledge shows the confirmation for a message that was accepted
// elsewhere, such as the POST /contact fallback. It behaves like a
// successful Submit.
func (f *Form) Acknowledge() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	f.confirmLocked()
	return nil
}

func (f *Form) confirmLocked() {
	f.data = Data{}
	f.submitted = true

	f.stopTimerLocked()
	f.gen++
	gen := f.gen
	f.pending.Add(1)
	f.timer = time.AfterFunc(f.delay, func() { f.expire(gen) })
}

func (f *Form) expire(gen int) {
	defer f.pending.Done()

	f.mu.Lock()
	if f.closed || f.gen != gen {
		f.mu.Unlock()
		return
	}
	f.submitted = false
	f.timer = nil
	f.mu.Unlock()

	if f.onChange != nil {
		f.onChange()
	}
}

// stopTimerLocked cancels the pending reset, if any. Caller holds f.mu.
func (f *Form) stopTimerLocked() {
	if f.timer == nil {
		return
	}
	if f.timer.Stop() {
		f.pending.Done()
	}
	f.timer = nil
}

// Close cancels the pending reset and waits for a reset that is already
// running. It is idempotent and must not be called from onChange.
func (f *Form) Close() {
	f.mu.Lock()
	f.closed = true
	f.stopTimerLocked()
	f.mu.Unlock()

	f.pending.Wait()
}
