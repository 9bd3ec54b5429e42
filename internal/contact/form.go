package contact

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Status is the submission lifecycle of a Form.
type Status int

const (
	Idle Status = iota
	Sending
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText lets the status appear by name in JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const (
	DefaultSuccessMessage = "Message sent successfully"
	DefaultFailureMessage = "Failed to send message. Please try again later."
	DefaultResetDelay     = 3 * time.Second
	DefaultSendTimeout    = 15 * time.Second
)

// DefaultFields is the field set of the contact form.
var DefaultFields = []string{"name", "email", "message"}

// ErrInFlight is returned by Submit while a previous submission is unresolved.
var ErrInFlight = errors.New("contact: submission already in flight")

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("contact: form closed")

// ErrThrottled is returned by SubmitFields when the caller's allowance is used up.
var ErrThrottled = errors.New("contact: too many submissions")

// ValidationError lists the fields that blocked a submission.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return "contact: " + strings.Join(parts, "; ")
}

// Message is what a Sender delivers.
type Message struct {
	Fields map[string]string
}

// Get returns the value of a field, or "".
func (m Message) Get(name string) string {
	return m.Fields[name]
}

// SortedNames returns the field names of m in lexical order.
func (m Message) SortedNames() []string {
	names := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Sender delivers a message through an external service.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

// State is a snapshot of a Form.
type State struct {
	Fields   map[string]string `json:"fields"`
	Status   Status            `json:"status"`
	Feedback string            `json:"feedback,omitempty"`
}

// Form owns the contact form's values and submission lifecycle. It is safe for
// concurrent use; delivery resolves on its own goroutine.
type Form struct {
	sender      Sender
	fieldNames  []string
	resetDelay  time.Duration
	sendTimeout time.Duration
	successMsg  string
	failureMsg  string
	validate    *validator.Validate
	logger      *zap.Logger

	mu       sync.Mutex
	fields   map[string]string
	status   Status
	feedback string
	timer    *time.Timer
	gen      uint64
	closed   bool
}

// Option configures a Form.
type Option func(*Form)

// WithFields sets the required field names.
func WithFields(names ...string) Option {
	return func(f *Form) {
		if len(names) > 0 {
			f.fieldNames = append([]string(nil), names...)
		}
	}
}

// WithResetDelay sets how long a result stays visible before the form returns
// to Idle. Zero keeps the result until the next submission.
func WithResetDelay(d time.Duration) Option {
	return func(f *Form) { f.resetDelay = d }
}

// WithSendTimeout bounds a single delivery attempt.
func WithSendTimeout(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.sendTimeout = d
		}
	}
}

// WithMessages overrides the feedback shown on success and failure.
func WithMessages(success, failure string) Option {
	return func(f *Form) {
		if success != "" {
			f.successMsg = success
		}
		if failure != "" {
			f.failureMsg = failure
		}
	}
}

// WithValidator shares a validator between forms.
func WithValidator(v *validator.Validate) Option {
	return func(f *Form) {
		if v != nil {
			f.validate = v
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewForm returns an Idle form with every field empty.
func NewForm(sender Sender, opts ...Option) *Form {
	f := &Form{
		sender:      sender,
		fieldNames:  append([]string(nil), DefaultFields...),
		resetDelay:  DefaultResetDelay,
		sendTimeout: DefaultSendTimeout,
		successMsg:  DefaultSuccessMessage,
		failureMsg:  DefaultFailureMessage,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.validate == nil {
		f.validate = validator.New()
	}
	f.fields = make(map[string]string, len(f.fieldNames))
	for _, name := range f.fieldNames {
		f.fields[name] = ""
	}
	return f
}

// FieldNames returns the form's fields in display order.
func (f *Form) FieldNames() []string {
	return append([]string(nil), f.fieldNames...)
}

// SetField updates one field. Names outside the form are ignored.
func (f *Form) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.fields[name]; !ok {
		return
	}
	f.fields[name] = value
}

// Submit starts delivery of the current field values. It returns ErrInFlight
// while a submission is unresolved and a *ValidationError when a required field
// is empty or the email field is malformed; in both cases nothing changes.
// The returned channel is closed once delivery has resolved.
func (f *Form) Submit(ctx context.Context) (<-chan struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.admitLocked(); err != nil {
		return nil, err
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return f.startLocked(ctx), nil
}

// SubmitFields sets every form field from values and submits, holding the
// lock throughout so a concurrent caller cannot change the fields in between.
// Fields missing from values become empty. While a submission is in flight
// the fields are left untouched and ErrInFlight is returned.
//
// allow, when non-nil, is consulted only after validation passes; a false
// result returns ErrThrottled and leaves the status unchanged.
func (f *Form) SubmitFields(ctx context.Context, values map[string]string, allow func() bool) (<-chan struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.admitLocked(); err != nil {
		return nil, err
	}
	for _, name := range f.fieldNames {
		f.fields[name] = values[name]
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	if allow != nil && !allow() {
		return nil, ErrThrottled
	}
	return f.startLocked(ctx), nil
}

func (f *Form) admitLocked() error {
	if f.closed {
		return ErrClosed
	}
	if f.status == Sending {
		return ErrInFlight
	}
	return nil
}

func (f *Form) startLocked(ctx context.Context) <-chan struct{} {
	f.stopTimerLocked()
	f.gen++
	gen := f.gen
	f.status = Sending
	f.feedback = ""
	msg := Message{Fields: copyFields(f.fields)}

	done := make(chan struct{})
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.sendTimeout)
	go func() {
		defer close(done)
		defer cancel()
		var err error
		if f.sender == nil {
			err = errors.New("contact: no delivery configured")
		} else {
			err = f.sender.Send(sendCtx, msg)
		}
		f.resolve(gen, err)
	}()
	return done
}

func (f *Form) check() error {
	var verr ValidationError
	for _, name := range f.fieldNames {
		v := strings.TrimSpace(f.fields[name])
		if v == "" {
			verr.Missing = append(verr.Missing, name)
			continue
		}
		if name == "email" && f.validate.Var(v, "email") != nil {
			verr.Invalid = append(verr.Invalid, name)
		}
	}
	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return &verr
	}
	return nil
}

func (f *Form) resolve(gen uint64, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || gen != f.gen {
		return
	}
	if err != nil {
		f.logger.Warn("contact delivery failed", zap.Error(err))
		f.status = Failed
		f.feedback = f.failureMsg
	} else {
		f.logger.Info("contact message delivered", zap.Strings("fields", f.fieldNames))
		f.status = Succeeded
		f.feedback = f.successMsg
		for name := range f.fields {
			f.fields[name] = ""
		}
	}
	if f.resetDelay > 0 {
		f.timer = time.AfterFunc(f.resetDelay, func() { f.reset(gen) })
	}
}

func (f *Form) reset(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || gen != f.gen || f.status == Sending {
		return
	}
	f.status = Idle
	f.feedback = ""
	f.timer = nil
}

func (f *Form) stopTimerLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Fields:   copyFields(f.fields),
		Status:   f.status,
		Feedback: f.feedback,
	}
}

// Status returns the current lifecycle status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Close tears the form down. Deliveries and timers resolving afterwards leave
// the state untouched.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.stopTimerLocked()
}

func copyFields(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
