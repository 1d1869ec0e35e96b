package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// State is the controller's position in the submission lifecycle.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
)

var (
	// ErrSubmitInFlight rejects a second submit while one is outstanding.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	// ErrFormClosed rejects operations on a discarded controller.
	ErrFormClosed = errors.New("booking form is closed")
)

// ValidationError reports the required fields a submit attempt was missing.
// It is local and recoverable: the controller is back in Editing and no
// network call was made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Verifier yields the human-verification token for one submission attempt.
type Verifier interface {
	Token(ctx context.Context) (string, error)
}

// Notifier delivers fire-and-forget user-facing messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// SubmitFunc sends one assembled payload to the external booking endpoint.
type SubmitFunc func(ctx context.Context, payload any) error

// Config wires one controller instance to its collaborators. Submit,
// Verifier and Notifier are mandatory; OnSuccess usually schedules the
// dialog auto-close.
type Config struct {
	Draft          Draft
	PricePerUnit   float64
	Submit         SubmitFunc
	Verifier       Verifier
	Notifier       Notifier
	SuccessMessage string
	OnSuccess      func()
	Log            *zap.Logger
}

// Controller owns one booking draft and drives it through the submission
// lifecycle: Editing -> Validating -> Submitting -> Succeeded, or back to
// Editing on any failure with the draft intact.
//
// The mutex stands in for the original single event loop: one logical flow
// at a time touches the draft. A controller that has been closed applies no
// further state or notifications, so a submission resolving after close is
// inert.
type Controller struct {
	mu     sync.Mutex
	draft  Draft
	price  float64
	state  State
	closed bool

	submit     SubmitFunc
	verifier   Verifier
	notifier   Notifier
	successMsg string
	onSuccess  func()
	log        *zap.Logger
}

func NewController(cfg Config) *Controller {
	cfg.Draft.Recompute(cfg.PricePerUnit)
	return &Controller{
		draft:      cfg.Draft,
		price:      cfg.PricePerUnit,
		state:      StateEditing,
		submit:     cfg.Submit,
		verifier:   cfg.Verifier,
		notifier:   cfg.Notifier,
		successMsg: cfg.SuccessMessage,
		onSuccess:  cfg.OnSuccess,
		log:        cfg.Log.With(zap.String("component", "booking-form")),
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Apply runs an edit against the draft and recomputes the derived total, so
// the displayed cost always reflects current inputs before any submit.
func (c *Controller) Apply(edit func(Draft)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrFormClosed
	}
	if c.state == StateSubmitting {
		return ErrSubmitInFlight
	}

	edit(c.draft)
	c.draft.Recompute(c.price)
	return nil
}

// Snapshot exposes the draft for read-only presentation under the lock.
func (c *Controller) Snapshot(read func(Draft)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	read(c.draft)
}

// Submit validates the draft, fetches a verification token and sends exactly
// one request to the booking endpoint. Only one submission may be in flight
// per controller; concurrent callers get ErrSubmitInFlight.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrFormClosed
	}
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	c.state = StateValidating
	if missing := c.draft.Missing(); len(missing) > 0 {
		sort.Strings(missing)
		c.state = StateEditing
		c.mu.Unlock()
		return &ValidationError{Fields: missing}
	}

	c.draft.Recompute(c.price)
	c.state = StateSubmitting
	c.mu.Unlock()

	// A verifier failure is degraded, not fatal: the token is forwarded
	// empty and the submission proceeds.
	token, err := c.verifier.Token(ctx)
	if err != nil {
		c.log.Warn("Verification token unavailable", zap.Error(err))
		c.notifier.Error("Failed to load verification widget")
		token = ""
	}

	c.mu.Lock()
	payload := c.draft.Payload(token)
	c.mu.Unlock()

	submitErr := c.submit(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()

	// The dialog may have been dismissed while the request was in flight.
	// Its late result must not touch discarded state.
	if c.closed {
		c.log.Debug("Submission resolved after close, result dropped")
		return nil
	}

	if submitErr != nil {
		c.state = StateEditing
		c.notifier.Error(fmt.Sprintf("Booking failed: %s", submitErr.Error()))
		return fmt.Errorf("submit booking: %w", submitErr)
	}

	c.state = StateSucceeded
	c.notifier.Success(c.successMsg)
	c.draft.Reset()
	c.draft.Recompute(c.price)
	if c.onSuccess != nil {
		c.onSuccess()
	}
	return nil
}

// Close marks the controller dead. It never cancels an in-flight request;
// it only makes the eventual resolution a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
