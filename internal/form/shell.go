package form

import (
	"sync"
	"time"
)

// Trigger identifies which dismissal gesture closed the dialog.
type Trigger string

const (
	TriggerEscape    Trigger = "escape"
	TriggerOutside   Trigger = "outside"
	TriggerCancel    Trigger = "cancel"
	TriggerAutoClose Trigger = "auto_close"
	TriggerExpired   Trigger = "expired"
)

func (t Trigger) Valid() bool {
	switch t {
	case TriggerEscape, TriggerOutside, TriggerCancel, TriggerAutoClose, TriggerExpired:
		return true
	}
	return false
}

// ScrollLock suppresses background scroll while a dialog is open.
type ScrollLock interface {
	Acquire()
	Release()
}

// NopScrollLock is the server-side stand-in where no page scroll exists.
type NopScrollLock struct{}

func (NopScrollLock) Acquire() {}
func (NopScrollLock) Release() {}

// Shell is the dialog wrapper around one open booking form. Every dismissal
// gesture (escape, outside click, explicit cancel, scheduled auto-close,
// idle expiry) funnels into the same close callback, which runs exactly once
// no matter how many triggers fire. The scroll lock is held for the open
// lifetime and released unconditionally on close, even mid-submission.
type Shell struct {
	ctrl    *Controller
	lock    ScrollLock
	onClose func(Trigger)

	mu        sync.Mutex
	timer     *time.Timer
	dismissed bool
	once      sync.Once
}

// OpenShell acquires the scroll lock and wraps the controller. onClose may
// be nil.
func OpenShell(ctrl *Controller, lock ScrollLock, onClose func(Trigger)) *Shell {
	lock.Acquire()
	return &Shell{
		ctrl:    ctrl,
		lock:    lock,
		onClose: onClose,
	}
}

// Dismiss closes the dialog. Closing never cancels an in-flight submission;
// the controller is marked dead so the late result is dropped.
func (s *Shell) Dismiss(trigger Trigger) {
	s.once.Do(func() {
		s.mu.Lock()
		s.dismissed = true
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.mu.Unlock()

		s.ctrl.Close()
		s.lock.Release()
		if s.onClose != nil {
			s.onClose(trigger)
		}
	})
}

// ScheduleClose arms the post-success auto-close. At most one timer is ever
// armed; the delay lets the user see the confirmation before the dialog
// disappears.
func (s *Shell) ScheduleClose(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dismissed || s.timer != nil {
		return
	}
	s.timer = time.AfterFunc(delay, func() {
		s.Dismiss(TriggerAutoClose)
	})
}

// CloseScheduled reports whether an auto-close timer is armed.
func (s *Shell) CloseScheduled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
