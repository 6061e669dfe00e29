// Package notify provides a transient, auto-expiring message queue for
// user feedback. A single Center instance is owned by the application
// container and injected wherever outcomes need reporting.
package notify

import (
	"sync"
	"time"
)

// Variant classifies a notification for display purposes.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSuccess     Variant = "success"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient user-facing message.
// Fields are ordered to minimize memory padding.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
	Duration    time.Duration // 0 = never auto-dismiss
	ID          int
}

// Spec describes a notification to enqueue.
type Spec struct {
	Title       string
	Description string
	Variant     Variant
	Duration    time.Duration
}

// DefaultDuration is applied when a spec carries a negative duration.
const DefaultDuration = 5 * time.Second

// Center owns the active notification set. Identifiers increase
// monotonically; notifications keep insertion order and are never
// de-duplicated.
type Center struct {
	onChange func()
	timers   map[int]*time.Timer
	active   []Notification
	nextID   int
	mu       sync.Mutex
}

// Option configures a Center.
type Option func(*Center)

// WithChangeListener registers a callback fired whenever the active set
// changes. The UI shell uses this to trigger repaints.
func WithChangeListener(fn func()) Option {
	return func(c *Center) {
		c.onChange = fn
	}
}

// NewCenter creates an empty notification center.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		timers: make(map[int]*time.Timer),
		nextID: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify enqueues a notification and returns its identifier. Unless the
// duration is zero, removal is scheduled after it elapses.
func (c *Center) Notify(spec Spec) int {
	c.mu.Lock()

	id := c.nextID
	c.nextID++

	duration := spec.Duration
	if duration < 0 {
		duration = DefaultDuration
	}
	variant := spec.Variant
	if variant == "" {
		variant = VariantDefault
	}

	c.active = append(c.active, Notification{
		ID:          id,
		Title:       spec.Title,
		Description: spec.Description,
		Variant:     variant,
		Duration:    duration,
	})

	if duration > 0 {
		c.timers[id] = time.AfterFunc(duration, func() {
			c.Dismiss(id)
		})
	}

	listener := c.onChange
	c.mu.Unlock()

	if listener != nil {
		listener()
	}
	return id
}

// Dismiss removes the notification with the given identifier. Dismissing
// an absent identifier is a no-op, so a timer firing after an explicit
// dismissal is harmless.
func (c *Center) Dismiss(id int) {
	c.mu.Lock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}

	removed := false
	for i, n := range c.active {
		if n.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			removed = true
			break
		}
	}

	listener := c.onChange
	c.mu.Unlock()

	if removed && listener != nil {
		listener()
	}
}

// Active returns the current notifications in insertion order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.active...)
}

// Close stops all pending dismissal timers and clears the queue.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
	c.active = nil
}
