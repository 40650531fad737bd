package store

import (
	"log/slog"

	"github.com/idilsaglam/users/internal/logging"
)

// Observer is called with every state a Container moves to.
type Observer func(State)

// Reader is the read half of a Container.
type Reader interface {
	State() (State, error)
}

// Dispatcher is the write half of a Container.
type Dispatcher interface {
	Dispatch(cmd Command) error
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(cmd Command) error

func (f DispatchFunc) Dispatch(cmd Command) error { return f(cmd) }

// Hooks are optional callbacks fired after each dispatch.
type Hooks struct {
	OnDispatch func(cmd Command, next State)
	OnReject   func(cmd Command, err error)
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHooks installs lifecycle hooks.
func WithHooks(h Hooks) Option {
	return func(c *Container) { c.hooks = h }
}

type subscription struct {
	id int
	fn Observer
}

// Container owns the users State between New and Close.
//
// A Container is driven from a single goroutine (the UI event loop or the
// CLI); it does no locking. Observers run synchronously inside Dispatch.
type Container struct {
	state     State
	observers []subscription
	nextID    int
	closed    bool

	hooks Hooks
	log   *slog.Logger
}

// New establishes a container scope holding InitialState.
func New(opts ...Option) *Container {
	c := &Container{
		state: InitialState(),
		log:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Container) live() bool { return c != nil && !c.closed }

// State returns the current snapshot.
func (c *Container) State() (State, error) {
	if !c.live() {
		return State{}, &ScopeError{Op: "Container.State"}
	}
	return c.state, nil
}

// Dispatch reduces cmd into a new state, then notifies observers in
// subscription order before returning. A rejected command changes nothing.
func (c *Container) Dispatch(cmd Command) error {
	if !c.live() {
		return &ScopeError{Op: "Container.Dispatch"}
	}
	next, err := Reduce(c.state, cmd)
	if err != nil {
		c.log.Warn("command rejected", "type", commandType(cmd), "error", err)
		if c.hooks.OnReject != nil {
			c.hooks.OnReject(cmd, err)
		}
		return err
	}
	c.state = next
	c.log.Debug("command applied", "type", cmd.Type(), "users", next.Len())
	if c.hooks.OnDispatch != nil {
		c.hooks.OnDispatch(cmd, next)
	}
	// Copy so observers may unsubscribe while being notified.
	subs := append([]subscription(nil), c.observers...)
	for _, s := range subs {
		s.fn(next)
	}
	return nil
}

// Subscribe registers fn and returns a function that removes it.
// Subscribing to a closed container is a no-op.
func (c *Container) Subscribe(fn Observer) (unsubscribe func()) {
	if !c.live() || fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, subscription{id: id, fn: fn})
	return func() {
		for i, s := range c.observers {
			if s.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Close ends the scope. Later State and Dispatch calls fail with *ScopeError.
func (c *Container) Close() {
	if c == nil || c.closed {
		return
	}
	c.closed = true
	c.observers = nil
	c.log.Debug("container closed")
}
