package store

import "context"

type containerKey struct{}

// WithContainer returns a copy of ctx that carries c.
func WithContainer(ctx context.Context, c *Container) context.Context {
	return context.WithValue(ctx, containerKey{}, c)
}

// FromContext returns the live container carried by ctx.
func FromContext(ctx context.Context) (*Container, error) {
	c, _ := ctx.Value(containerKey{}).(*Container)
	if !c.live() {
		return nil, &ScopeError{Op: "FromContext"}
	}
	return c, nil
}

// UseState returns the current state of the container carried by ctx.
func UseState(ctx context.Context) (State, error) {
	c, _ := ctx.Value(containerKey{}).(*Container)
	if !c.live() {
		return State{}, &ScopeError{Op: "UseState"}
	}
	return c.state, nil
}

// UseDispatch returns the dispatch function of the container carried by ctx.
// The returned function keeps failing with *ScopeError once the container closes.
func UseDispatch(ctx context.Context) (DispatchFunc, error) {
	c, _ := ctx.Value(containerKey{}).(*Container)
	if !c.live() {
		return nil, &ScopeError{Op: "UseDispatch"}
	}
	return c.Dispatch, nil
}
