package store

import "fmt"

// ScopeError reports an accessor used without a live container: the
// container was never established, or it has been closed.
type ScopeError struct {
	Op string // accessor name, e.g. "UseState"
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("%s must be used within a container scope", e.Op)
}

// UnhandledCommandError reports a command whose type the reducer does not
// know. It always means a new command was added without a reducer case.
type UnhandledCommandError struct {
	Type string
}

func (e *UnhandledCommandError) Error() string {
	return fmt.Sprintf("unhandled command type: %s", e.Type)
}
