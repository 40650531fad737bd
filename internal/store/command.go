package store

import "github.com/idilsaglam/users/internal/model"

// Command describes an intended state change. Reduce decides what it means;
// a type Reduce does not know is rejected with *UnhandledCommandError.
type Command interface {
	Type() string
}

// TypeAppend is the type of the Append command.
const TypeAppend = "add"

// Append adds User at the end of the collection.
type Append struct {
	User model.User
}

func (Append) Type() string { return TypeAppend }

// Reduce computes the state that follows s once cmd is applied.
// s is never modified; on error s is returned as is.
func Reduce(s State, cmd Command) (State, error) {
	switch c := cmd.(type) {
	case Append:
		next := make([]model.User, len(s.users), len(s.users)+1)
		copy(next, s.users)
		return State{users: append(next, c.User)}, nil
	case *Append:
		if c == nil {
			return s, &UnhandledCommandError{Type: "<nil>"}
		}
		return Reduce(s, *c)
	default:
		return s, &UnhandledCommandError{Type: commandType(cmd)}
	}
}

func commandType(cmd Command) string {
	if cmd == nil {
		return "<nil>"
	}
	return cmd.Type()
}
