package store

import (
	"encoding/json"
	"iter"
	"slices"

	"github.com/idilsaglam/users/internal/model"
)

// SeedName is the user every fresh container starts with.
const SeedName = "Marty McFly"

// State is an immutable snapshot of the users collection.
// Values returned by a Container are never modified afterwards, so holding
// on to an old State is safe.
type State struct {
	users []model.User
}

// InitialState returns the state a container is established with.
func InitialState() State {
	return State{users: []model.User{{Name: SeedName}}}
}

// Users returns a copy of the users in insertion order.
func (s State) Users() []model.User { return slices.Clone(s.users) }

func (s State) Len() int { return len(s.users) }

// At returns the user at position i. It panics if i is out of range.
func (s State) At(i int) model.User { return s.users[i] }

// All yields each user with its position. The sequence can be ranged over
// any number of times.
func (s State) All() iter.Seq2[int, model.User] {
	return func(yield func(int, model.User) bool) {
		for i, u := range s.users {
			if !yield(i, u) {
				return
			}
		}
	}
}

type stateJSON struct {
	Users []model.User `json:"users"`
}

func (s State) MarshalJSON() ([]byte, error) {
	users := s.users
	if users == nil {
		users = []model.User{}
	}
	return json.Marshal(stateJSON{Users: users})
}
