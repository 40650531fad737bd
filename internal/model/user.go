package model

// User is one entry on the users page.
// Only a display name for now; it has no identity beyond its position.
type User struct {
	Name string `json:"name"`
}
