package domain

// User identifies a task owner. Only the identifier participates in
// ownership checks; the name exists so the CLI can resolve a user.
type User struct {
	ID   int64
	Name string
}

// IsValid checks if the user has valid data.
func (u User) IsValid() bool {
	return u.Name != ""
}
