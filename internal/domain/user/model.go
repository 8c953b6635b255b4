package user

// Principal is the authenticated identity attached to a request after
// token introspection. It carries the team scope used by the roster
// endpoints; clubdesk never mutates it.
type Principal struct {
	UserID      string
	TeamID      string
	Email       string
	DisplayName string
}
