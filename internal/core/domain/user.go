package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the client-side view of an account. The password credential is
// write-only: it travels in the register payload and never comes back in any
// server response, so it has no place on this struct.
type User struct {
	ID        string     `json:"_id,omitempty"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
}

// Session is the client's belief about who is signed in, backed by a durable
// token. It exists only on the client.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Authenticated reports whether the session holds a token. Token presence is
// the only criterion: network reachability never changes the answer.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
