// Package models defines the data shapes exchanged with the ClauseCraft
// backend and held in client state.
package models

// Mode says how the active session was established.
type Mode string

const (
	// ModeDemo is a client-only session matched against the demo roster.
	// Demo sessions never call the backend.
	ModeDemo Mode = "demo"
	// ModeLive is a session backed by a backend-issued bearer token.
	ModeLive Mode = "live"
)

// Session is the active user session. Exactly one Session is active at a
// time; it is owned by the session resolver.
type Session struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DemoAccount is a roster entry used for demo-mode credential matching.
// The Password field must never leak into a Session.
type DemoAccount struct {
	ID       int
	Name     string
	Email    string
	Password string
	Role     string
}

// Session derives a Session from the account, omitting the password.
func (a DemoAccount) Session() Session {
	return Session{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin lawyer user client"`
}

// TokenResponse is the body of a successful POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
