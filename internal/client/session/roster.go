package session

import "github.com/clausecraft/clausecraft-cli/internal/client/models"

// DefaultRoster is the fixed demo-account roster. It is immutable for the
// process lifetime and used only for credential matching; sessions derived
// from it never include the password.
var DefaultRoster = []models.DemoAccount{
	{ID: 1, Name: "John Smith", Email: "demo@clausecraft.com", Password: "demo123", Role: "admin"},
	{ID: 2, Name: "Sarah Johnson", Email: "lawyer@clausecraft.com", Password: "lawyer123", Role: "lawyer"},
	{ID: 3, Name: "Mike Davis", Email: "client@clausecraft.com", Password: "client123", Role: "client"},
}

// demoHint is appended to login failure messages so users can always find
// their way into the demo environment.
const demoHint = "Try demo credentials: demo@clausecraft.com / demo123"
