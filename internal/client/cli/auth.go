package cli

import (
	"context"
	"os"

	"github.com/clausecraft/clausecraft-cli/internal/client/models"
	"github.com/clausecraft/clausecraft-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and attempts to create a new user.
// Validation failures and backend errors surface as a printed message, not
// a returned error.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (admin/lawyer/client, empty for user)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.resolver.Register(ctx, models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: string(password),
		Role:     role,
	})
	if res.OK {
		printlnFn("Registration successful, please log in")
	} else {
		printlnFn(res.Message)
	}
	return nil
}

// Login prompts for credentials and resolves them: demo-roster matches
// produce a local demo session, anything else goes to the backend.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.resolver.Login(ctx, email, password)
	if res.OK {
		s, _ := a.resolver.Session()
		printlnFn("Logged in as " + s.Name)
	} else {
		printlnFn(res.Message)
	}
	return nil
}

// Logout clears the persisted session keys. The command is idempotent.
func (a *App) Logout(ctx context.Context) error {
	if err := a.resolver.Logout(ctx); err != nil {
		return err
	}
	a.negotiation = nil
	printlnFn("Logged out")
	return nil
}
