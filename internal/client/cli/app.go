// Package cli implements the interactive ClauseCraft terminal client.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/clausecraft/clausecraft-cli/internal/client/api"
	"github.com/clausecraft/clausecraft-cli/internal/client/config"
	"github.com/clausecraft/clausecraft-cli/internal/client/session"
	"github.com/clausecraft/clausecraft-cli/internal/client/state"
	"github.com/clausecraft/clausecraft-cli/internal/client/views"
	"github.com/clausecraft/clausecraft-cli/internal/logging"
)

// App wires the session resolver and the data views behind the REPL
// commands. One App instance serves the whole interactive session.
type App struct {
	config   *config.Config
	resolver *session.Resolver
	client   api.Client

	documents   *views.Documents
	clauses     *views.Clauses
	workflows   *views.Workflows
	negotiation *views.Negotiation

	db     *sql.DB
	log    logging.Logger
	reader *bufio.Reader
}

// NewApp opens the local state database and constructs the API client,
// resolver and views.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := state.Open(ctx, c.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("state db: %w", err)
	}

	// The resolver supplies tokens to the client that the resolver itself
	// talks through, so the token source is bound via a closure.
	var resolver *session.Resolver
	apiClient := api.NewHTTPClient(c.ServerEndpointAddr, api.WithTokenSource(
		func(ctx context.Context) string {
			if resolver == nil {
				return ""
			}
			return resolver.TokenSource()(ctx)
		}))
	resolver = session.NewResolver(apiClient, db, log)

	demoFn := resolver.DemoMode

	return &App{
		config:    c,
		resolver:  resolver,
		client:    apiClient,
		documents: views.NewDocuments(apiClient, demoFn, log),
		clauses:   views.NewClauses(apiClient, demoFn, log),
		workflows: views.NewWorkflows(apiClient, demoFn, log),
		db:        db,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.resolver.Restore(ctx)
	if s, ok := a.resolver.Session(); ok {
		printlnFn(fmt.Sprintf("Welcome back, %s (%s)", s.Name, a.resolver.Mode()))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.resolver.Session()
	return ok
}

func (a *App) status() string {
	s, ok := a.resolver.Session()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", s.Email, a.resolver.Mode())
}
