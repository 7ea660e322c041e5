// Package session implements the client session resolver: it restores a
// persisted session at startup, performs login/register/logout with
// demo-account short-circuiting, and gates every protected view.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/clausecraft/clausecraft-cli/internal/client/api"
	"github.com/clausecraft/clausecraft-cli/internal/client/models"
	"github.com/clausecraft/clausecraft-cli/internal/client/state"
	"github.com/clausecraft/clausecraft-cli/internal/common"
	"github.com/clausecraft/clausecraft-cli/internal/dbx"
	"github.com/clausecraft/clausecraft-cli/internal/logging"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Result is the structured outcome of login and register. Credential
// failures never surface as Go errors; they resolve to OK=false with a
// user-facing message.
type Result struct {
	OK      bool
	Message string
}

// Resolver owns the single active Session and the three persisted keys
// (token, demoMode, demoUser). It is constructed explicitly and passed to
// views; there is no ambient singleton.
type Resolver struct {
	client api.Client
	db     *sql.DB
	roster []models.DemoAccount
	log    logging.Logger

	mu      sync.RWMutex
	session *models.Session
	mode    models.Mode
	loading bool
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithRoster replaces the demo roster (tests).
func WithRoster(roster []models.DemoAccount) ResolverOption {
	return func(r *Resolver) { r.roster = roster }
}

// NewResolver builds a Resolver over the API client and the local state
// database. Loading stays true until Restore completes.
func NewResolver(client api.Client, db *sql.DB, log logging.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client:  client,
		db:      db,
		roster:  DefaultRoster,
		log:     log,
		loading: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) store() state.Store {
	return state.NewSQLiteStore(r.db)
}

// TokenSource exposes the persisted bearer token to the API client. Demo
// sessions have no token, so demo mode never authenticates against the
// backend.
func (r *Resolver) TokenSource() api.TokenSource {
	return func(ctx context.Context) string {
		tok, err := r.store().Get(ctx, state.KeyToken)
		if err != nil {
			return ""
		}
		return string(tok)
	}
}

// Session returns the active session, if any.
func (r *Resolver) Session() (models.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.session == nil {
		return models.Session{}, false
	}
	return *r.session, true
}

// Mode reports how the active session was established. It is empty while
// no session exists.
func (r *Resolver) Mode() models.Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mode
}

// DemoMode reports whether the active session is a demo session.
func (r *Resolver) DemoMode() bool {
	return r.Mode() == models.ModeDemo
}

// Loading reports whether Restore has finished. Protected views block on
// this flag before rendering.
func (r *Resolver) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// DemoAccounts returns the roster entries minus passwords, for display.
func (r *Resolver) DemoAccounts() []models.Session {
	out := make([]models.Session, len(r.roster))
	for i, a := range r.roster {
		out[i] = a.Session()
	}
	return out
}

func (r *Resolver) adopt(s models.Session, mode models.Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = &s
	r.mode = mode
}

func (r *Resolver) empty() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	r.mode = ""
}

func (r *Resolver) doneLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
}

// Restore resolves the persisted state into exactly one of {empty, demo,
// live} and flips Loading to false exactly once. A failed profile fetch is
// treated as session expiry: the token is discarded silently and the
// session stays empty.
func (r *Resolver) Restore(ctx context.Context) {
	defer r.doneLoading()

	st := r.store()

	demoMode, err := st.Get(ctx, state.KeyDemoMode)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		r.log.Error(ctx, "reading demo flag", "err", err)
		return
	}

	if string(demoMode) == "true" {
		raw, err := st.Get(ctx, state.KeyDemoUser)
		if err != nil {
			if !errors.Is(err, common.ErrNotFound) {
				r.log.Error(ctx, "reading demo user", "err", err)
			}
			return
		}
		var s models.Session
		if err := json.Unmarshal(raw, &s); err != nil {
			r.log.Warn(ctx, "persisted demo user unreadable, dropping", "err", err)
			_ = st.Delete(ctx, state.KeyDemoUser)
			return
		}
		r.adopt(s, models.ModeDemo)
		r.log.Info(ctx, "session restored", "mode", models.ModeDemo, "email", s.Email)
		return
	}

	tok, err := st.Get(ctx, state.KeyToken)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			r.log.Error(ctx, "reading token", "err", err)
		}
		return
	}

	if tokenExpired(string(tok)) {
		r.log.Info(ctx, "persisted token expired, dropping")
		_ = st.Delete(ctx, state.KeyToken)
		return
	}

	s, err := r.client.Profile(ctx)
	if err != nil {
		// Session expired: silent logout, no user-visible error.
		r.log.Info(ctx, "profile fetch failed, dropping token", "err", err)
		_ = st.Delete(ctx, state.KeyToken)
		return
	}

	r.adopt(s, models.ModeLive)
	r.log.Info(ctx, "session restored", "mode", models.ModeLive, "email", s.Email)
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the backend's job. Unparsable tokens are not
// treated as expired and still get one profile attempt.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(timeNow())
}

// Login resolves credentials against the demo roster first; only on no
// match does it consult the backend. All failure paths resolve to a
// structured Result, never a panic or a surfaced Go error for bad
// credentials.
func (r *Resolver) Login(ctx context.Context, email string, password []byte) Result {
	for _, acc := range r.roster {
		if acc.Email == email && acc.Password == string(password) {
			return r.adoptDemo(ctx, acc)
		}
	}

	tok, err := r.client.Login(ctx, email, password)
	if err != nil {
		return Result{OK: false, Message: loginFailureMessage(err)}
	}

	st := r.store()
	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		s := state.NewSQLiteStore(tx)
		if err := s.Set(ctx, state.KeyToken, []byte(tok.AccessToken)); err != nil {
			return err
		}
		return s.Set(ctx, state.KeyDemoMode, []byte("false"))
	})
	if err != nil {
		return Result{OK: false, Message: fmt.Sprintf("saving session failed: %v", err)}
	}

	// Populate the session the same way Restore does. A profile failure
	// drops the token but the login itself still reports success, matching
	// the product's original behavior.
	s, err := r.client.Profile(ctx)
	if err != nil {
		r.log.Warn(ctx, "profile fetch after login failed", "err", err)
		_ = st.Delete(ctx, state.KeyToken)
		return Result{OK: true}
	}

	r.adopt(s, models.ModeLive)
	r.log.Info(ctx, "logged in", "mode", models.ModeLive, "email", s.Email)
	return Result{OK: true}
}

func (r *Resolver) adoptDemo(ctx context.Context, acc models.DemoAccount) Result {
	s := acc.Session()
	raw, err := json.Marshal(s)
	if err != nil {
		return Result{OK: false, Message: fmt.Sprintf("saving session failed: %v", err)}
	}

	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := state.NewSQLiteStore(tx)
		if err := st.Set(ctx, state.KeyDemoMode, []byte("true")); err != nil {
			return err
		}
		return st.Set(ctx, state.KeyDemoUser, raw)
	})
	if err != nil {
		return Result{OK: false, Message: fmt.Sprintf("saving session failed: %v", err)}
	}

	r.adopt(s, models.ModeDemo)
	r.log.Info(ctx, "logged in", "mode", models.ModeDemo, "email", s.Email)
	return Result{OK: true}
}

func loginFailureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail + ". " + demoHint
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return "Incorrect email or password. " + demoHint
	}
	return "Login failed. " + demoHint
}

// Register creates an account on the backend. It validates the payload
// locally first, so malformed requests never reach the network, and it
// does not authenticate the new user.
func (r *Resolver) Register(ctx context.Context, req models.RegisterRequest) Result {
	if err := validate.Struct(req); err != nil {
		return Result{OK: false, Message: registerValidationMessage(err)}
	}

	if _, err := r.client.Register(ctx, req); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			return Result{OK: false, Message: apiErr.Detail}
		}
		return Result{OK: false, Message: "Registration failed - API not available"}
	}
	return Result{OK: true}
}

func registerValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "email":
			return "Please enter a valid email address"
		case "min":
			return "Password must be at least 6 characters"
		default:
			return fmt.Sprintf("%s is required", verrs[0].Field())
		}
	}
	return "Invalid registration data"
}

// Logout clears the persisted token, demo flag and demo user, and empties
// the session. It is idempotent and safe to call without an active
// session.
func (r *Resolver) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := state.NewSQLiteStore(tx)
		for _, key := range []string{state.KeyToken, state.KeyDemoMode, state.KeyDemoUser} {
			if err := st.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clearing session state: %w", err)
	}

	r.empty()
	r.log.Info(ctx, "logged out")
	return nil
}
