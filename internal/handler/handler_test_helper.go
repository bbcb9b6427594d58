package handler

import (
	"context"
	"database/sql"
	"io/fs"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/flybz/discoverair/internal/auth"
	"github.com/flybz/discoverair/internal/middleware"
	"github.com/flybz/discoverair/internal/model"
	"github.com/flybz/discoverair/internal/render"
	"github.com/flybz/discoverair/internal/store"
	"github.com/flybz/discoverair/internal/testutil"
	"github.com/flybz/discoverair/web"
)

// testDB creates a migrated temp-file database for handler tests.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)
	return db
}

// testSessionManager creates a session manager for testing.
func testSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()
	sm := scs.New()
	sm.Lifetime = 24 * time.Hour
	return sm
}

// testRenderer builds a renderer over the real embedded templates so
// handler tests exercise actual template execution.
func testRenderer(t *testing.T, sm *scs.SessionManager) *render.Renderer {
	t.Helper()

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("sub templates fs: %v", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("creating renderer: %v", err)
	}
	return renderer
}

// createTestAdmin inserts an active admin user with the given password.
func createTestAdmin(t *testing.T, db *sql.DB, email, password string) model.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	now := time.Now()
	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test Admin",
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("creating test admin: %v", err)
	}
	return user
}

// requestWithSession loads a fresh session into the request context so
// handlers can read and write flash messages.
func requestWithSession(t *testing.T, sm *scs.SessionManager, r *http.Request) *http.Request {
	t.Helper()
	ctx, err := sm.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("loading session: %v", err)
	}
	return r.WithContext(ctx)
}

// requestWithUser attaches an authenticated user to the request context.
func requestWithUser(r *http.Request, user model.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, user))
}

// scsFixture bundles a session manager with a signed-in admin so admin
// handler tests can build requests in one call.
type scsFixture struct {
	sm   *scs.SessionManager
	user model.User
}

func newSCSFixture(sm *scs.SessionManager) *scsFixture {
	return &scsFixture{
		sm:   sm,
		user: model.User{ID: 1, Email: "admin@test.local", Name: "Test Admin", Role: model.RoleAdmin, IsActive: true},
	}
}

// request loads a session and attaches the fixture admin to r.
func (f *scsFixture) request(t *testing.T, r *http.Request) *http.Request {
	t.Helper()
	return requestWithUser(requestWithSession(t, f.sm, r), f.user)
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// assertStatus checks if the response status code matches the expected value.
func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status = %d; want %d", got, want)
	}
}

// assertContains checks that body contains want.
func assertContains(t *testing.T, body, want string) {
	t.Helper()
	if !strings.Contains(body, want) {
		t.Errorf("body does not contain %q", want)
	}
}
