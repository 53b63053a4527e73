package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/pruebatecnica/wishlist/internal/api/session"
	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/service"
)

// ---------------------------------------------------------------------------
// In-memory stores
// ---------------------------------------------------------------------------

type memUsers struct {
	rows   []domain.User
	nextID int64
}

func (r *memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.rows {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	out := *u
	out.ID = r.nextID
	r.rows = append(r.rows, out)
	return &out, nil
}

func (r *memUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.rows {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.rows {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) ListExcept(_ context.Context, id int64) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.rows {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out, nil
}

type memItems struct {
	rows   []domain.WishlistItem
	nextID int64
}

func (r *memItems) Create(_ context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error) {
	r.nextID++
	out := *item
	out.ID = r.nextID
	out.DateAdded = time.Now().UTC()
	r.rows = append(r.rows, out)
	return &out, nil
}

func (r *memItems) FindByID(_ context.Context, id int64) (*domain.WishlistItem, error) {
	for _, item := range r.rows {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *memItems) ListByOwner(_ context.Context, owner int64) ([]domain.WishlistItem, error) {
	return r.filter(func(i domain.WishlistItem) bool { return i.AddedBy == owner }), nil
}

func (r *memItems) ListNotOwnedBy(_ context.Context, owner int64) ([]domain.WishlistItem, error) {
	return r.filter(func(i domain.WishlistItem) bool { return i.AddedBy != owner }), nil
}

func (r *memItems) Delete(_ context.Context, id int64) error {
	for i, item := range r.rows {
		if item.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (r *memItems) filter(keep func(domain.WishlistItem) bool) []domain.WishlistItem {
	var out []domain.WishlistItem
	for _, item := range r.rows {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

type memSessions struct {
	records map[string]domain.Session
}

func (s *memSessions) Load(_ context.Context, id string) (*domain.Session, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &rec, nil
}

func (s *memSessions) Save(_ context.Context, sess *domain.Session, _ time.Duration) error {
	s.records[sess.ID] = *sess
	return nil
}

func (s *memSessions) Delete(_ context.Context, id string) error {
	delete(s.records, id)
	return nil
}

// ---------------------------------------------------------------------------
// Browser helper
// ---------------------------------------------------------------------------

type app struct {
	e     *echo.Echo
	users *memUsers
	items *memItems
}

func newApp() *app {
	users := &memUsers{}
	items := &memItems{}
	log := zerolog.Nop()

	e := NewRouter(Services{
		Auth:     service.NewAuthService(users, nil, log),
		Wishlist: service.NewWishlistService(users, items, nil, log),
		Sessions: &memSessions{records: make(map[string]domain.Session)},
	}, Options{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		Logger:        log,
		Registry:      prometheus.NewRegistry(),
	})
	return &app{e: e, users: users, items: items}
}

// browser keeps the session cookie between requests and never follows
// redirects.
type browser struct {
	t      *testing.T
	app    *app
	cookie *http.Cookie
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	rec := httptest.NewRecorder()
	b.app.e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name != session.DefaultCookieName {
			continue
		}
		if ck.MaxAge < 0 {
			b.cookie = nil
		} else {
			b.cookie = &http.Cookie{Name: ck.Name, Value: ck.Value}
		}
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return b.do(req)
}

func expectLocation(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != want {
		t.Fatalf("expected redirect to %q, got %q", want, got)
	}
}

func expectBody(t *testing.T, rec *httptest.ResponseRecorder, wants ...string) {
	t.Helper()
	body := rec.Body.String()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body:\n%s", want, body)
		}
	}
}

func register(b *browser, name, username, password string) *httptest.ResponseRecorder {
	return b.post("/register", url.Values{
		"name":       {name},
		"username":   {username},
		"password":   {password},
		"date_hired": {time.Now().Format(domain.HireDateLayout)},
	})
}

func login(b *browser, username, password string) *httptest.ResponseRecorder {
	return b.post("/login", url.Values{"username": {username}, "password": {password}})
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRouter_WishlistWalkthrough(t *testing.T) {
	a := newApp()
	alice := &browser{t: t, app: a}
	bob := &browser{t: t, app: a}

	// Alice registers, is sent to login, and sees the success message there.
	expectLocation(t, register(alice, "Alice", "alice1", "password123"), "/login")
	expectBody(t, alice.get("/login"), "Registration successful! Please log in.", "Your account is ready")

	expectLocation(t, login(alice, "alice1", "password123"), "/")
	expectBody(t, alice.get("/"), "Login successful!", "Welcome, Alice")

	expectLocation(t, alice.post("/add_item", url.Values{"item_name": {"Bicycle"}}), "/")
	expectBody(t, alice.get("/"), "Item added successfully.", "Bicycle")
	bicycle := a.items.rows[0]

	expectLocation(t, alice.get("/logout"), "/login")
	if alice.cookie != nil {
		t.Fatalf("logout must expire the session cookie")
	}

	// Bob joins and copies Alice's item.
	expectLocation(t, register(bob, "Bob", "bob2002", "password456"), "/login")
	expectLocation(t, login(bob, "bob2002", "password456"), "/")
	expectBody(t, bob.get("/"), "Welcome, Bob", "alice1", "/add_wishlist_item/1")

	expectLocation(t, bob.get("/add_wishlist_item/1"), "/")
	expectBody(t, bob.get("/"), "Item added to your wishlist successfully.")
	if len(a.items.rows) != 2 || a.items.rows[1].AddedBy != 2 || a.items.rows[1].Name != "Bicycle" {
		t.Fatalf("expected one copied record owned by bob, got %+v", a.items.rows)
	}
	if a.items.rows[0] != bicycle {
		t.Fatalf("source item must be unchanged")
	}
	bobsCopy := a.items.rows[1]

	expectBody(t, bob.get("/item_details/1"), "Bicycle", "alice1")

	// Bob cannot delete Alice's item.
	expectLocation(t, bob.get("/remove_wishlist_item/1"), "/")
	expectBody(t, bob.get("/"), "You do not have permission to delete this item.")
	if len(a.items.rows) != 2 {
		t.Fatalf("forbidden delete must not remove anything")
	}

	// Copying his own item is a no-op.
	expectLocation(t, bob.get("/add_wishlist_item/2"), "/")
	expectBody(t, bob.get("/"), "This item is already in your wishlist.")
	if len(a.items.rows) != 2 {
		t.Fatalf("copying an owned item must not create a record")
	}

	expectLocation(t, bob.get("/add_wishlist_item/99"), "/")
	expectBody(t, bob.get("/"), "Item does not exist.")

	// Bob removes his copy; a second attempt is a 404.
	expectLocation(t, bob.get("/remove_wishlist_item/2"), "/")
	expectBody(t, bob.get("/"), "Item removed successfully.")
	for _, row := range a.items.rows {
		if row.ID == bobsCopy.ID {
			t.Fatalf("bob's copy must be deleted")
		}
	}
	if rec := bob.get("/remove_wishlist_item/2"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestRouter_RegistrationRulesInOrder(t *testing.T) {
	a := newApp()
	b := &browser{t: t, app: a}

	expectLocation(t, register(b, "Short", "ab", "1234567"), "/register")
	expectBody(t, b.get("/register"), "Password must be at least 8 characters long.")

	expectLocation(t, register(b, "Long", "long1", strings.Repeat("p", 80)), "/register")
	expectBody(t, b.get("/register"), "Password must be at most 72 bytes long.")

	expectLocation(t, register(b, "Short", "abc", "password123"), "/register")
	expectBody(t, b.get("/register"), "Username must be at least 4 characters long.")

	rec := b.post("/register", url.Values{
		"name": {"Late"}, "username": {"late1"}, "password": {"password123"}, "date_hired": {"1999-01-01"},
	})
	expectLocation(t, rec, "/register")
	expectBody(t, b.get("/register"), "Hire date must be today")

	if len(a.users.rows) != 0 {
		t.Fatalf("no user must be persisted, got %d", len(a.users.rows))
	}
}

func TestRouter_LoginFailuresShareMessage(t *testing.T) {
	a := newApp()
	b := &browser{t: t, app: a}
	register(b, "Alice", "alice1", "password123")

	for _, creds := range [][2]string{{"alice1", "wrong-password"}, {"nobody", "password123"}} {
		rec := login(b, creds[0], creds[1])
		if rec.Code != http.StatusOK {
			t.Fatalf("expected login form, got %d", rec.Code)
		}
		expectBody(t, rec, "Incorrect username or password. Please try again.")
	}
	expectLocation(t, b.get("/"), "/login")
}

func TestRouter_ProtectedRoutesRequireLogin(t *testing.T) {
	a := newApp()

	for _, path := range []string{"/add_item", "/add_wishlist_item/1", "/item_details/1", "/remove_wishlist_item/1", "/logout"} {
		b := &browser{t: t, app: a}
		expectLocation(t, b.get(path), "/login")
		expectBody(t, b.get("/login"), "Please log in to access this page.")
	}
}

func TestRouter_NotFoundPages(t *testing.T) {
	a := newApp()
	b := &browser{t: t, app: a}
	register(b, "Alice", "alice1", "password123")
	login(b, "alice1", "password123")

	for _, path := range []string{"/item_details/42", "/item_details/abc", "/remove_wishlist_item/x", "/no/such/page"} {
		rec := b.get(path)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
	}
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	a := newApp()
	b := &browser{t: t, app: a}

	if rec := b.get("/health"); rec.Code != http.StatusOK {
		t.Fatalf("/health: expected 200, got %d", rec.Code)
	}
	if rec := b.get("/health/ready"); rec.Code != http.StatusOK {
		t.Fatalf("/health/ready: expected 200, got %d", rec.Code)
	}

	b.get("/login")
	rec := b.get("/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics: expected 200, got %d", rec.Code)
	}
	expectBody(t, rec, "requests_total")
}
