// Package session binds a server-side session record to each browser.
//
// The cookie carries an HS256 JWT whose jti is the opaque session id; the
// record itself lives in a ports.SessionStore. A session is resolved once per
// request by Manager.Middleware and read by handlers through FromContext.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
)

const (
	DefaultCookieName = "wishlist_session"
	DefaultTTL        = 24 * time.Hour

	contextKey   = "session"
	hadCookieKey = "session_had_cookie"
)

// Options configures a Manager.
type Options struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

type Manager struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	cookie string
	secure bool
	log    zerolog.Logger
	newID  func() string
}

func NewManager(store ports.SessionStore, opts Options, log zerolog.Logger) *Manager {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	name := opts.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	return &Manager{
		store:  store,
		secret: []byte(opts.Secret),
		ttl:    ttl,
		cookie: name,
		secure: opts.Secure,
		log:    log,
		newID:  uuid.NewString,
	}
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookie
}

// Middleware resolves the request's session and persists it just before the
// response header is written. Any cookie that fails to verify or points to an
// unknown record yields a fresh anonymous session.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, hadCookie := m.resolve(c)
			Attach(c, sess)
			c.Set(hadCookieKey, hadCookie)

			c.Response().Before(func() { m.commit(c) })
			return next(c)
		}
	}
}

// Establish binds userID to a new session id, carrying over pending flashes.
// The previous record is discarded.
func (m *Manager) Establish(c echo.Context, userID int64) error {
	old := FromContext(c)
	m.discard(c, old.ID)

	sess := &domain.Session{ID: m.newID(), UserID: userID, Flashes: old.Flashes}
	if err := m.store.Save(c.Request().Context(), sess, m.ttl); err != nil {
		return err
	}
	Attach(c, sess)
	return nil
}

// Destroy deletes the current record and leaves an anonymous session in its
// place. The cookie is expired on commit.
func (m *Manager) Destroy(c echo.Context) {
	m.discard(c, FromContext(c).ID)
	Attach(c, &domain.Session{})
}

func (m *Manager) resolve(c echo.Context) (*domain.Session, bool) {
	ck, err := c.Cookie(m.cookie)
	if err != nil || ck.Value == "" {
		return &domain.Session{}, false
	}

	id, err := m.parseToken(ck.Value)
	if err != nil {
		m.log.Debug().Err(err).Msg("rejected session cookie")
		return &domain.Session{}, true
	}

	sess, err := m.store.Load(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			m.log.Warn().Err(err).Msg("session lookup failed")
		}
		return &domain.Session{}, true
	}
	return sess, true
}

func (m *Manager) commit(c echo.Context) {
	sess := FromContext(c)
	if sess.Authenticated() || len(sess.Flashes) > 0 || sess.RegistrationSuccess {
		if sess.ID == "" {
			sess.ID = m.newID()
		}
		if err := m.store.Save(c.Request().Context(), sess, m.ttl); err != nil {
			m.log.Error().Err(err).Msg("failed to save session")
			return
		}
		token, err := m.signToken(sess.ID)
		if err != nil {
			m.log.Error().Err(err).Msg("failed to sign session token")
			return
		}
		c.SetCookie(m.newCookie(token, int(m.ttl.Seconds())))
		return
	}

	if sess.ID != "" {
		m.discard(c, sess.ID)
	}
	if had, _ := c.Get(hadCookieKey).(bool); had {
		c.SetCookie(m.newCookie("", -1))
	}
}

func (m *Manager) discard(c echo.Context, id string) {
	if id == "" {
		return
	}
	if err := m.store.Delete(c.Request().Context(), id); err != nil {
		m.log.Warn().Err(err).Msg("failed to delete session")
	}
}

func (m *Manager) newCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) signToken(id string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) parseToken(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tkn.Valid {
		return "", errors.New("invalid session token")
	}
	if claims.ID == "" {
		return "", errors.New("session token missing id")
	}
	return claims.ID, nil
}

// Attach stores sess in the echo context.
func Attach(c echo.Context, sess *domain.Session) {
	c.Set(contextKey, sess)
}

// FromContext returns the request's session, or an anonymous session when
// none was attached.
func FromContext(c echo.Context) *domain.Session {
	if sess, ok := c.Get(contextKey).(*domain.Session); ok && sess != nil {
		return sess
	}
	sess := &domain.Session{}
	Attach(c, sess)
	return sess
}

func Flash(c echo.Context, category domain.FlashCategory, msg string) {
	FromContext(c).AddFlash(category, msg)
}

// PopFlashes returns and clears the pending flashes.
func PopFlashes(c echo.Context) []domain.Flash {
	return FromContext(c).PopFlashes()
}
