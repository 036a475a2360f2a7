package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/plasticbusters/plasticbusters/internal/dashboard"
)

// CookieName is the cookie carrying the session id.
const CookieName = "pb_session"

// Registry maps session cookies to live sessions. Sessions expire after the
// TTL and the least recently used ones are evicted beyond the size limit.
type Registry struct {
	sessions   *expirable.LRU[string, *Session]
	ttl        time.Duration
	newService func() *dashboard.Service
	logger     *slog.Logger
}

// NewRegistry creates a registry; newService builds the dashboard service of
// each new session around its own fresh store.
func NewRegistry(size int, ttl time.Duration, newService func() *dashboard.Service, logger *slog.Logger) *Registry {
	r := &Registry{
		ttl:        ttl,
		newService: newService,
		logger:     logger,
	}
	r.sessions = expirable.NewLRU[string, *Session](size, func(id string, _ *Session) {
		r.logger.Debug("session dropped", "session", id)
	}, ttl)
	return r
}

// Get returns the session of the request, starting a new one (and setting
// its cookie) when the cookie is missing, unknown or expired.
func (r *Registry) Get(w http.ResponseWriter, req *http.Request) *Session {
	if c, err := req.Cookie(CookieName); err == nil {
		if s, ok := r.sessions.Get(c.Value); ok {
			return s
		}
	}

	s := newSession(uuid.NewString(), r.newService())
	r.sessions.Add(s.ID, s)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		MaxAge:   int(r.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.logger.Debug("session started", "session", s.ID)
	return s
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}
