package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create() *domain.Session
	Get(id string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type sessionKey struct{}

// SessionManager связывает подписанную cookie с сессией бронирования
type SessionManager struct {
	sc         *securecookie.SecureCookie
	store      SessionStore
	cookieName string
	logger     Logger
}

// NewSessionManager создает менеджер сессий; blockKey может быть пустым (только подпись)
func NewSessionManager(store SessionStore, cookieName string, hashKey, blockKey []byte, logger Logger) *SessionManager {
	if len(blockKey) == 0 {
		blockKey = nil
	}
	return &SessionManager{
		sc:         securecookie.New(hashKey, blockKey),
		store:      store,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Middleware кладет сессию в контекст запроса, создавая новую при отсутствии или истечении
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := m.lookup(r)
		if session == nil {
			session = m.store.Create()
			if err := m.setCookie(w, r, session.ID); err != nil {
				m.logger.Error("Session: failed to encode cookie: %v", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			m.logger.Info("Session: created session=%s", session.ID)
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

func (m *SessionManager) lookup(r *http.Request) *domain.Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return nil
	}

	var id string
	if err := m.sc.Decode(m.cookieName, cookie.Value, &id); err != nil {
		m.logger.Warn("Session: invalid cookie: %v", err)
		return nil
	}

	session, err := m.store.Get(id)
	if err != nil {
		return nil
	}
	return session
}

func (m *SessionManager) setCookie(w http.ResponseWriter, r *http.Request, id string) error {
	encoded, err := m.sc.Encode(m.cookieName, id)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return nil
}

// WithSession возвращает контекст с сессией
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession извлекает сессию из контекста
func GetSession(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return session, ok && session != nil
}
