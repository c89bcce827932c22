package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

// Store хранит сессии бронирования в памяти процесса
type Store struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	idleTTL  time.Duration
	now      func() time.Time
}

// NewStore создает хранилище; сессии, простаивающие дольше idleTTL, считаются истекшими
func NewStore(idleTTL time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*domain.Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Create создает новую пустую сессию
func (s *Store) Create() *domain.Session {
	session := domain.NewSession(uuid.NewString(), s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return session
}

// Get возвращает сессию и отмечает ее использование
// Истекшая, но еще не удаленная сессия не возвращается
func (s *Store) Get(id string) (*domain.Session, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.idleTTL > 0 && session.IdleSince(now) > s.idleTTL {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	session.Touch(now)
	return session, nil
}

// EvictIdle удаляет сессии, простаивающие дольше idleTTL, и возвращает их количество
func (s *Store) EvictIdle(now time.Time) int {
	if s.idleTTL <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, session := range s.sessions {
		if session.IdleSince(now) > s.idleTTL {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len возвращает количество активных сессий
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
