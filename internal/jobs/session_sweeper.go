package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionEvicter удаляет простаивающие сессии
type SessionEvicter interface {
	EvictIdle(now time.Time) int
	Len() int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionSweeper периодически удаляет простаивающие сессии по cron-расписанию
type SessionSweeper struct {
	store  SessionEvicter
	cron   *cron.Cron
	now    func() time.Time
	logger Logger
}

// NewSessionSweeper создает планировщик; schedule в формате cron ("@every 5m", "*/5 * * * *")
func NewSessionSweeper(store SessionEvicter, schedule string, logger Logger) (*SessionSweeper, error) {
	s := &SessionSweeper{
		store:  store,
		cron:   cron.New(),
		now:    time.Now,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.Sweep); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *SessionSweeper) Start() {
	s.logger.Info("SessionSweeper: started")
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения текущего прохода
func (s *SessionSweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("SessionSweeper: stopped")
}

// Sweep выполняет один проход очистки
func (s *SessionSweeper) Sweep() {
	evicted := s.store.EvictIdle(s.now())
	if evicted == 0 {
		return
	}
	s.logger.Info("SessionSweeper: evicted %d idle sessions, %d remain", evicted, s.store.Len())
}
