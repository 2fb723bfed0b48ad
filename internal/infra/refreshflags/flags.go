// Package refreshflags хранит в Redis короткоживущие маркеры
// "данные изменились, обновись" для интерфейса администратора.
// Маркер ставится после отправки корзины, создания новедады и перехода
// статуса; интерфейс опрашивает и сбрасывает его между экранами.
// Недоступный Redis деградирует до no-op с предупреждением в логе:
// маркеры — удобство, не источник истины.
package refreshflags

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL время жизни маркера. Маркер старше этого возраста
// бесполезен: интерфейс уже перезагрузил данные сам.
const DefaultTTL = 5 * time.Minute

const keyPrefix = "refresh:"

// Известные темы маркеров
const (
	TopicAppointments = "citas"
	TopicNovelties    = "novedades"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Store хранилище маркеров обновления
type Store struct {
	rdb *redis.Client
	ttl time.Duration
	log Logger
}

// NewStore создает хранилище маркеров (DefaultTTL при нулевом ttl)
func NewStore(rdb *redis.Client, ttl time.Duration, log Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl, log: log}
}

// Set ставит маркер по теме
func (s *Store) Set(ctx context.Context, topic string) {
	if err := s.rdb.Set(ctx, keyPrefix+topic, 1, s.ttl).Err(); err != nil {
		s.log.Warn("refreshflags: failed to set flag %q: %v", topic, err)
	}
}

// Check сообщает, стоит ли маркер по теме. При недоступном Redis
// возвращает false: лишний рефреш интерфейс переживёт, ошибку — нет.
func (s *Store) Check(ctx context.Context, topic string) bool {
	n, err := s.rdb.Exists(ctx, keyPrefix+topic).Result()
	if err != nil {
		s.log.Warn("refreshflags: failed to check flag %q: %v", topic, err)
		return false
	}
	return n > 0
}

// Clear снимает маркер по теме
func (s *Store) Clear(ctx context.Context, topic string) {
	if err := s.rdb.Del(ctx, keyPrefix+topic).Err(); err != nil {
		s.log.Warn("refreshflags: failed to clear flag %q: %v", topic, err)
	}
}
