// internal/storage/storage.go
package storage

import (
	"fmt"
	"sync"

	"go-battle-city/internal/config"

	"github.com/rs/zerolog"
)

// HighScoreStore хранилище рекорда. Пустое хранилище отдаёт 0.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// MemoryStore рекорд в памяти процесса
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score, nil
}

func (s *MemoryStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = score
	return nil
}

// Open хранилище по настройкам; при ошибке открытия базы рекорд
// живёт только в памяти
func Open(settings config.StorageSettings, logger zerolog.Logger) HighScoreStore {
	switch settings.Type {
	case "memory":
		return NewMemoryStore()
	case "sqlite", "":
		st, err := OpenSQLite(settings.Path)
		if err != nil {
			logger.Error().Err(err).Str("path", settings.Path).Msg("High score store unavailable, using memory")
			return NewMemoryStore()
		}
		return st
	}
	logger.Warn().Str("type", settings.Type).Msg("Unknown storage type, using memory")
	return NewMemoryStore()
}

// SaveIfHigher сохраняет score, только если он больше сохранённого
func SaveIfHigher(st HighScoreStore, score int) (int, error) {
	best, err := st.Load()
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	if score <= best {
		return best, nil
	}
	if err := st.Save(score); err != nil {
		return best, fmt.Errorf("save high score: %w", err)
	}
	return score, nil
}
