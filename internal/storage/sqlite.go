package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// HighScore единственная строка таблицы рекордов
type HighScore struct {
	ID        uint `gorm:"primaryKey"`
	Score     int
	UpdatedAt time.Time
}

const highScoreID = 1

// SQLiteStore рекорд в файле sqlite через gorm
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite открывает (или создаёт) базу по пути path
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	if err := db.AutoMigrate(&HighScore{}); err != nil {
		return nil, fmt.Errorf("migrate high score table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() (int, error) {
	var row HighScore
	err := s.db.First(&row, highScoreID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	return row.Score, nil
}

func (s *SQLiteStore) Save(score int) error {
	row := HighScore{ID: highScoreID, Score: score}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

// Close закрывает соединение
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
