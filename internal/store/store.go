// Package store persists sections and links in a SQLite database via GORM.
package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/3-lines-studio/linkdeck/internal/core"
)

var (
	ErrSectionNotFound  = errors.New("section not found")
	ErrLinkNotFound     = errors.New("link not found")
	ErrDuplicateSection = errors.New("section name already exists")
)

type sectionModel struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Color     string `gorm:"not null;default:slate"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (sectionModel) TableName() string { return "sections" }

type linkModel struct {
	ID        int64  `gorm:"primaryKey"`
	SectionID int64  `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	URL       string `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (linkModel) TableName() string { return "links" }

type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and migrates
// the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&sectionModel{}, &linkModel{}); err != nil {
		return nil, fmt.Errorf("migrate database %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (m sectionModel) toCore() core.Section {
	return core.Section{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}

func (m linkModel) toCore() core.Link {
	return core.Link{
		ID:        m.ID,
		SectionID: m.SectionID,
		Title:     m.Title,
		URL:       m.URL,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}
