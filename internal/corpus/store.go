// Package corpus persists the card catalog and loads it back into the flat
// []cardmodel.Card slice internal/search scans.
package corpus

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/duskwarden/hemosearch/internal/cardmodel"
)

// Store wraps a GORM handle onto the cards table. All query-time reads go
// through Load, which hands the search package one flat slice; Store itself
// never runs per-request SQL, so the linear-scan evaluator stays the only
// query path.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite file at path with WAL and a busy timeout,
// and migrates the schema.
func Open(path string) (*Store, error) {
	logLevel := logger.Warn
	if v := os.Getenv("GORM_LOG_LEVEL"); v != "" {
		switch strings.ToLower(v) {
		case "silent":
			logLevel = logger.Silent
		case "error":
			logLevel = logger.Error
		case "info":
			logLevel = logger.Info
		}
	}

	dialector := sqlite.Open(path + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)")
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}

	if err := db.AutoMigrate(&row{}); err != nil {
		return nil, fmt.Errorf("corpus: migrate: %w", err)
	}

	log.Printf("corpus: opened %s", path)
	return &Store{db: db}, nil
}

// Load reads every card back into a flat slice, in primary-key order, ready
// for search.Search's linear scan.
func (s *Store) Load() ([]cardmodel.Card, error) {
	var rows []row
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("corpus: load: %w", err)
	}
	cards := make([]cardmodel.Card, 0, len(rows))
	for i := range rows {
		c, err := fromRow(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("corpus: decode row %s: %w", rows[i].ID, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Ingest upserts cards into the store, backfilling a fresh UUID onto any
// card arriving without an ID.
func (s *Store) Ingest(cards []cardmodel.Card) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i := range cards {
			c := &cards[i]
			if c.ID == "" {
				c.ID = uuid.New().String()
			}
			r, err := toRow(c)
			if err != nil {
				return fmt.Errorf("corpus: encode card %s: %w", c.ID, err)
			}
			err = tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&r).Error
			if err != nil {
				return fmt.Errorf("corpus: save card %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// Count reports how many cards are currently stored.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.Model(&row{}).Count(&n).Error
	return n, err
}
