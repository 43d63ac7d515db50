// Package dbstore provides a SQLite-backed implementation of the store
// interfaces so items and UI state records survive service restarts.
package dbstore

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/server/store"
)

// SQLiteStore is a SQLite-backed implementation of store.Store.
type SQLiteStore struct {
	db     *gorm.DB
	dbPath string
}

// NewSQLiteStore creates a SQLite-backed store at the specified path
// and migrates the schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&ItemModel{}, &StateModel{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Items returns the item store.
func (s *SQLiteStore) Items() store.ItemStore {
	return &sqliteItemStore{db: s.db}
}

// States returns the state store.
func (s *SQLiteStore) States() store.StateStore {
	return &sqliteStateStore{db: s.db}
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type sqliteItemStore struct {
	db *gorm.DB
}

func (s *sqliteItemStore) List(query store.ListQuery) ([]listapi.Item, int, error) {
	tx := s.db.Model(&ItemModel{}).Order("id asc")
	if query.Search != "" {
		tx = tx.Where("value LIKE ? ESCAPE '\\'", "%"+escapeLike(query.Search)+"%")
	}

	var models []ItemModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}

	matched := make([]listapi.Item, 0, len(models))
	for i := range models {
		item := models[i].ToItem()
		// LIKE is case-insensitive in SQLite; re-check so both store
		// implementations share exact substring semantics.
		if store.Matches(item, query.Search) {
			matched = append(matched, item)
		}
	}

	page, total := store.OrderAndPage(matched, query)
	return page, total, nil
}

func (s *sqliteItemStore) GetByIDs(ids []int64) ([]listapi.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []ItemModel
	if err := s.db.Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("get items by id: %w", err)
	}

	byID := make(map[int64]listapi.Item, len(models))
	for i := range models {
		byID[models[i].ID] = models[i].ToItem()
	}
	items := make([]listapi.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *sqliteItemStore) Put(items []listapi.Item) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]ItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, ItemModel{ID: item.ID, Value: item.Value})
	}
	if err := s.db.Save(&models).Error; err != nil {
		return fmt.Errorf("put items: %w", err)
	}
	return nil
}

func (s *sqliteItemStore) Count() (int, error) {
	var count int64
	if err := s.db.Model(&ItemModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return int(count), nil
}

type sqliteStateStore struct {
	db *gorm.DB
}

func (s *sqliteStateStore) Get(session string) (listapi.StateRecord, bool, error) {
	var model StateModel
	err := s.db.First(&model, "session = ?", session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return listapi.StateRecord{}, false, nil
	}
	if err != nil {
		return listapi.StateRecord{}, false, fmt.Errorf("get state: %w", err)
	}
	record, err := model.ToRecord()
	if err != nil {
		return listapi.StateRecord{}, false, fmt.Errorf("decode state: %w", err)
	}
	return record, true, nil
}

func (s *sqliteStateStore) Set(session string, record listapi.StateRecord) error {
	model, err := modelFromRecord(session, record)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.db.Save(&model).Error; err != nil {
		return fmt.Errorf("set state: %w", err)
	}
	return nil
}

func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
