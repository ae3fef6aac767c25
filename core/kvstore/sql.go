package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"league-assets/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted blob row.
type Entry struct {
	CacheKey  string `gorm:"column:cache_key;primaryKey;size:191"`
	Payload   []byte `gorm:"column:payload"`
	UpdatedAt time.Time
}

// SQL stores blobs in a key/value table through GORM.
type SQL struct {
	db    *gorm.DB
	table string
}

// NewSQL migrates the table and checks its layout before returning the store.
func NewSQL(db *gorm.DB, table string) (*SQL, error) {
	if err := db.Table(table).AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", table, err)
	}
	if err := database.RequireColumns(db, table, "cache_key", "payload", "updated_at"); err != nil {
		return nil, err
	}
	return newSQL(db, table), nil
}

func newSQL(db *gorm.DB, table string) *SQL {
	return &SQL{db: db, table: table}
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, error) {
	var e Entry
	err := s.db.WithContext(ctx).Table(s.table).Where("cache_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return e.Payload, nil
}

func (s *SQL) Put(ctx context.Context, key string, value []byte) error {
	e := Entry{CacheKey: key, Payload: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Table(s.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Table(s.table).Where("cache_key = ?", key).Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Table(s.table).
		Where("cache_key LIKE ? ESCAPE '!'", escapeLike(prefix)+"%").
		Order("cache_key").
		Pluck("cache_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

// Close leaves the connection open; it is owned by the caller of database.Connect.
func (s *SQL) Close() error { return nil }

// escapeLike uses '!' as the escape character, valid in both MySQL and SQLite.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '!' {
			out = append(out, '!')
		}
		out = append(out, r)
	}
	return string(out)
}
