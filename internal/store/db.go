package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL dialect
	_ "github.com/mattn/go-sqlite3"              // SQLite driver
)

// Entry is one persisted key/value row. The whole recipe collection lives in
// a single row; the draft snapshot in another.
type Entry struct {
	Key   string `gorm:"column:key;primary_key"`
	Value string `gorm:"column:value;type:text"`
}

// TableName sets the table name for Entry
func (Entry) TableName() string {
	return "store_entries"
}

// DBStore is a Store persisted through GORM, on SQLite by default or
// PostgreSQL when configured.
type DBStore struct {
	*blobStore
	db *gorm.DB
}

// Open connects to the database, migrates the key/value table, and returns
// a ready store. Supported dialects are "sqlite3" and "postgres".
func Open(dialect, dsn string) (*DBStore, error) {
	switch dialect {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", dialect)
	}

	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}).Error; err != nil {
		db.Close()
		return nil, err
	}

	return &DBStore{
		blobStore: newBlobStore(&dbKV{db: db}),
		db:        db,
	}, nil
}

// Close closes the database connection.
func (s *DBStore) Close() error {
	return s.db.Close()
}

// dbKV adapts the GORM table to the keyValue medium.
type dbKV struct {
	db *gorm.DB
}

func (kv *dbKV) Get(key string) (string, bool, error) {
	var e Entry
	err := kv.db.Where("key = ?", key).First(&e).Error
	if gorm.IsRecordNotFoundError(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (kv *dbKV) Put(key, value string) error {
	return kv.db.
		Where(Entry{Key: key}).
		Assign(Entry{Key: key, Value: value}).
		FirstOrCreate(&Entry{}).Error
}

func (kv *dbKV) Delete(key string) error {
	return kv.db.Where("key = ?", key).Delete(Entry{}).Error
}
