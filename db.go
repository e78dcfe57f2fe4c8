package weave

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// CompositeDB caches finished composites keyed by the checksums of
// their source images and the render options, so repeated requests for
// the same pair are served without re-rendering.
type CompositeDB struct {
	db *sql.DB
}

func NewCompositeDB(file string) (*CompositeDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS composite (id INTEGER PRIMARY KEY NOT NULL, key TEXT NOT NULL UNIQUE, png BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &CompositeDB{
		db: db,
	}, nil
}

func (db *CompositeDB) Close() error {
	return db.db.Close()
}

// FindComposite returns the encoded composite stored under key, or nil
// if this pair has not been rendered before.
func (db *CompositeDB) FindComposite(key string) ([]byte, error) {
	var png []byte
	switch err := db.db.QueryRow("SELECT png FROM composite WHERE key = ?", key).Scan(&png); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return png, nil
	default:
		return nil, err
	}
}

func (db *CompositeDB) AddComposite(key string, png []byte) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO composite (key, png) VALUES (?, ?)", key, png); err != nil {
		return err
	}
	return nil
}
