package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// Foreign keys and a busy timeout are set on every pooled connection through the DSN.
// WAL lets a Load keep reading its snapshot while a Replace commits.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the content tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL,
			headline TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			links TEXT NOT NULL DEFAULT '{}',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY,
			seq INTEGER NOT NULL UNIQUE,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			tech TEXT NOT NULL DEFAULT '[]',
			chains TEXT NOT NULL DEFAULT '[]',
			featured INTEGER NOT NULL DEFAULT 0,
			link TEXT NOT NULL DEFAULT '',
			repo TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS skills (
			group_key TEXT NOT NULL CHECK (group_key IN ('languages', 'frameworks', 'blockchain', 'tools')),
			seq INTEGER NOT NULL,
			name TEXT NOT NULL,
			level INTEGER NOT NULL CHECK (level BETWEEN 0 AND 100),
			PRIMARY KEY (group_key, seq)
		);`,
		`CREATE TABLE IF NOT EXISTS experience (
			seq INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			period TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			seq INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			position TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS certifications (
			seq INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			issuer TEXT NOT NULL DEFAULT '',
			year TEXT NOT NULL DEFAULT ''
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
