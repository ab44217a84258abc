package db

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers itself as "sqlite"; sqlx only knows the
	// placeholder style of "sqlite3" out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Connect opens the on-device database file and applies migrations.
// Pass ":memory:" for an ephemeral database.
func Connect(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	// SQLite allows a single writer; funnel everything through one
	// connection so concurrent handlers serialize instead of failing
	// with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS user (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            email TEXT,
            password TEXT
        );`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_name ON user(name);`,
		`CREATE TABLE IF NOT EXISTS message (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            content TEXT,
            sender TEXT,
            receiver TEXT,
            timestamp INTEGER,
            type TEXT,
            caption TEXT
        );`,
		`CREATE INDEX IF NOT EXISTS idx_message_pair_ts ON message(sender, receiver, timestamp);`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	log.Println("database migrations applied")
	return nil
}
