package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
)

// driverName is the sqlite3 driver with the casefold() SQL function registered on every connection
const driverName = "sqlite3_recipes"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("casefold", casefold, true)
		},
	})
}

// casefold applies Unicode case folding so that search matches "CRÈME" against "crème"
func casefold(s string) string {
	return cases.Fold().String(s)
}

// DefaultTags are created on first migration
var DefaultTags = []string{
	"vegetarian", "vegan", "gluten-free", "dairy-free", "low-carb",
	"keto", "paleo", "quick", "easy", "dessert",
	"breakfast", "lunch", "dinner", "snack", "appetizer",
	"main course", "side dish", "soup", "salad", "baking",
}

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Foreign keys must be on for every pooled connection, not just the first one
	db, err := sql.Open(driverName, dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Users table
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			google_id TEXT UNIQUE NOT NULL,
			email TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			picture TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_login_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Sessions table
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			email TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			picture TEXT NOT NULL DEFAULT '',
			expires_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			last_used_at DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,

		// Recipes table
		`CREATE TABLE IF NOT EXISTS recipes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL CHECK (category IN ('breakfast', 'lunch', 'dinner', 'dessert', 'snacks', 'sides')),
			ingredients TEXT NOT NULL DEFAULT '[]',
			directions TEXT NOT NULL DEFAULT '[]',
			notes TEXT NOT NULL DEFAULT '',
			user_id TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,

		// Tags table
		`CREATE TABLE IF NOT EXISTS tags (
			id TEXT PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			created_at DATETIME NOT NULL
		)`,

		// Recipe/tag junction
		`CREATE TABLE IF NOT EXISTS recipe_tags (
			recipe_id TEXT NOT NULL,
			tag_id TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			PRIMARY KEY (recipe_id, tag_id),
			FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE,
			FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
		)`,

		// Server-side lookup used by GetRecipesByTag
		`CREATE VIEW IF NOT EXISTS recipes_by_tag AS
			SELECT r.id, r.title, r.image_url, r.category, r.ingredients, r.directions,
			       r.notes, r.user_id, r.created_at, r.rowid AS seq, t.name AS tag_name
			FROM recipes r
			JOIN recipe_tags rt ON r.id = rt.recipe_id
			JOIN tags t ON rt.tag_id = t.id`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_recipes_user ON recipes(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_created_at ON recipes(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_recipe_tags_tag ON recipe_tags(tag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	now := time.Now().UTC()
	for _, name := range DefaultTags {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO tags (id, name, created_at) VALUES (?, ?, ?)`,
			uuid.New().String(), name, now,
		); err != nil {
			return fmt.Errorf("failed to seed tag %q: %w", name, err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
