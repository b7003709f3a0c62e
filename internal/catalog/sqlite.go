/*
Package catalog: SQLite-backed implementation of DataProvider and Recorder.

The database uses modernc.org/sqlite (pure Go, CGo-free) with a versioned
migration table. The six canonical roles are seeded by the initial migration.
*/
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteProvider implements DataProvider and Recorder using SQLite.
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
	logger zerolog.Logger
	mu     sync.Mutex
}

// canonicalRoles are seeded by the initial migration. Role IDs are stable
// so interaction rows can reference them across rebuilds.
var canonicalRoles = []Role{
	{ID: "role-frontend", Name: "frontend"},
	{ID: "role-backend", Name: "backend"},
	{ID: "role-qa", Name: "qa"},
	{ID: "role-designer", Name: "designer"},
	{ID: "role-pm", Name: "pm"},
	{ID: "role-owner", Name: "owner"},
}

// OpenSQLite opens (or creates) the catalog database at path and runs
// migrations.
func OpenSQLite(path string, logger zerolog.Logger) (*SQLiteProvider, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &SQLiteProvider{
		db:     db,
		dbPath: path,
		logger: logger.With().Str("component", "catalog").Logger(),
	}

	if err := p.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return p, nil
}

// Close closes the database connection.
func (p *SQLiteProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	p.db = nil
	return nil
}

// migration represents a single database migration.
type migration struct {
	version int
	name    string
	up      func() error
}

// runMigrations executes database schema migrations in order.
func (p *SQLiteProvider) runMigrations() error {
	if err := p.createMigrationsTable(); err != nil {
		return err
	}

	version, err := p.currentMigrationVersion()
	if err != nil {
		return err
	}

	migrations := []migration{
		{version: 1, name: "initial_schema", up: p.migration001InitialSchema},
		{version: 2, name: "seed_roles", up: p.migration002SeedRoles},
	}

	for _, m := range migrations {
		if version >= m.version {
			continue
		}
		p.logger.Debug().Int("version", m.version).Str("name", m.name).Msg("running migration")
		if err := m.up(); err != nil {
			return fmt.Errorf("migration %d failed: %w", m.version, err)
		}
		if err := p.setMigrationVersion(m.version, m.name); err != nil {
			return err
		}
	}

	return nil
}

func (p *SQLiteProvider) createMigrationsTable() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	return err
}

func (p *SQLiteProvider) currentMigrationVersion() (int, error) {
	row := p.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")

	var version int
	if err := row.Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func (p *SQLiteProvider) setMigrationVersion(version int, name string) error {
	_, err := p.db.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", version, name)
	return err
}

// migration001InitialSchema creates the tools, roles and interactions tables.
func (p *SQLiteProvider) migration001InitialSchema() error {
	if _, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS tools (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			detailed_description TEXT NOT NULL DEFAULT '',
			categories TEXT NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT 'pending',
			suggested_role TEXT NOT NULL DEFAULT '',
			submitted_by TEXT NOT NULL DEFAULT '',
			website_url TEXT NOT NULL DEFAULT '',
			api_endpoint TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create tools table: %w", err)
	}

	if _, err := p.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tools_status ON tools(status)
	`); err != nil {
		return fmt.Errorf("failed to create tools status index: %w", err)
	}

	if _, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS roles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)
	`); err != nil {
		return fmt.Errorf("failed to create roles table: %w", err)
	}

	if _, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS interactions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			tool_id TEXT NOT NULL DEFAULT '',
			user_role TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			rating INTEGER NOT NULL DEFAULT 0,
			session_duration INTEGER NOT NULL DEFAULT 0,
			occurred_at TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create interactions table: %w", err)
	}

	if _, err := p.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_interactions_user
		ON interactions(user_id, occurred_at DESC)
	`); err != nil {
		return fmt.Errorf("failed to create interactions user index: %w", err)
	}

	if _, err := p.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_interactions_tool
		ON interactions(tool_id, occurred_at DESC)
	`); err != nil {
		return fmt.Errorf("failed to create interactions tool index: %w", err)
	}

	return nil
}

// migration002SeedRoles inserts the six canonical roles.
func (p *SQLiteProvider) migration002SeedRoles() error {
	for _, r := range canonicalRoles {
		if _, err := p.db.Exec(
			"INSERT OR IGNORE INTO roles (id, name) VALUES (?, ?)",
			r.ID, r.Name,
		); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", r.Name, err)
		}
	}
	return nil
}
