package migrations

import (
	"database/sql"
)

// GetMigrations returns all available migrations
func GetMigrations() []Migration {
	return []Migration{
		migration001InitialSchema(),
	}
}

// migration001InitialSchema creates the initial database schema
func migration001InitialSchema() Migration {
	return Migration{
		Version:     1,
		Description: "Initial schema - create canvas and user tables",
		Up: func(db *sql.DB, dialect Dialect) error {
			var queries []string

			switch dialect {
			case DialectPostgres:
				queries = getPostgresInitialSchema()
			default:
				queries = getSQLiteInitialSchema()
			}

			for _, query := range queries {
				if _, err := db.Exec(query); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func getSQLiteInitialSchema() []string {
	return []string{
		// CANVAS
		`CREATE TABLE IF NOT EXISTS canvas (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			content TEXT NOT NULL,
			edit_interval INTEGER NOT NULL DEFAULT 5,
			owner_id TEXT NOT NULL,
			last_edit_timestamps TEXT DEFAULT NULL,
			contributions TEXT DEFAULT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// APP USER
		`CREATE TABLE IF NOT EXISTS app_user (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			timestamp INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_canvas_owner ON canvas(owner_id)`,
	}
}

func getPostgresInitialSchema() []string {
	return []string{
		// CANVAS
		`CREATE TABLE IF NOT EXISTS canvas (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			content TEXT NOT NULL,
			edit_interval BIGINT NOT NULL DEFAULT 5,
			owner_id TEXT NOT NULL,
			last_edit_timestamps TEXT DEFAULT NULL,
			contributions TEXT DEFAULT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// APP USER
		`CREATE TABLE IF NOT EXISTS app_user (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			timestamp BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_canvas_owner ON canvas(owner_id)`,
	}
}
