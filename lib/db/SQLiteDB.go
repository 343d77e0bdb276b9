package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pixelboard/pixelboard-go/lib/db/migrations"
	"github.com/pixelboard/pixelboard-go/lib/models/db"
	"github.com/pixelboard/pixelboard-go/lib/models/user"
	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	path  string
	sqlDB *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; serialize access at the pool level.
	sqlDB.SetMaxOpenConns(1)

	migrationManager := migrations.NewMigrationManager(sqlDB, migrations.DialectSQLite)
	if err := migrationManager.Run(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &SQLiteDB{
		path:  path,
		sqlDB: sqlDB,
	}, nil
}

// ============== CANVAS METHODS ==============

func (d *SQLiteDB) SaveCanvas(canvasID string, canvasDB db.CanvasDB) error {
	content, err := json.Marshal(canvasDB.Content)
	if err != nil {
		return fmt.Errorf("error marshaling content: %w", err)
	}

	lastEditTimestamps, err := json.Marshal(canvasDB.LastEditTimestamps)
	if err != nil {
		return fmt.Errorf("error marshaling last edit timestamps: %w", err)
	}

	contributions, err := json.Marshal(canvasDB.Contributions)
	if err != nil {
		return fmt.Errorf("error marshaling contributions: %w", err)
	}

	resultedSQL, args, err := sq.
		Insert("canvas").
		Columns("id", "title", "width", "height", "content", "edit_interval",
			"owner_id", "last_edit_timestamps", "contributions", "created_at").
		Values(canvasID, canvasDB.Title, canvasDB.Width, canvasDB.Height, string(content),
			canvasDB.EditInterval, canvasDB.OwnerId, string(lastEditTimestamps),
			string(contributions), canvasDB.CreatedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			last_edit_timestamps = excluded.last_edit_timestamps,
			contributions = excluded.contributions,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d *SQLiteDB) GetCanvas(canvasID string) (*db.CanvasDB, error) {
	resultedSQL, args, err := sq.
		Select("id", "title", "width", "height", "content", "edit_interval",
			"owner_id", "last_edit_timestamps", "contributions", "created_at", "updated_at").
		From("canvas").
		Where(sq.Eq{"id": canvasID}).
		ToSql()

	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)
	return scanCanvasRow(row)
}

func (d *SQLiteDB) DoesCanvasExist(canvasID string) (*bool, error) {
	resultedSQL, args, err := sq.
		Select("COUNT(1)").
		From("canvas").
		Where(sq.Eq{"id": canvasID}).
		ToSql()

	if err != nil {
		return nil, err
	}

	var count int
	if err := d.sqlDB.QueryRow(resultedSQL, args...).Scan(&count); err != nil {
		return nil, err
	}

	exists := count > 0
	return &exists, nil
}

func (d *SQLiteDB) GetCanvasIds() (*[]string, error) {
	resultedSQL, args, err := sq.
		Select("id").
		From("canvas").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var canvasIds = make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		canvasIds = append(canvasIds, id)
	}
	return &canvasIds, rows.Err()
}

func (d *SQLiteDB) RemoveCanvas(canvasID string) error {
	resultedSQL, args, err := sq.
		Delete("canvas").
		Where(sq.Eq{"id": canvasID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New(CanvasDoesNotExistError)
	}
	return nil
}

// ============== USER METHODS ==============

func (d *SQLiteDB) SaveUser(userDB db.UserDB) error {
	resultedSQL, args, err := sq.
		Insert("app_user").
		Columns("id", "name", "timestamp").
		Values(userDB.ID, userDB.Name, userDB.Timestamp).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			timestamp = excluded.timestamp`).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d *SQLiteDB) GetUser(userID user.Id) (*db.UserDB, error) {
	resultedSQL, args, err := sq.
		Select("id", "name", "timestamp", "created_at").
		From("app_user").
		Where(sq.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)
	return scanUserRow(row)
}

func (d *SQLiteDB) Ping() error {
	return d.sqlDB.Ping()
}

func (d *SQLiteDB) Close() error {
	return d.sqlDB.Close()
}
