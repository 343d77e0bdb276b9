package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pixelboard/pixelboard-go/lib/models/db"
)

// scanCanvasRow maps a canvas row to its DB model. Both SQL backends
// select the same columns in the same order.
func scanCanvasRow(row *sql.Row) (*db.CanvasDB, error) {
	var canvasDB db.CanvasDB
	var content, lastEditTimestamps, contributions sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&canvasDB.ID, &canvasDB.Title, &canvasDB.Width, &canvasDB.Height, &content,
		&canvasDB.EditInterval, &canvasDB.OwnerId, &lastEditTimestamps, &contributions,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(CanvasDoesNotExistError)
		}
		return nil, err
	}

	if content.Valid {
		if err := json.Unmarshal([]byte(content.String), &canvasDB.Content); err != nil {
			return nil, fmt.Errorf("error unmarshaling content: %w", err)
		}
	}

	if lastEditTimestamps.Valid {
		if err := json.Unmarshal([]byte(lastEditTimestamps.String), &canvasDB.LastEditTimestamps); err != nil {
			return nil, fmt.Errorf("error unmarshaling last edit timestamps: %w", err)
		}
	}

	if contributions.Valid {
		if err := json.Unmarshal([]byte(contributions.String), &canvasDB.Contributions); err != nil {
			return nil, fmt.Errorf("error unmarshaling contributions: %w", err)
		}
	}

	if createdAt.Valid {
		canvasDB.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		canvasDB.UpdatedAt = &updatedAt.Time
	}

	return &canvasDB, nil
}

func scanUserRow(row *sql.Row) (*db.UserDB, error) {
	var userDB db.UserDB
	var createdAt sql.NullTime

	err := row.Scan(&userDB.ID, &userDB.Name, &userDB.Timestamp, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(UserNotFoundError)
		}
		return nil, err
	}

	if createdAt.Valid {
		userDB.CreatedAt = createdAt.Time
	}

	return &userDB, nil
}
