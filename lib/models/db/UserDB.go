package db

import (
	"time"

	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

type UserDB struct {
	ID        user.Id
	Name      string
	Timestamp int64
	CreatedAt time.Time
}
