package db

import (
	"time"

	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

type CanvasDB struct {
	ID                 string
	Title              string
	Width              int
	Height             int
	Content            [][]string
	EditInterval       int64
	OwnerId            user.Id
	LastEditTimestamps map[user.Id]int64
	Contributions      map[user.Id][]int64
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
