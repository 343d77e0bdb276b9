package canvas

import (
	"github.com/pixelboard/pixelboard-go/lib/models/db"
	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

func FromDB(dbCanvas *db.CanvasDB) *Canvas {
	c := &Canvas{
		Id:                 dbCanvas.ID,
		Title:              dbCanvas.Title,
		Width:              dbCanvas.Width,
		Height:             dbCanvas.Height,
		Content:            dbCanvas.Content,
		CreatedAt:          dbCanvas.CreatedAt,
		EditInterval:       dbCanvas.EditInterval,
		OwnerId:            dbCanvas.OwnerId,
		LastEditTimestamps: dbCanvas.LastEditTimestamps,
		Contributions:      dbCanvas.Contributions,
	}

	if c.LastEditTimestamps == nil {
		c.LastEditTimestamps = make(map[user.Id]int64)
	}
	if c.Contributions == nil {
		c.Contributions = make(map[user.Id][]int64)
	}
	return c
}

func (c *Canvas) ToDB() db.CanvasDB {
	return db.CanvasDB{
		ID:                 c.Id,
		Title:              c.Title,
		Width:              c.Width,
		Height:             c.Height,
		Content:            c.Content,
		EditInterval:       c.EditInterval,
		OwnerId:            c.OwnerId,
		LastEditTimestamps: c.LastEditTimestamps,
		Contributions:      c.Contributions,
		CreatedAt:          c.CreatedAt,
	}
}
