package db

import (
	"github.com/pixelboard/pixelboard-go/lib/models/db"
	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

type CanvasMethods interface {
	DoesCanvasExist(canvasID string) (*bool, error)
	SaveCanvas(canvasID string, canvasDB db.CanvasDB) error
	GetCanvas(canvasID string) (*db.CanvasDB, error)
	GetCanvasIds() (*[]string, error)
	RemoveCanvas(canvasID string) error
}

type UserMethods interface {
	SaveUser(userDB db.UserDB) error
	GetUser(userID user.Id) (*db.UserDB, error)
}

type DataStore interface {
	CanvasMethods
	UserMethods
	Ping() error
	Close() error
}
