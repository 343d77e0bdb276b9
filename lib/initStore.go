package lib

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	canvas2 "github.com/pixelboard/pixelboard-go/lib/canvas"
	"github.com/pixelboard/pixelboard-go/lib/db"
	"github.com/pixelboard/pixelboard-go/lib/settings"
	user2 "github.com/pixelboard/pixelboard-go/lib/user"
	"go.uber.org/zap"
)

type InitStore struct {
	C                 *fiber.App
	RetrievedSettings *settings.Settings
	Store             db.DataStore
	CanvasManager     *canvas2.Manager
	UserManager       *user2.Manager
	Validator         *validator.Validate
	Logger            *zap.SugaredLogger
}
