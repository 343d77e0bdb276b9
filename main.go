package main

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pixelboard/pixelboard-go/lib"
	api2 "github.com/pixelboard/pixelboard-go/lib/api"
	canvas2 "github.com/pixelboard/pixelboard-go/lib/canvas"
	settings2 "github.com/pixelboard/pixelboard-go/lib/settings"
	user2 "github.com/pixelboard/pixelboard-go/lib/user"
	"github.com/pixelboard/pixelboard-go/lib/utils"
)

func main() {
	setupLogger := utils.SetupLogger()
	defer setupLogger.Sync()

	retrievedSettings, err := settings2.ReadConfig("")
	if err != nil {
		setupLogger.Fatal("Error reading settings: " + err.Error())
		return
	}

	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())

	setupLogger.Info("Starting Pixelboard...")
	setupLogger.Info("Your Pixelboard version is " + settings2.Version)

	dataStore, err := utils.GetDB(*retrievedSettings, setupLogger)
	if err != nil {
		setupLogger.Fatal("Error connecting to database: " + err.Error())
		return
	}

	userManager := user2.NewManager(dataStore)
	canvasManager := canvas2.NewManager(dataStore, userManager.GetUsername)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	initStore := &lib.InitStore{
		C:                 app,
		RetrievedSettings: retrievedSettings,
		Store:             dataStore,
		CanvasManager:     canvasManager,
		UserManager:       userManager,
		Validator:         validatorEvaluator,
		Logger:            setupLogger,
	}

	api2.InitAPI(initStore)

	setupLogger.Infof("Listening on %s:%s", retrievedSettings.IP, retrievedSettings.Port)
	if err := app.Listen(retrievedSettings.IP + ":" + retrievedSettings.Port); err != nil {
		setupLogger.Fatal("Error starting server: " + err.Error())
	}
}
