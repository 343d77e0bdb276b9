package canvas

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelboard/pixelboard-go/lib"
	apiError "github.com/pixelboard/pixelboard-go/lib/api/errors"
	"github.com/pixelboard/pixelboard-go/lib/exception"
	canvas2 "github.com/pixelboard/pixelboard-go/lib/models/canvas"
	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

// CreateCanvasRequest represents the request to create a canvas.
// Width, height and editInterval fall back to the configured defaults
// when omitted.
type CreateCanvasRequest struct {
	Title        string `json:"title" validate:"required"`
	Width        *int   `json:"width" validate:"omitempty,gt=0"`
	Height       *int   `json:"height" validate:"omitempty,gt=0"`
	EditInterval *int64 `json:"editInterval" validate:"omitempty,gte=0"`
	OwnerId      string `json:"ownerId" validate:"required"`
}

// CanvasIDResponse represents the response with a canvas ID
type CanvasIDResponse struct {
	CanvasID string `json:"canvasID"`
}

// EditPixelRequest represents the request to paint a single pixel
type EditPixelRequest struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Color  string `json:"color" validate:"required"`
	UserId string `json:"userId" validate:"required"`
}

// DeleteCanvasRequest represents the request to delete a canvas
type DeleteCanvasRequest struct {
	RequesterId string `json:"requesterId" validate:"required"`
}

// ListedCanvas is one entry of the ranked canvas listing
type ListedCanvas struct {
	Id                 string    `json:"id"`
	Title              string    `json:"title"`
	Width              int       `json:"width"`
	Height             int       `json:"height"`
	OwnerId            user.Id   `json:"ownerId"`
	CreatedAt          time.Time `json:"createdAt"`
	TotalContributions int       `json:"totalContributions"`
}

func Init(store *lib.InitStore) {
	manager := store.CanvasManager

	store.C.Post("/canvases", func(c *fiber.Ctx) error {
		var request CreateCanvasRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}

		if err := store.Validator.Struct(request); err != nil {
			return c.Status(422).JSON(apiError.ValidationError)
		}

		defaults := store.RetrievedSettings.CanvasDefaults
		limits := store.RetrievedSettings.CanvasLimits

		width := defaults.Width
		if request.Width != nil {
			width = *request.Width
		}
		height := defaults.Height
		if request.Height != nil {
			height = *request.Height
		}
		editInterval := defaults.EditInterval
		if request.EditInterval != nil {
			editInterval = *request.EditInterval
		}

		// gt=0 is skipped by omitempty when the pointer holds a zero,
		// so the dimension floor is checked here
		if width <= 0 || height <= 0 || editInterval < 0 {
			return c.Status(422).JSON(apiError.ValidationError)
		}
		if width > limits.MaxWidth || height > limits.MaxHeight || len(request.Title) > limits.MaxTitle {
			return c.Status(422).JSON(apiError.ValidationError)
		}

		createdCanvas, err := manager.CreateCanvas(request.Title, width, height, editInterval, user.Id(request.OwnerId))
		if err != nil {
			store.Logger.Errorw("Error creating canvas", "error", err)
			return c.Status(500).JSON(apiError.InternalServerError)
		}

		return c.Status(201).JSON(CanvasIDResponse{
			CanvasID: createdCanvas.Id,
		})
	})

	store.C.Get("/canvases", func(c *fiber.Ctx) error {
		canvases, err := manager.ListCanvases()
		if err != nil {
			store.Logger.Errorw("Error listing canvases", "error", err)
			return c.Status(500).JSON(apiError.InternalServerError)
		}

		var listed = make([]ListedCanvas, 0, len(canvases))
		for _, listedCanvas := range canvases {
			listed = append(listed, ListedCanvas{
				Id:                 listedCanvas.Id,
				Title:              listedCanvas.Title,
				Width:              listedCanvas.Width,
				Height:             listedCanvas.Height,
				OwnerId:            listedCanvas.OwnerId,
				CreatedAt:          listedCanvas.CreatedAt,
				TotalContributions: listedCanvas.TotalContributions(),
			})
		}
		return c.JSON(listed)
	})

	store.C.Get("/canvases/:canvasId", func(c *fiber.Ctx) error {
		foundCanvas, err := manager.GetCanvas(c.Params("canvasId"))
		if err != nil {
			return c.Status(404).JSON(apiError.CanvasNotFoundError)
		}

		return c.JSON(foundCanvas)
	})

	store.C.Post("/canvases/:canvasId/pixels", func(c *fiber.Ctx) error {
		var request EditPixelRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}

		if err := store.Validator.Struct(request); err != nil {
			return c.Status(422).JSON(apiError.ValidationError)
		}

		var now = time.Now().Unix()
		err := manager.EditPixel(c.Params("canvasId"), request.X, request.Y, request.Color, user.Id(request.UserId), now)

		if err != nil {
			var tooSoon *canvas2.TooSoonError
			var outOfBounds *canvas2.OutOfBoundsError
			var invalidColor *canvas2.InvalidColorError
			var notFound *exception.CanvasNotFoundError

			switch {
			case errors.As(err, &tooSoon):
				return c.Status(403).JSON(apiError.NewTooSoonError(tooSoon.SecondsRemaining))
			case errors.As(err, &outOfBounds):
				return c.Status(400).JSON(apiError.NewOutOfBoundsError(outOfBounds.X, outOfBounds.Y))
			case errors.As(err, &invalidColor):
				return c.Status(400).JSON(apiError.NewInvalidColorError(invalidColor.Color))
			case errors.As(err, &notFound):
				return c.Status(404).JSON(apiError.CanvasNotFoundError)
			default:
				store.Logger.Errorw("Error editing pixel", "error", err)
				return c.Status(500).JSON(apiError.InternalServerError)
			}
		}

		return c.JSON(fiber.Map{
			"message": "Pixel updated successfully!",
		})
	})

	store.C.Get("/canvases/:canvasId/statistics", func(c *fiber.Ctx) error {
		stats, err := manager.GetStatistics(c.Params("canvasId"))
		if err != nil {
			return c.Status(404).JSON(apiError.CanvasNotFoundError)
		}

		return c.JSON(stats)
	})

	store.C.Delete("/canvases/:canvasId", func(c *fiber.Ctx) error {
		var request DeleteCanvasRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}

		if err := store.Validator.Struct(request); err != nil {
			return c.Status(422).JSON(apiError.ValidationError)
		}

		err := manager.RemoveCanvas(c.Params("canvasId"), user.Id(request.RequesterId))
		if err != nil {
			var notFound *exception.CanvasNotFoundError
			var denied *exception.PermissionDeniedError

			switch {
			case errors.As(err, &notFound):
				return c.Status(404).JSON(apiError.CanvasNotFoundError)
			case errors.As(err, &denied):
				return c.Status(403).JSON(apiError.PermissionDeniedError)
			default:
				store.Logger.Errorw("Error removing canvas", "error", err)
				return c.Status(500).JSON(apiError.InternalServerError)
			}
		}

		return c.JSON(fiber.Map{
			"message": "Canvas deleted",
		})
	})
}
