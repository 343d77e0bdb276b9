package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pixelboard/pixelboard-go/lib"
	apiError "github.com/pixelboard/pixelboard-go/lib/api/errors"
	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

type UserIDResponse struct {
	UserID string `json:"userID"`
}

func Init(store *lib.InitStore) {
	manager := store.UserManager

	store.C.Post("/users", func(c *fiber.Ctx) error {
		var request CreateUserRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}

		if err := store.Validator.Struct(request); err != nil {
			return c.Status(422).JSON(apiError.ValidationError)
		}

		createdUser, err := manager.CreateUser(request.Name)
		if err != nil {
			store.Logger.Errorw("Error creating user", "error", err)
			return c.Status(500).JSON(apiError.InternalServerError)
		}

		return c.Status(201).JSON(UserIDResponse{
			UserID: createdUser.Id.String(),
		})
	})

	store.C.Get("/users/:userId", func(c *fiber.Ctx) error {
		foundUser, err := manager.GetUser(user.Id(c.Params("userId")))
		if err != nil {
			return c.Status(404).JSON(apiError.UserNotFoundError)
		}

		return c.JSON(foundUser)
	})
}
