package exception

import (
	"fmt"

	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

type UserNotFoundError struct {
	*AppError
	UserId user.Id
}

func NewUserNotFoundError(userId user.Id) *UserNotFoundError {
	return &UserNotFoundError{
		AppError: &AppError{
			Code:    "USER_NOT_FOUND",
			Message: fmt.Sprintf("user with id '%s' does not exist", userId),
		},
		UserId: userId,
	}
}
