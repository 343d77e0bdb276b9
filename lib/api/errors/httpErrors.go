package errors

import "fmt"

var InvalidRequestError = Error{
	Message: "Invalid request",
	Error:   400,
}

var CanvasNotFoundError = Error{
	Message: "Canvas not found",
	Error:   404,
}

var UserNotFoundError = Error{
	Message: "User not found",
	Error:   404,
}

var PermissionDeniedError = Error{
	Message: "Only the canvas owner may do this",
	Error:   403,
}

var InternalServerError = Error{
	Message: "Internal server error",
	Error:   500,
}

var ValidationError = Error{
	Message: "Validation failed",
	Error:   422,
}

func NewOutOfBoundsError(x int, y int) Error {
	return Error{
		Message: fmt.Sprintf("Pixel (%d, %d) is outside the canvas", x, y),
		Error:   400,
	}
}

func NewInvalidColorError(color string) Error {
	return Error{
		Message: fmt.Sprintf("Invalid color value %q, expected #RRGGBB", color),
		Error:   400,
	}
}

// NewTooSoonError mirrors the wording shown to a user who edits before
// their cooldown has elapsed, with the machine-readable remainder
// alongside.
func NewTooSoonError(secondsRemaining int64) Error {
	return Error{
		Message:          fmt.Sprintf("Please wait %d seconds before editing again.", secondsRemaining),
		Error:            403,
		SecondsRemaining: &secondsRemaining,
	}
}
