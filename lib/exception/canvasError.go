package exception

import "fmt"

type CanvasNotFoundError struct {
	*AppError
	CanvasId string
}

func NewCanvasNotFoundError(canvasId string) *CanvasNotFoundError {
	return &CanvasNotFoundError{
		AppError: &AppError{
			Code:    "CANVAS_NOT_FOUND",
			Message: fmt.Sprintf("canvas with id '%s' does not exist", canvasId),
		},
		CanvasId: canvasId,
	}
}
