package exception

import "fmt"

type PermissionDeniedError struct {
	*AppError
	CanvasId string
}

func NewPermissionDeniedError(canvasId string) *PermissionDeniedError {
	return &PermissionDeniedError{
		AppError: &AppError{
			Code:    "PERMISSION_DENIED",
			Message: fmt.Sprintf("only the owner may delete canvas '%s'", canvasId),
		},
		CanvasId: canvasId,
	}
}
