package canvas

import "fmt"

// TooSoonError rejects an edit attempted before the user's edit
// interval has elapsed. Recoverable by waiting; never logged as an
// error.
type TooSoonError struct {
	SecondsRemaining int64
}

func (e *TooSoonError) Error() string {
	return fmt.Sprintf("please wait %d seconds before editing again", e.SecondsRemaining)
}

// OutOfBoundsError rejects an edit outside the grid.
type OutOfBoundsError struct {
	X int
	Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("pixel (%d, %d) is outside the canvas", e.X, e.Y)
}

// InvalidColorError rejects a color value that is not a '#'-prefixed
// 6-hex-digit string.
type InvalidColorError struct {
	Color string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color value %q", e.Color)
}
