package canvas

import (
	"regexp"
	"time"

	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

// WhiteColor is the color every cell starts with.
const WhiteColor = "#FFFFFF"

var colorRegex *regexp.Regexp

func init() {
	colorRegex, _ = regexp.Compile(`^#[0-9a-fA-F]{6}$`)
}

// IsValidColor reports whether s is a 6-hex-digit color value prefixed
// with '#', case-insensitive.
func IsValidColor(s string) bool {
	return colorRegex.MatchString(s)
}

// Canvas is a fixed-size grid of pixel colors owned by one user and
// editable by many, subject to a per-user edit interval. Content is
// row-major: Content[y][x], y indexes rows (height axis), x indexes
// columns (width axis).
//
// Every method taking a point in time receives it explicitly as epoch
// seconds instead of reading the wall clock, so the edit gate and the
// pixel mutation are deterministic functions of (state, input, now).
type Canvas struct {
	Id                 string              `json:"id"`
	Title              string              `json:"title"`
	Width              int                 `json:"width"`
	Height             int                 `json:"height"`
	Content            [][]string          `json:"content"`
	CreatedAt          time.Time           `json:"createdAt"`
	EditInterval       int64               `json:"editInterval"`
	OwnerId            user.Id             `json:"ownerId"`
	LastEditTimestamps map[user.Id]int64   `json:"lastEditTimestamps"`
	Contributions      map[user.Id][]int64 `json:"contributions"`
}

func NewCanvas(id string, title string, width int, height int, editInterval int64, ownerId user.Id, createdAt time.Time) *Canvas {
	c := &Canvas{
		Id:                 id,
		Title:              title,
		Width:              width,
		Height:             height,
		CreatedAt:          createdAt,
		EditInterval:       editInterval,
		OwnerId:            ownerId,
		LastEditTimestamps: make(map[user.Id]int64),
		Contributions:      make(map[user.Id][]int64),
	}
	c.InitializeContent()
	return c
}

// InitializeContent fills the grid with white pixels. Called once at
// creation before the canvas is usable.
func (c *Canvas) InitializeContent() {
	content := make([][]string, c.Height)
	for y := range content {
		row := make([]string, c.Width)
		for x := range row {
			row[x] = WhiteColor
		}
		content[y] = row
	}
	c.Content = content
}

// CanUserEdit reports whether userId may edit the canvas at the given
// time. A user with no recorded edit may always edit; otherwise the
// edit interval must have fully elapsed (the boundary is inclusive).
func (c *Canvas) CanUserEdit(userId user.Id, now int64) bool {
	lastEditTime, ok := c.LastEditTimestamps[userId]
	if !ok {
		return true
	}
	return now-lastEditTime >= c.EditInterval
}

// SecondsRemaining returns how long userId still has to wait before the
// next edit, clamped to zero.
func (c *Canvas) SecondsRemaining(userId user.Id, now int64) int64 {
	lastEditTime, ok := c.LastEditTimestamps[userId]
	if !ok {
		return 0
	}
	remaining := c.EditInterval - (now - lastEditTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// UpdatePixel applies a single pixel edit for userId at the given time.
// Checks run in order: edit gate, bounds, color format. On success the
// grid cell, the last-edit timestamp and the contribution history are
// all updated; on rejection nothing is touched.
func (c *Canvas) UpdatePixel(x int, y int, color string, userId user.Id, now int64) error {
	if !c.CanUserEdit(userId, now) {
		return &TooSoonError{SecondsRemaining: c.SecondsRemaining(userId, now)}
	}

	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return &OutOfBoundsError{X: x, Y: y}
	}

	if !IsValidColor(color) {
		return &InvalidColorError{Color: color}
	}

	c.Content[y][x] = color
	c.LastEditTimestamps[userId] = now
	c.Contributions[userId] = append(c.Contributions[userId], now)
	return nil
}

// Clone returns a deep copy sharing no mutable state with the receiver.
// Callers that hand a canvas across a lock boundary clone it first, so
// readers never observe a concurrent mutation.
func (c *Canvas) Clone() *Canvas {
	content := make([][]string, len(c.Content))
	for y, row := range c.Content {
		content[y] = append([]string(nil), row...)
	}

	lastEdits := make(map[user.Id]int64, len(c.LastEditTimestamps))
	for userId, timestamp := range c.LastEditTimestamps {
		lastEdits[userId] = timestamp
	}

	contributions := make(map[user.Id][]int64, len(c.Contributions))
	for userId, history := range c.Contributions {
		contributions[userId] = append([]int64(nil), history...)
	}

	clone := *c
	clone.Content = content
	clone.LastEditTimestamps = lastEdits
	clone.Contributions = contributions
	return &clone
}

// TotalContributions is the number of successful edits across all users,
// the ranking key for the canvas listing.
func (c *Canvas) TotalContributions() int {
	var total = 0
	for _, timestamps := range c.Contributions {
		total += len(timestamps)
	}
	return total
}
