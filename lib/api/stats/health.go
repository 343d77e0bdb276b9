package stats

import (
	"github.com/gofiber/fiber/v2"
	canvas2 "github.com/pixelboard/pixelboard-go/lib/canvas"
	"github.com/pixelboard/pixelboard-go/lib/db"
)

// DBChecker reports whether the data store answers a ping.
type DBChecker struct {
	db db.DataStore
}

func (d DBChecker) Name() string {
	return "database"
}

func (d DBChecker) Check() Check {
	if err := d.db.Ping(); err != nil {
		return failing(err)
	}
	return passing("ok")
}

// CanvasChecker reports the number of stored canvases, failing when the
// manager cannot count them.
type CanvasChecker struct {
	manager *canvas2.Manager
}

func (c CanvasChecker) Name() string {
	return "canvases"
}

func (c CanvasChecker) Check() Check {
	stats, err := c.manager.GetStats()
	if err != nil {
		return failing(err)
	}
	return passing(stats.ActiveCanvases)
}

// Handler serves the health status of the service (RFC Health Check
// Draft shape). Any failing check turns the whole response into a 503.
func Handler(version string, releaseID string, serviceID string, checkers []Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		response := HealthResponse{
			Status:    StatusPass,
			Version:   version,
			ReleaseID: releaseID,
			ServiceID: serviceID,
			Checks:    make(map[string][]Check),
		}

		for _, checker := range checkers {
			check := checker.Check()
			check.Component = checker.Name()
			response.Checks[checker.Name()] = []Check{check}

			if check.Status == StatusFail {
				response.Status = StatusFail
			}
		}

		if response.Status == StatusFail {
			return c.Status(fiber.StatusServiceUnavailable).JSON(response)
		}
		return c.JSON(response)
	}
}
