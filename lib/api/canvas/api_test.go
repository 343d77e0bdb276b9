package canvas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pixelboard/pixelboard-go/lib"
	canvas3 "github.com/pixelboard/pixelboard-go/lib/canvas"
	"github.com/pixelboard/pixelboard-go/lib/db"
	"github.com/pixelboard/pixelboard-go/lib/settings"
	user2 "github.com/pixelboard/pixelboard-go/lib/user"
	"github.com/pixelboard/pixelboard-go/lib/utils"
)

func newTestStore(t *testing.T) *lib.InitStore {
	t.Helper()

	dataStore := db.NewMemoryDataStore()
	userManager := user2.NewManager(dataStore)
	canvasManager := canvas3.NewManager(dataStore, userManager.GetUsername)

	testSettings := settings.Settings{
		CanvasDefaults: settings.CanvasDefaults{
			Width:        25,
			Height:       25,
			EditInterval: 5,
		},
		CanvasLimits: settings.CanvasLimits{
			MaxWidth:  1000,
			MaxHeight: 1000,
			MaxTitle:  100,
		},
	}

	return &lib.InitStore{
		C:                 fiber.New(),
		RetrievedSettings: &testSettings,
		Store:             dataStore,
		CanvasManager:     canvasManager,
		UserManager:       userManager,
		Validator:         validator.New(validator.WithRequiredStructEnabled()),
		Logger:            utils.SetupLogger(),
	}
}

func createTestCanvas(t *testing.T, store *lib.InitStore) string {
	t.Helper()

	createdCanvas, err := store.CanvasManager.CreateCanvas("T", 3, 2, 5, "u.owner")
	if err != nil {
		t.Fatalf("CreateCanvas failed: %v", err)
	}
	return createdCanvas.Id
}

func TestGetOnNonExistingCanvas(t *testing.T) {
	store := newTestStore(t)
	Init(store)

	req := httptest.NewRequest("GET", "/canvases/123", nil)
	resp, _ := store.C.Test(req, 10)

	if resp.StatusCode != 404 {
		t.Errorf("Expected status code 404, got %v", resp.StatusCode)
	}
}

func TestCreateCanvas(t *testing.T) {
	store := newTestStore(t)
	Init(store)

	body, _ := json.Marshal(fiber.Map{
		"title":   "my board",
		"width":   3,
		"height":  2,
		"ownerId": "u.owner",
	})
	req := httptest.NewRequest("POST", "/canvases", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := store.C.Test(req, 10)
	if resp.StatusCode != 201 {
		t.Fatalf("Expected status code 201, got %v", resp.StatusCode)
	}

	var idResponse CanvasIDResponse
	if err := json.NewDecoder(resp.Body).Decode(&idResponse); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if idResponse.CanvasID == "" {
		t.Error("Expected a canvas id in the response")
	}

	req = httptest.NewRequest("GET", "/canvases/"+idResponse.CanvasID, nil)
	resp, _ = store.C.Test(req, 10)
	if resp.StatusCode != 200 {
		t.Errorf("Expected status code 200, got %v", resp.StatusCode)
	}
}

func TestCreateCanvasValidation(t *testing.T) {
	store := newTestStore(t)
	Init(store)

	testCases := []struct {
		name string
		body fiber.Map
		want int
	}{
		{"missing title", fiber.Map{"ownerId": "u.owner"}, 422},
		{"missing owner", fiber.Map{"title": "T"}, 422},
		{"zero width", fiber.Map{"title": "T", "ownerId": "u.owner", "width": 0}, 422},
		{"negative interval", fiber.Map{"title": "T", "ownerId": "u.owner", "editInterval": -1}, 422},
		{"oversized", fiber.Map{"title": "T", "ownerId": "u.owner", "width": 5000}, 422},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.body)
			req := httptest.NewRequest("POST", "/canvases", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := store.C.Test(req, 10)
			if resp.StatusCode != tc.want {
				t.Errorf("Expected status code %d, got %v", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestEditPixelFlow(t *testing.T) {
	store := newTestStore(t)
	Init(store)
	canvasID := createTestCanvas(t, store)

	edit := func(x int, y int, color string) int {
		body, _ := json.Marshal(fiber.Map{
			"x":      x,
			"y":      y,
			"color":  color,
			"userId": "u.2",
		})
		req := httptest.NewRequest("POST", fmt.Sprintf("/canvases/%s/pixels", canvasID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := store.C.Test(req, 10)
		return resp.StatusCode
	}

	if got := edit(1, 0, "#FF0000"); got != 200 {
		t.Fatalf("first edit: expected 200, got %d", got)
	}
	if got := edit(1, 1, "#00FF00"); got != 403 {
		t.Errorf("cooldown edit: expected 403, got %d", got)
	}
	if got := edit(9, 0, "#FF0000"); got != 400 && got != 403 {
		t.Errorf("out of bounds edit: expected rejection, got %d", got)
	}
}

func TestEditPixelOnNonExistingCanvas(t *testing.T) {
	store := newTestStore(t)
	Init(store)

	body, _ := json.Marshal(fiber.Map{
		"x": 0, "y": 0, "color": "#FF0000", "userId": "u.2",
	})
	req := httptest.NewRequest("POST", "/canvases/missing/pixels", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := store.C.Test(req, 10)
	if resp.StatusCode != 404 {
		t.Errorf("Expected status code 404, got %v", resp.StatusCode)
	}
}

func TestEditPixelInvalidColor(t *testing.T) {
	store := newTestStore(t)
	Init(store)
	canvasID := createTestCanvas(t, store)

	body, _ := json.Marshal(fiber.Map{
		"x": 0, "y": 0, "color": "red", "userId": "u.2",
	})
	req := httptest.NewRequest("POST", fmt.Sprintf("/canvases/%s/pixels", canvasID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := store.C.Test(req, 10)
	if resp.StatusCode != 400 {
		t.Errorf("Expected status code 400, got %v", resp.StatusCode)
	}
}

func TestStatisticsEndpoint(t *testing.T) {
	store := newTestStore(t)
	Init(store)
	canvasID := createTestCanvas(t, store)

	if err := store.CanvasManager.EditPixel(canvasID, 0, 0, "#FF0000", "u.2", 100); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/canvases/%s/statistics", canvasID), nil)
	resp, _ := store.C.Test(req, 10)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status code 200, got %v", resp.StatusCode)
	}

	var stats struct {
		DailyContributions []struct {
			Date  string `json:"date"`
			Count int    `json:"count"`
		} `json:"dailyContributions"`
		TopContributors []struct {
			Username      string `json:"username"`
			Contributions int    `json:"contributions"`
		} `json:"topContributors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if len(stats.DailyContributions) != 1 || stats.DailyContributions[0].Count != 1 {
		t.Errorf("unexpected daily contributions: %+v", stats.DailyContributions)
	}
	if len(stats.TopContributors) != 1 || stats.TopContributors[0].Contributions != 1 {
		t.Errorf("unexpected top contributors: %+v", stats.TopContributors)
	}
}

func TestDeleteCanvasPermissions(t *testing.T) {
	store := newTestStore(t)
	Init(store)
	canvasID := createTestCanvas(t, store)

	remove := func(requesterId string) int {
		body, _ := json.Marshal(fiber.Map{"requesterId": requesterId})
		req := httptest.NewRequest("DELETE", "/canvases/"+canvasID, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := store.C.Test(req, 10)
		return resp.StatusCode
	}

	if got := remove("u.intruder"); got != 403 {
		t.Errorf("non-owner delete: expected 403, got %d", got)
	}
	if got := remove("u.owner"); got != 200 {
		t.Errorf("owner delete: expected 200, got %d", got)
	}
	if got := remove("u.owner"); got != 404 {
		t.Errorf("delete of deleted canvas: expected 404, got %d", got)
	}
}

func TestListCanvasesRanked(t *testing.T) {
	store := newTestStore(t)
	Init(store)

	quiet, _ := store.CanvasManager.CreateCanvas("quiet", 3, 2, 0, "u.owner")
	busy, _ := store.CanvasManager.CreateCanvas("busy", 3, 2, 0, "u.owner")
	_ = quiet

	for i := 0; i < 3; i++ {
		if err := store.CanvasManager.EditPixel(busy.Id, 0, 0, "#FF0000", "u.2", int64(100+i)); err != nil {
			t.Fatalf("edit failed: %v", err)
		}
	}

	req := httptest.NewRequest("GET", "/canvases", nil)
	resp, _ := store.C.Test(req, 10)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status code 200, got %v", resp.StatusCode)
	}

	var listed []ListedCanvas
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 canvases, got %d", len(listed))
	}
	if listed[0].Title != "busy" || listed[0].TotalContributions != 3 {
		t.Errorf("expected busy canvas first, got %+v", listed[0])
	}
}
