package user

import (
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pixelboard/pixelboard-go/lib/db"
	"github.com/pixelboard/pixelboard-go/lib/exception"
)

func TestCreateAndGetUser(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore())

	name := gofakeit.Username()
	createdUser, err := manager.CreateUser(name)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if !strings.HasPrefix(createdUser.Id.String(), "u.") {
		t.Errorf("user id %q should be prefixed with 'u.'", createdUser.Id)
	}

	retrievedUser, err := manager.GetUser(createdUser.Id)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if retrievedUser.Name != name {
		t.Errorf("name = %q; want %q", retrievedUser.Name, name)
	}

	if !manager.DoesUserExist(createdUser.Id) {
		t.Error("DoesUserExist should be true for a created user")
	}
	if manager.DoesUserExist("u.missing") {
		t.Error("DoesUserExist should be false for an unknown id")
	}
}

func TestGetUserNotFound(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore())

	_, err := manager.GetUser("u.missing")
	var notFound *exception.UserNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected UserNotFoundError, got %v", err)
	}
	if notFound.UserId != "u.missing" {
		t.Errorf("UserId = %q; want u.missing", notFound.UserId)
	}
}

func TestGetUsernameFallsBackToId(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore())

	createdUser, err := manager.CreateUser("alice")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if got := manager.GetUsername(createdUser.Id); got != "alice" {
		t.Errorf("GetUsername = %q; want alice", got)
	}
	if got := manager.GetUsername("u.gone"); got != "u.gone" {
		t.Errorf("GetUsername for unknown user = %q; want the raw id", got)
	}
}
