package user

import (
	"time"

	"github.com/pixelboard/pixelboard-go/lib/db"
	"github.com/pixelboard/pixelboard-go/lib/exception"
	modeldb "github.com/pixelboard/pixelboard-go/lib/models/db"
	"github.com/pixelboard/pixelboard-go/lib/models/user"
	"github.com/pixelboard/pixelboard-go/lib/utils"
)

// Manager owns the user registry. The canvas core only ever sees opaque
// user ids; the manager resolves them to display names for the
// leaderboard and registers new users at the boundary.
type Manager struct {
	Db db.DataStore
}

func NewManager(db db.DataStore) *Manager {
	return &Manager{
		Db: db,
	}
}

func (m *Manager) CreateUser(name string) (*user.User, error) {
	createdUser := user.User{
		Id:        user.Id("u." + utils.RandomString(8)),
		Name:      name,
		Timestamp: time.Now().Unix(),
	}

	err := m.Db.SaveUser(modeldb.UserDB{
		ID:        createdUser.Id,
		Name:      createdUser.Name,
		Timestamp: createdUser.Timestamp,
	})
	if err != nil {
		return nil, err
	}

	return &createdUser, nil
}

func (m *Manager) GetUser(userId user.Id) (*user.User, error) {
	retrievedUser, err := m.Db.GetUser(userId)
	if err != nil {
		return nil, exception.NewUserNotFoundError(userId)
	}

	return &user.User{
		Id:        retrievedUser.ID,
		Name:      retrievedUser.Name,
		Timestamp: retrievedUser.Timestamp,
	}, nil
}

func (m *Manager) DoesUserExist(userId user.Id) bool {
	_, err := m.Db.GetUser(userId)
	return err == nil
}

// GetUsername resolves a user id to its display name, falling back to
// the raw id for users that are no longer in the registry so statistics
// stay renderable.
func (m *Manager) GetUsername(userId user.Id) string {
	retrievedUser, err := m.Db.GetUser(userId)
	if err != nil {
		return userId.String()
	}
	return retrievedUser.Name
}
