package services

import (
	"time"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Store interfaces implemented by the database package. Services depend on these
// rather than on the concrete wrapper so tests can run without postgres.

type AccountStore interface {
	CreateAccount(profile *models.Profile, settings *models.UserSettings) error
	GetProfile(id uuid.UUID) (*models.Profile, error)
	GetProfileByEmail(email string) (*models.Profile, error)
	GetProfileByUsername(username string) (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
	UpdateLastLogin(id uuid.UUID) error
	GetSettings(userID uuid.UUID) (*models.UserSettings, error)
	UpdateSettings(settings *models.UserSettings) error
	DeleteAccount(id uuid.UUID) error
}

type GameStore interface {
	GetCategoryByName(name string) (*models.GameCategory, error)
	ListCategories() ([]models.GameCategory, error)
	CreateGame(game *models.Game) error
	GetUserGame(userID, gameID uuid.UUID) (*models.Game, error)
	ListUserGames(userID uuid.UUID, categoryID *uuid.UUID, search string, limit, offset int) ([]models.Game, int64, error)
	UpdateGame(game *models.Game) error
	DeleteUserGame(userID, gameID uuid.UUID) error
}

type StatsStore interface {
	GetUserGame(userID, gameID uuid.UUID) (*models.Game, error)
	ListUserGames(userID uuid.UUID, categoryID *uuid.UUID, search string, limit, offset int) ([]models.Game, int64, error)
	UpsertGameStats(gameID uuid.UUID, payload datatypes.JSON, refreshedAt time.Time) error
	GetGameStats(gameID uuid.UUID) (*models.GameStats, error)
	GetSettings(userID uuid.UUID) (*models.UserSettings, error)
}

type ActivityStore interface {
	CreateActivity(activity *models.Activity) error
	ListUserActivity(userID uuid.UUID, limit, offset int) ([]models.Activity, int64, error)
}

type FriendStore interface {
	GetProfileByUsername(username string) (*models.Profile, error)
	GetProfile(id uuid.UUID) (*models.Profile, error)
	GetSettings(userID uuid.UUID) (*models.UserSettings, error)
	CreateFriendRequest(request *models.FriendRequest) error
	GetFriendRequest(id uuid.UUID) (*models.FriendRequest, error)
	GetFriendRequestBetween(a, b uuid.UUID) (*models.FriendRequest, error)
	ListPendingFriendRequests(userID uuid.UUID) ([]models.FriendRequest, error)
	AcceptFriendRequest(request *models.FriendRequest) error
	RejectFriendRequest(request *models.FriendRequest) error
	ListFriends(userID uuid.UUID) ([]models.Profile, error)
	RemoveFriend(userID, friendID uuid.UUID) error
}
