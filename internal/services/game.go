package services

import (
	"errors"
	"strings"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// gameSuggestions is the curated autocomplete list shipped with the app.
var gameSuggestions = []string{
	"League of Legends", "Rainbow Six Siege", "Valorant",
	"Counter-Strike 2", "Dota 2", "World of Warcraft",
	"Final Fantasy XIV", "Overwatch 2", "Apex Legends",
	"Call of Duty: Modern Warfare", "Rocket League",
}

type GameService struct {
	store    GameStore
	activity ActivityStore
}

func NewGameService(store GameStore, activity ActivityStore) *GameService {
	return &GameService{store: store, activity: activity}
}

type GameInput struct {
	Name     string
	Category string
	Username string
}

// AddGame registers a tracked game for the owner. The (owner, name, handle) triple
// is unique; under concurrent duplicate adds the database constraint guarantees
// exactly one winner and the loser surfaces ErrDuplicateGame.
func (s *GameService) AddGame(userID uuid.UUID, in GameInput) (*models.Game, error) {
	name := NormalizeGameName(in.Name)
	handle := strings.TrimSpace(in.Username)
	if len(name) < 2 || len(handle) < 2 || in.Category == "" {
		return nil, ErrInvalidInput
	}

	category, err := s.store.GetCategoryByName(in.Category)
	if err != nil {
		return nil, translateNotFound(err)
	}

	game := &models.Game{
		UserID:     userID,
		CategoryID: category.ID,
		Name:       name,
		Username:   handle,
	}
	if err := s.store.CreateGame(game); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateGame
		}
		return nil, err
	}
	game.Category = *category

	s.logGameActivity(userID, models.ActivityGameAdded, "Added "+name, game.ID)
	return game, nil
}

type GameFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

func (s *GameService) ListGames(userID uuid.UUID, filter GameFilter) ([]models.Game, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	var categoryID *uuid.UUID
	if filter.Category != "" {
		category, err := s.store.GetCategoryByName(filter.Category)
		if err != nil {
			return nil, 0, translateNotFound(err)
		}
		categoryID = &category.ID
	}
	return s.store.ListUserGames(userID, categoryID, filter.Search, filter.Limit, filter.Offset)
}

func (s *GameService) GetGame(userID, gameID uuid.UUID) (*models.Game, error) {
	game, err := s.store.GetUserGame(userID, gameID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return game, nil
}

type GameUpdate struct {
	Name     *string
	Category *string
	Username *string
}

// UpdateGame applies a partial update, re-checking the duplicate triple.
func (s *GameService) UpdateGame(userID, gameID uuid.UUID, update GameUpdate) (*models.Game, error) {
	game, err := s.store.GetUserGame(userID, gameID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if update.Name != nil {
		name := NormalizeGameName(*update.Name)
		if len(name) < 2 {
			return nil, ErrInvalidInput
		}
		game.Name = name
	}
	if update.Username != nil {
		handle := strings.TrimSpace(*update.Username)
		if len(handle) < 2 {
			return nil, ErrInvalidInput
		}
		game.Username = handle
	}
	if update.Category != nil {
		category, err := s.store.GetCategoryByName(*update.Category)
		if err != nil {
			return nil, translateNotFound(err)
		}
		game.CategoryID = category.ID
		game.Category = *category
	}

	if err := s.store.UpdateGame(game); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateGame
		}
		return nil, err
	}
	return game, nil
}

// RemoveGame deletes an owner's game together with its stats snapshot.
func (s *GameService) RemoveGame(userID, gameID uuid.UUID) error {
	game, err := s.store.GetUserGame(userID, gameID)
	if err != nil {
		return translateNotFound(err)
	}
	if err := s.store.DeleteUserGame(userID, gameID); err != nil {
		return translateNotFound(err)
	}
	s.logGameActivity(userID, models.ActivityGameRemoved, "Removed "+game.Name, gameID)
	return nil
}

func (s *GameService) ListCategories() ([]models.GameCategory, error) {
	return s.store.ListCategories()
}

// Suggestions returns autocomplete matches for a partial game name.
func (s *GameService) Suggestions(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []string{}
	}
	matches := []string{}
	for _, name := range gameSuggestions {
		if strings.Contains(strings.ToLower(name), query) {
			matches = append(matches, name)
		}
	}
	if len(matches) > 10 {
		matches = matches[:10]
	}
	return matches
}

// NormalizeGameName trims and title-cases a game name so duplicates differing only
// in casing collapse onto one spelling.
func NormalizeGameName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if len(w) > 1 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		} else {
			words[i] = strings.ToUpper(w)
		}
	}
	return strings.Join(words, " ")
}

func (s *GameService) logGameActivity(userID uuid.UUID, activityType, title string, gameID uuid.UUID) {
	metadata := datatypes.JSON([]byte(`{"game_id":"` + gameID.String() + `"}`))
	err := s.activity.CreateActivity(&models.Activity{
		UserID:   userID,
		Type:     activityType,
		Title:    title,
		Metadata: metadata,
	})
	if err != nil {
		log.WithError(err).Warn("failed to record activity")
	}
}
