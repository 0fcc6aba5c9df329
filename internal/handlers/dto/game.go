package dto

import (
	"time"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
)

type CreateGameRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Category string `json:"category" binding:"required"`
	Username string `json:"username" binding:"required,min=2,max=100"`
}

type UpdateGameRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Username *string `json:"username"`
}

type GameResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGameResponse(game *models.Game) GameResponse {
	return GameResponse{
		ID:        game.ID,
		Name:      game.Name,
		Category:  game.Category.Name,
		Username:  game.Username,
		CreatedAt: game.CreatedAt,
		UpdatedAt: game.UpdatedAt,
	}
}

type GamesListResponse struct {
	Games   []GameResponse `json:"games"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}
