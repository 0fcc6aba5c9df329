package handlers

import (
	"net/http"
	"strconv"

	"github.com/gamercv/gamercv-api/internal/handlers/dto"
	"github.com/gamercv/gamercv-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GameHandler struct {
	games *services.GameService
}

func NewGameHandler(games *services.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// CreateGame registers a tracked game for the caller.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.AddGame(currentUserID(c), services.GameInput{
		Name:     req.Name,
		Category: req.Category,
		Username: req.Username,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewGameResponse(game))
}

// ListGames returns the caller's games, oldest first, with optional filters.
func (h *GameHandler) ListGames(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	games, total, err := h.games.ListGames(currentUserID(c), services.GameFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.GamesListResponse{
		Games:   make([]dto.GameResponse, len(games)),
		Total:   total,
		Page:    offset/max(limit, 1) + 1,
		PerPage: limit,
	}
	for i := range games {
		response.Games[i] = dto.NewGameResponse(&games[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	game, err := h.games.GetGame(currentUserID(c), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGameResponse(game))
}

// UpdateGame applies a partial update to a tracked game.
func (h *GameHandler) UpdateGame(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	var req dto.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.UpdateGame(currentUserID(c), gameID, services.GameUpdate{
		Name:     req.Name,
		Category: req.Category,
		Username: req.Username,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGameResponse(game))
}

// DeleteGame removes a tracked game and its cached stats.
func (h *GameHandler) DeleteGame(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	if err := h.games.RemoveGame(currentUserID(c), gameID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game deleted"})
}

func (h *GameHandler) ListCategories(c *gin.Context) {
	categories, err := h.games.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}

	items := make([]gin.H, len(categories))
	for i, cat := range categories {
		items[i] = gin.H{
			"name":           cat.Name,
			"description":    cat.Description,
			"supports_stats": cat.SupportedStats,
		}
	}
	c.JSON(http.StatusOK, gin.H{"categories": items})
}

// Suggestions serves game-name autocomplete.
func (h *GameHandler) Suggestions(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": h.games.Suggestions(query)})
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
