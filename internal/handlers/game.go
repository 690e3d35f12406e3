package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dionisvl/my.traffic-lights/internal/services"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type CreateGameRequest struct {
	Questions []string `json:"questions" binding:"required,min=1"`
}

type CreateGameResponse struct {
	GameID string `json:"game_id"`
}

// CreateGame godoc
// @Summary      Create a game
// @Description  Create a two-player game from an ordered list of questions
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        request body CreateGameRequest true "Game questions"
// @Success      201 {object} CreateGameResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	g, err := h.gameService.Create(req.Questions)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateGameResponse{GameID: g.ID})
}

// GetGame godoc
// @Summary      Get a game snapshot
// @Description  Current status, progress and per-question state of both players
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} game.Snapshot
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	snapshot, err := h.gameService.Snapshot(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
