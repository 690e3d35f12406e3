package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dionisvl/my.traffic-lights/internal/services"
)

type QuestionsHandler struct {
	library *services.QuestionLibrary
}

func NewQuestionsHandler(library *services.QuestionLibrary) *QuestionsHandler {
	return &QuestionsHandler{library: library}
}

// ListFiles godoc
// @Summary      List question files
// @Description  Available .txt/.md question files in the configured directory
// @Tags         questions
// @Produce      json
// @Success      200 {object} map[string][]services.QuestionFile
// @Router       /api/v1/questions [get]
func (h *QuestionsHandler) ListFiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"files": h.library.List()})
}

// GetFile godoc
// @Summary      Get one question file
// @Description  File content plus the parsed question list, one per non-empty line
// @Tags         questions
// @Produce      json
// @Param        name path string true "File name"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{name} [get]
func (h *QuestionsHandler) GetFile(c *gin.Context) {
	content, questions, err := h.library.Read(c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content":   content,
		"questions": questions,
	})
}
