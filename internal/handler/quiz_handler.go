package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuizHandler handles quiz authoring requests
type QuizHandler struct {
	quizService     *service.QuizService
	questionService *service.QuestionService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService, questionService *service.QuestionService) *QuizHandler {
	return &QuizHandler{
		quizService:     quizService,
		questionService: questionService,
	}
}

// CreateQuizRequest represents a quiz creation request
type CreateQuizRequest struct {
	Title        string `json:"title" binding:"required,max=255"`
	Instructions string `json:"instructions" binding:"omitempty"`
}

// CreateQuiz handles quiz creation
// POST /api/quizzes
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(req.Title, req.Instructions)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuizResponse(quiz, 0))
}

// ListQuizzes returns the slim quiz list ordered by recency
// GET /api/quizzes
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	page := parsePositiveQuery(c, "page", 1)
	pageSize := parsePositiveQuery(c, "page_size", 20)

	quizzes, err := h.quizService.ListQuizzes(page, pageSize)
	if err != nil {
		log.Printf("[QuizHandler] Failed to list quizzes: %v", err)
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizListResponse(quizzes))
}

// GetQuiz returns one quiz including its derived total marks
// GET /api/quizzes/:quiz_id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)

	quiz, totalMarks, err := h.quizService.GetQuiz(quizID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz, totalMarks))
}

// UpdateQuizRequest represents a partial quiz update
type UpdateQuizRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=255"`
	Instructions *string `json:"instructions"`
}

// UpdateQuiz handles a partial quiz update
// PUT /api/quizzes/:quiz_id
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)

	var req UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, totalMarks, err := h.quizService.UpdateQuiz(quizID, req.Title, req.Instructions)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz, totalMarks))
}

// DeleteQuiz removes a quiz and all of its children
// DELETE /api/quizzes/:quiz_id
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)

	if err := h.quizService.DeleteQuiz(quizID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// handleError maps service errors onto HTTP responses
func (h *QuizHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parsePositiveQuery reads a positive integer query parameter with a default
func parsePositiveQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return def
	}
	return val
}
