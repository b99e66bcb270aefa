package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuestionHandler handles question authoring requests
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// OptionRequest represents one proposed option
type OptionRequest struct {
	Text      string `json:"text" binding:"required,max=300"`
	IsCorrect bool   `json:"is_correct"`
}

// CreateQuestionRequest represents a question creation request. Marks is
// deliberately absent: its weight is fixed server-side.
type CreateQuestionRequest struct {
	Text    string          `json:"text" binding:"required"`
	Type    string          `json:"type" binding:"required"`
	Order   *int            `json:"order"`
	Options []OptionRequest `json:"options" binding:"omitempty,dive"`
}

// CreateQuestion validates and persists a question under a quiz, returning
// the authoring view (correctness included)
// POST /api/quizzes/:quiz_id/questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questionService.CreateQuestion(quizID, service.QuestionInput{
		Text:    req.Text,
		Type:    req.Type,
		Order:   req.Order,
		Options: toOptionInputs(req.Options),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuestionResponse(question))
}

// ListQuizQuestions returns the public view of a quiz's questions; option
// correctness is never part of this projection
// GET /api/quizzes/:quiz_id/questions
func (h *QuestionHandler) ListQuizQuestions(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)

	questions, err := h.questionService.ListQuizQuestions(quizID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPublicQuestionListResponse(questions))
}

// GetQuestion returns the authoring view of one question
// GET /api/questions/:question_id
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uuid.UUID)

	question, err := h.questionService.GetQuestion(questionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionResponse(question))
}

// UpdateQuestionRequest represents a partial question update. A nil Options
// field leaves the option set untouched; a present one replaces it whole.
type UpdateQuestionRequest struct {
	Text    *string          `json:"text"`
	Type    *string          `json:"type"`
	Order   *int             `json:"order"`
	Options *[]OptionRequest `json:"options" binding:"omitempty,dive"`
}

// UpdateQuestion handles a partial question update
// PUT /api/questions/:question_id
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uuid.UUID)

	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := service.QuestionUpdate{
		Text:  req.Text,
		Type:  req.Type,
		Order: req.Order,
	}
	if req.Options != nil {
		options := toOptionInputs(*req.Options)
		upd.Options = &options
	}

	question, err := h.questionService.UpdateQuestion(questionID, upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionResponse(question))
}

// DeleteQuestion removes a question and its options
// DELETE /api/questions/:question_id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uuid.UUID)

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// handleError maps service errors onto HTTP responses
func (h *QuestionHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in QuestionHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func toOptionInputs(options []OptionRequest) []service.OptionInput {
	inputs := make([]service.OptionInput, len(options))
	for i, opt := range options {
		inputs[i] = service.OptionInput{Text: opt.Text, IsCorrect: opt.IsCorrect}
	}
	return inputs
}
