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

// SubmissionHandler handles answer submission and submission reads
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// SubmitAnswerRequest is one answer inside a submission request.
// SelectedOptions is a list of raw strings on purpose: malformed option ids
// are tolerated and silently ignored during scoring.
type SubmitAnswerRequest struct {
	Question        uuid.UUID `json:"question" binding:"required"`
	SelectedOptions []string  `json:"selected_options"`
	TextAnswer      string    `json:"text_answer"`
}

// SubmitRequest represents a scoring request. An empty answer list is valid
// and yields a zero score.
type SubmitRequest struct {
	Answers []SubmitAnswerRequest `json:"answers" binding:"omitempty,dive"`
}

// Submit scores an answer set against a quiz
// POST /api/quizzes/:quiz_id/submit
func (h *SubmissionHandler) Submit(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answers := make([]service.AnswerInput, len(req.Answers))
	for i, ans := range req.Answers {
		answers[i] = service.AnswerInput{
			QuestionID:        ans.Question,
			SelectedOptionIDs: ans.SelectedOptions,
			TextAnswer:        ans.TextAnswer,
		}
	}

	submission, err := h.submissionService.Submit(quizID, answers)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmissionResponse(submission))
}

// GetSubmission returns a persisted submission with its answers
// GET /api/submissions/:submission_id
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	submissionID := c.MustGet("submissionID").(uuid.UUID)

	submission, err := h.submissionService.GetSubmission(submissionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmissionDetailResponse(submission))
}

// ListQuizSubmissions returns the submissions of a quiz ordered by recency
// GET /api/quizzes/:quiz_id/submissions
func (h *SubmissionHandler) ListQuizSubmissions(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)
	page := parsePositiveQuery(c, "page", 1)
	pageSize := parsePositiveQuery(c, "page_size", 20)

	submissions, err := h.submissionService.ListQuizSubmissions(quizID, page, pageSize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmissionListResponse(submissions))
}

// handleError maps service errors onto HTTP responses
func (h *SubmissionHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in SubmissionHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
