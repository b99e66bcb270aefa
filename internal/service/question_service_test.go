package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

func newQuestionServiceForTest() (*QuestionService, *MockQuizRepository, *MockQuestionRepository, *MockCacheRepository) {
	quizRepo := new(MockQuizRepository)
	questionRepo := new(MockQuestionRepository)
	cacheRepo := new(MockCacheRepository)
	return NewQuestionService(quizRepo, questionRepo, cacheRepo), quizRepo, questionRepo, cacheRepo
}

func TestQuestionService_CreateQuestion_RejectedBeforeAnyPersistence(t *testing.T) {
	// Arrange: single-choice with a single option, structurally invalid
	svc, quizRepo, questionRepo, _ := newQuestionServiceForTest()
	input := QuestionInput{
		Text: "H2O is?",
		Type: entity.QuestionTypeSingle,
		Options: []OptionInput{
			{Text: "Water", IsCorrect: true},
		},
	}

	// Act
	_, err := svc.CreateQuestion(uuid.New(), input)

	// Assert: rejection happens before any repository access
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	quizRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	questionRepo.AssertNotCalled(t, "CreateWithOptions", mock.Anything)
}

func TestQuestionService_CreateQuestion_Success(t *testing.T) {
	// Arrange
	svc, quizRepo, questionRepo, cacheRepo := newQuestionServiceForTest()
	quizID := uuid.New()

	quizRepo.On("GetByID", quizID).Return(&entity.Quiz{ID: quizID}, nil)
	questionRepo.On("CreateWithOptions", mock.AnythingOfType("*entity.Question")).Return(nil)
	cacheRepo.On("Delete", publicQuestionsCacheKey(quizID)).Return(nil)

	input := QuestionInput{
		Text: "H2O is?",
		Type: entity.QuestionTypeSingle,
		Options: []OptionInput{
			{Text: "Water", IsCorrect: true},
			{Text: "Oxygen"},
		},
	}

	// Act
	question, err := svc.CreateQuestion(quizID, input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, quizID, question.QuizID)
	assert.Equal(t, entity.QuestionMarks, question.Marks, "marks is forced to 1 regardless of input")
	require.Len(t, question.Options, 2)
	assert.Equal(t, "Water", question.Options[0].Text, "input order is preserved")
	assert.True(t, question.Options[0].IsCorrect)
	for i, opt := range question.Options {
		assert.Equal(t, i, opt.Position, "position mirrors input order")
	}
	cacheRepo.AssertExpectations(t)
}

func TestQuestionService_CreateQuestion_QuizNotFound(t *testing.T) {
	// Arrange
	svc, quizRepo, questionRepo, _ := newQuestionServiceForTest()
	quizID := uuid.New()

	quizRepo.On("GetByID", quizID).Return(nil, apperrors.ErrNotFound)

	input := QuestionInput{
		Text: "Explain gravity",
		Type: entity.QuestionTypeText,
	}

	// Act & Assert
	_, err := svc.CreateQuestion(quizID, input)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	questionRepo.AssertNotCalled(t, "CreateWithOptions", mock.Anything)
}

func TestQuestionService_ListQuizQuestions_CacheHit(t *testing.T) {
	// Arrange
	svc, quizRepo, questionRepo, cacheRepo := newQuestionServiceForTest()
	quizID := uuid.New()

	cacheRepo.On("GetJSON", publicQuestionsCacheKey(quizID), mock.Anything).Return(nil)

	// Act
	_, err := svc.ListQuizQuestions(quizID)

	// Assert: a cache hit never touches the database
	require.NoError(t, err)
	quizRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	questionRepo.AssertNotCalled(t, "GetByQuizID", mock.Anything)
}

func TestQuestionService_ListQuizQuestions_CacheMiss(t *testing.T) {
	// Arrange
	svc, quizRepo, questionRepo, cacheRepo := newQuestionServiceForTest()
	quizID := uuid.New()
	questions := []entity.Question{{ID: uuid.New(), QuizID: quizID, Text: "H2O is?"}}

	cacheRepo.On("GetJSON", publicQuestionsCacheKey(quizID), mock.Anything).Return(apperrors.ErrNotFound)
	quizRepo.On("GetByID", quizID).Return(&entity.Quiz{ID: quizID}, nil)
	questionRepo.On("GetByQuizID", quizID).Return(questions, nil)
	cacheRepo.On("SetJSON", publicQuestionsCacheKey(quizID), questions, publicQuestionsCacheTTL).Return(nil)

	// Act
	got, err := svc.ListQuizQuestions(quizID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, questions, got)
	cacheRepo.AssertExpectations(t)
}

func TestQuestionService_UpdateQuestion_InvalidOptionSetRejected(t *testing.T) {
	// Arrange: existing single-choice question, update tries to mark both
	// options correct
	svc, _, questionRepo, _ := newQuestionServiceForTest()
	questionID := uuid.New()
	existing := &entity.Question{
		ID:    questionID,
		Text:  "H2O is?",
		Type:  entity.QuestionTypeSingle,
		Marks: entity.QuestionMarks,
	}
	questionRepo.On("GetByID", questionID).Return(existing, nil)

	options := []OptionInput{
		{Text: "Water", IsCorrect: true},
		{Text: "Oxygen", IsCorrect: true},
	}

	// Act
	_, err := svc.UpdateQuestion(questionID, QuestionUpdate{Options: &options})

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	questionRepo.AssertNotCalled(t, "UpdateWithOptions", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuestionService_UpdateQuestion_TypeChangeToText(t *testing.T) {
	// Arrange: converting a choice question to text wipes its options
	svc, _, questionRepo, cacheRepo := newQuestionServiceForTest()
	questionID := uuid.New()
	quizID := uuid.New()
	textType := entity.QuestionTypeText

	existing := &entity.Question{
		ID:     questionID,
		QuizID: quizID,
		Text:   "H2O is?",
		Type:   entity.QuestionTypeSingle,
		Marks:  entity.QuestionMarks,
	}
	updated := &entity.Question{
		ID:     questionID,
		QuizID: quizID,
		Text:   "H2O is?",
		Type:   entity.QuestionTypeText,
		Marks:  entity.QuestionMarks,
	}

	questionRepo.On("GetByID", questionID).Return(existing, nil).Once()
	questionRepo.On("UpdateWithOptions", questionID,
		map[string]interface{}{"type": entity.QuestionTypeText},
		[]entity.Option{}).Return(nil)
	questionRepo.On("GetByID", questionID).Return(updated, nil).Once()
	cacheRepo.On("Delete", publicQuestionsCacheKey(quizID)).Return(nil)

	// Act
	question, err := svc.UpdateQuestion(questionID, QuestionUpdate{Type: &textType})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.QuestionTypeText, question.Type)
	questionRepo.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
}

func TestQuestionService_UpdateQuestion_ReplacementKeepsOptionOrder(t *testing.T) {
	// Arrange: resending the option set renumbers positions from zero
	svc, _, questionRepo, cacheRepo := newQuestionServiceForTest()
	questionID := uuid.New()
	quizID := uuid.New()

	existing := &entity.Question{
		ID:     questionID,
		QuizID: quizID,
		Text:   "H2O is?",
		Type:   entity.QuestionTypeSingle,
		Marks:  entity.QuestionMarks,
	}

	questionRepo.On("GetByID", questionID).Return(existing, nil)
	questionRepo.On("UpdateWithOptions", questionID, map[string]interface{}{},
		mock.MatchedBy(func(options []entity.Option) bool {
			if len(options) != 2 {
				return false
			}
			return options[0].Position == 0 && options[0].Text == "Water" &&
				options[1].Position == 1 && options[1].Text == "Oxygen"
		})).Return(nil)
	cacheRepo.On("Delete", publicQuestionsCacheKey(quizID)).Return(nil)

	options := []OptionInput{
		{Text: "Water", IsCorrect: true},
		{Text: "Oxygen"},
	}

	// Act
	_, err := svc.UpdateQuestion(questionID, QuestionUpdate{Options: &options})

	// Assert
	require.NoError(t, err)
	questionRepo.AssertExpectations(t)
}

func TestQuestionService_DeleteQuestion_InvalidatesCache(t *testing.T) {
	// Arrange
	svc, _, questionRepo, cacheRepo := newQuestionServiceForTest()
	questionID := uuid.New()
	quizID := uuid.New()

	questionRepo.On("GetByID", questionID).Return(&entity.Question{ID: questionID, QuizID: quizID}, nil)
	questionRepo.On("Delete", questionID).Return(nil)
	cacheRepo.On("Delete", publicQuestionsCacheKey(quizID)).Return(nil)

	// Act & Assert
	require.NoError(t, svc.DeleteQuestion(questionID))
	cacheRepo.AssertExpectations(t)
}
