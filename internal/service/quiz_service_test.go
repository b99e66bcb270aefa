package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// ============================================================================
// Mocks shared by the service tests
// ============================================================================

// MockQuizRepository implements repository.QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Create(quiz *entity.Quiz) error {
	args := m.Called(quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetByID(id uuid.UUID) (*entity.Quiz, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quiz), args.Error(1)
}

func (m *MockQuizRepository) List(limit, offset int) ([]entity.Quiz, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Quiz), args.Error(1)
}

func (m *MockQuizRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(id, updates)
	return args.Error(0)
}

func (m *MockQuizRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockQuestionRepository implements repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateWithOptions(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(id uuid.UUID) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByQuizID(quizID uuid.UUID) ([]entity.Question, error) {
	args := m.Called(quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) CountByQuizID(quizID uuid.UUID) (int64, error) {
	args := m.Called(quizID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) UpdateWithOptions(id uuid.UUID, updates map[string]interface{}, options []entity.Option) error {
	args := m.Called(id, updates, options)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCacheRepository implements repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepository) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

// ============================================================================
// QuizService tests
// ============================================================================

func TestQuizService_CreateQuiz(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	questionRepo := new(MockQuestionRepository)
	quizRepo.On("Create", mock.AnythingOfType("*entity.Quiz")).Return(nil)

	svc := NewQuizService(quizRepo, questionRepo)

	// Act
	quiz, err := svc.CreateQuiz("Science Quiz", "Answer everything")

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, quiz.ID, "a fresh opaque id must be assigned")
	assert.Equal(t, "Science Quiz", quiz.Title)
	assert.Equal(t, "Answer everything", quiz.Instructions)
	quizRepo.AssertExpectations(t)
}

func TestQuizService_GetQuiz_DerivesTotalMarks(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	questionRepo := new(MockQuestionRepository)
	quizID := uuid.New()

	quizRepo.On("GetByID", quizID).Return(&entity.Quiz{ID: quizID, Title: "Science Quiz"}, nil)
	questionRepo.On("CountByQuizID", quizID).Return(int64(3), nil)

	svc := NewQuizService(quizRepo, questionRepo)

	// Act
	quiz, totalMarks, err := svc.GetQuiz(quizID)

	// Assert: total marks is the live question count, never a stored field
	require.NoError(t, err)
	assert.Equal(t, quizID, quiz.ID)
	assert.Equal(t, 3, totalMarks)
}

func TestQuizService_GetQuiz_NotFound(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	questionRepo := new(MockQuestionRepository)
	quizID := uuid.New()

	quizRepo.On("GetByID", quizID).Return(nil, apperrors.ErrNotFound)

	svc := NewQuizService(quizRepo, questionRepo)

	// Act & Assert
	_, _, err := svc.GetQuiz(quizID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	questionRepo.AssertNotCalled(t, "CountByQuizID", mock.Anything)
}

func TestQuizService_ListQuizzes_Pagination(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	questionRepo := new(MockQuestionRepository)

	quizRepo.On("List", 20, 20).Return([]entity.Quiz{{Title: "Newest"}}, nil)

	svc := NewQuizService(quizRepo, questionRepo)

	// Act
	quizzes, err := svc.ListQuizzes(2, 20)

	// Assert
	require.NoError(t, err)
	assert.Len(t, quizzes, 1)
	quizRepo.AssertExpectations(t)
}

func TestQuizService_UpdateQuiz_PartialUpdate(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	questionRepo := new(MockQuestionRepository)
	quizID := uuid.New()
	newTitle := "Renamed"

	quizRepo.On("UpdateFields", quizID, map[string]interface{}{"title": "Renamed"}).Return(nil)
	quizRepo.On("GetByID", quizID).Return(&entity.Quiz{ID: quizID, Title: "Renamed"}, nil)
	questionRepo.On("CountByQuizID", quizID).Return(int64(0), nil)

	svc := NewQuizService(quizRepo, questionRepo)

	// Act
	quiz, totalMarks, err := svc.UpdateQuiz(quizID, &newTitle, nil)

	// Assert: only the provided field reaches the repository
	require.NoError(t, err)
	assert.Equal(t, "Renamed", quiz.Title)
	assert.Equal(t, 0, totalMarks)
	quizRepo.AssertExpectations(t)
}

func TestQuizService_DeleteQuiz_NotFound(t *testing.T) {
	// Arrange
	quizRepo := new(MockQuizRepository)
	questionRepo := new(MockQuestionRepository)
	quizID := uuid.New()

	quizRepo.On("Delete", quizID).Return(apperrors.ErrNotFound)

	svc := NewQuizService(quizRepo, questionRepo)

	// Act & Assert
	assert.ErrorIs(t, svc.DeleteQuiz(quizID), apperrors.ErrNotFound)
}
