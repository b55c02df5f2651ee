package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyez/studyez_backend/apperrors"
	"github.com/studyez/studyez_backend/models"
	"gorm.io/gorm"
)

func seedCourseWithModules(t *testing.T, db *gorm.DB, ownerID uuid.UUID, moduleCount int) (uuid.UUID, []uuid.UUID) {
	t.Helper()

	courseID := uuid.New()
	require.NoError(t, db.Create(&models.Course{
		ID: courseID, UserID: ownerID, Name: "France 101", Subject: "Geography",
	}).Error)

	moduleIDs := make([]uuid.UUID, moduleCount)
	for i := range moduleIDs {
		moduleIDs[i] = uuid.New()
		require.NoError(t, db.Create(&models.Module{
			ID: moduleIDs[i], CourseID: courseID, Title: "M", Order: i + 1, OriginalContent: "content",
		}).Error)
	}
	return courseID, moduleIDs
}

func fakeGenerator(raw string) *ExamGenerator {
	return &ExamGenerator{
		model: "test-model",
		chat: func(context.Context, string, []ChatMessage) (string, error) {
			return raw, nil
		},
	}
}

func TestGenerateExamPersistsBlueprint(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	courseID, moduleIDs := seedCourseWithModules(t, db, owner, 2)

	gen := fakeGenerator(`{"title":"Generated Exam","items":[
		{"type":"multiple-choice","questionText":"Pick B","correctAnswer":"B","options":["A","B","C","D"],"order":1,"moduleIndex":2},
		{"type":"tf","questionText":"Paris is in France","correctAnswer":"true","order":2,"moduleIndex":1},
		{"type":"short-answer","questionText":"Capital?","correctAnswer":"Paris","order":3,"moduleIndex":99}
	]}`)

	exam, err := GenerateExam(context.Background(), gen, courseID, 3, owner, models.RoleFree)
	require.NoError(t, err)
	assert.Equal(t, "Generated Exam", exam.Title)
	assert.Equal(t, courseID, exam.CourseID)
	assert.True(t, exam.IsActive)

	var links []models.ExamQuestion
	require.NoError(t, db.Where("exam_id = ?", exam.ID).Order(`"order"`).Preload("Question").Find(&links).Error)
	require.Len(t, links, 3)

	for i, link := range links {
		assert.Equal(t, i+1, link.Order)
		assert.Equal(t, 1.0, link.Points)
	}

	// Items attach to the module named by their moduleIndex; out-of-range
	// indexes fall back to the first module. Aliased type strings ("tf") are
	// accepted on this import path.
	assert.Equal(t, models.MultipleChoice, links[0].Question.Type)
	assert.Equal(t, moduleIDs[1], links[0].Question.ModuleID)
	assert.Equal(t, models.TrueFalse, links[1].Question.Type)
	assert.Equal(t, moduleIDs[0], links[1].Question.ModuleID)
	assert.Equal(t, moduleIDs[0], links[2].Question.ModuleID)

	var options []models.QuestionOption
	require.NoError(t, db.Where("question_id = ?", links[0].QuestionID).Order(`"order"`).Find(&options).Error)
	require.Len(t, options, 4)
	assert.Equal(t, "B", options[1].OptionText)
}

func TestGenerateExamTitleFallback(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	courseID, _ := seedCourseWithModules(t, db, owner, 1)

	gen := fakeGenerator(`{"items":[
		{"type":"short-answer","questionText":"q","correctAnswer":"a","order":1}
	]}`)

	exam, err := GenerateExam(context.Background(), gen, courseID, 1, owner, models.RoleFree)
	require.NoError(t, err)
	assert.Equal(t, "France 101 — Exam", exam.Title)
}

func TestGenerateExamCourseNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GenerateExam(context.Background(), fakeGenerator(`{}`), uuid.New(), 5, uuid.New(), models.RoleFree)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGenerateExamRequiresOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	courseID, _ := seedCourseWithModules(t, db, owner, 1)

	_, err := GenerateExam(context.Background(), fakeGenerator(`{}`), courseID, 5, uuid.New(), models.RoleFree)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	// Admins bypass ownership.
	gen := fakeGenerator(`{"items":[{"type":"short-answer","questionText":"q","correctAnswer":"a","order":1}]}`)
	_, err = GenerateExam(context.Background(), gen, courseID, 1, uuid.New(), models.RoleAdmin)
	require.NoError(t, err)
}

func TestGenerateExamWithoutModules(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	courseID, _ := seedCourseWithModules(t, db, owner, 0)

	_, err := GenerateExam(context.Background(), fakeGenerator(`{}`), courseID, 5, owner, models.RoleFree)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestGenerateExamUnknownTypeAborts(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	courseID, _ := seedCourseWithModules(t, db, owner, 1)

	gen := fakeGenerator(`{"items":[
		{"type":"essay","questionText":"q","correctAnswer":"a","order":1}
	]}`)

	_, err := GenerateExam(context.Background(), gen, courseID, 1, owner, models.RoleFree)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	// The transaction rolled back: nothing was persisted.
	var examCount int64
	require.NoError(t, db.Model(&models.Exam{}).Count(&examCount).Error)
	assert.Equal(t, int64(0), examCount)
	var questionCount int64
	require.NoError(t, db.Model(&models.Question{}).Count(&questionCount).Error)
	assert.Equal(t, int64(0), questionCount)
}
