package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/apperrors"
	"github.com/studyez/studyez_backend/database"
	"github.com/studyez/studyez_backend/models"
	"github.com/studyez/studyez_backend/utils"
	"gorm.io/gorm"
)

// ExamStartItem is the client-safe projection of one linked question. The
// correct answer is never part of it.
type ExamStartItem struct {
	QuestionID   uuid.UUID `json:"question_id"`
	Type         string    `json:"type"`
	QuestionText string    `json:"question_text"`
	Options      []string  `json:"options"`
	Order        int       `json:"order"`
	Points       float64   `json:"points"`
}

type ExamStartResponse struct {
	ExamID         uuid.UUID       `json:"exam_id"`
	Title          string          `json:"title"`
	TotalQuestions int             `json:"total_questions"`
	Items          []ExamStartItem `json:"items"`
}

type ExamSubmitItem struct {
	QuestionID uuid.UUID `json:"question_id"`
	UserAnswer string    `json:"user_answer"`
}

func loadExamLinks(examID uuid.UUID) ([]models.ExamQuestion, error) {
	var links []models.ExamQuestion
	err := database.DB.
		Where("exam_id = ?", examID).
		Order(`"order"`).
		Preload("Question").
		Preload("Question.Options", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		Find(&links).Error
	return links, err
}

// StartExam serves the exam's questions in link order, without answers. An
// exam with no linked questions is not startable, nor is a deactivated one.
func StartExam(examID uuid.UUID) (*ExamStartResponse, error) {
	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ExamNotFound(examID)
		}
		return nil, err
	}
	if !exam.IsActive {
		return nil, apperrors.Validation("Exam is not active.")
	}

	links, err := loadExamLinks(examID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, apperrors.Validation("Exam has no questions.")
	}

	items := make([]ExamStartItem, 0, len(links))
	for _, link := range links {
		q := link.Question
		if q == nil {
			// Dangling link: its question row is gone. Skip it rather than
			// serve a hole.
			continue
		}
		wire, err := q.Type.WireString()
		if err != nil {
			return nil, err
		}

		var options []string
		if q.Type == models.MultipleChoice {
			options = make([]string, 0, len(q.Options))
			for _, o := range q.Options {
				options = append(options, o.OptionText)
			}
		}

		items = append(items, ExamStartItem{
			QuestionID:   q.ID,
			Type:         wire,
			QuestionText: q.QuestionText,
			Options:      options,
			Order:        link.Order,
			Points:       link.Points,
		})
	}

	return &ExamStartResponse{
		ExamID:         examID,
		Title:          exam.Title,
		TotalQuestions: len(items),
		Items:          items,
	}, nil
}

// SubmitExam grades a submission against every linked question and persists
// the result with its answers and module scores as one atomic unit. Questions
// the client did not answer are graded against the empty string; submitted
// answers that match no linked question are ignored, as are links whose
// question row no longer exists.
//
// requireOwnership re-checks that the submitter owns the exam's course. The
// reference behavior lets any authenticated user submit, so this is off
// unless SUBMIT_REQUIRE_COURSE_OWNERSHIP is set.
func SubmitExam(examID uuid.UUID, submitted []ExamSubmitItem, actorUserID uuid.UUID, actorRole string, requireOwnership bool) (*models.ExamResult, error) {
	if requireOwnership {
		var exam models.Exam
		if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperrors.ExamNotFound(examID)
			}
			return nil, err
		}
		var course models.Course
		if err := database.DB.First(&course, "id = ?", exam.CourseID).Error; err != nil {
			return nil, err
		}
		if err := utils.EnsureOwnerOrAdmin(course.UserID, actorUserID, utils.IsAdmin(actorRole)); err != nil {
			return nil, err
		}
	}

	links, err := loadExamLinks(examID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, apperrors.Validation("Exam has no questions.")
	}

	answerByQuestion := make(map[uuid.UUID]string, len(submitted))
	for _, s := range submitted {
		answerByQuestion[s.QuestionID] = strings.TrimSpace(s.UserAnswer)
	}

	resultID := uuid.New()
	correct := 0
	answers := make([]models.ExamResultAnswer, 0, len(links))

	for _, link := range links {
		q := link.Question
		if q == nil {
			continue
		}
		userText := answerByQuestion[q.ID]

		isCorrect := IsCorrectAnswer(q, userText)
		points := 0.0
		if isCorrect {
			correct++
			points = link.Points
		}

		answers = append(answers, models.ExamResultAnswer{
			ID:           uuid.New(),
			ExamResultID: resultID,
			QuestionID:   q.ID,
			UserAnswer:   userText,
			IsCorrect:    isCorrect,
			Points:       points,
		})
	}

	total := len(answers)

	scores := AggregateModuleScores(links, answers)
	for i := range scores {
		scores[i].ID = uuid.New()
		scores[i].ExamResultID = resultID
	}

	result := models.ExamResult{
		ID:             resultID,
		ExamID:         examID,
		UserID:         actorUserID,
		OverallScore:   percentScore(correct, total),
		TotalQuestions: total,
		CorrectAnswers: correct,
		CompletedAt:    time.Now().UTC(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return err
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		if len(scores) > 0 {
			if err := tx.Create(&scores).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
