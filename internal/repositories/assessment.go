package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/talent-screen/internal/models"
)

// ErrDuplicateResponse means the question was already answered in this
// assessment. Responses are written at most once; a re-submission is a
// policy violation, not a retry.
var ErrDuplicateResponse = errors.New("question already answered in this assessment")

type AssessmentRepository interface {
	Create(assessment *models.Assessment) error
	FindByID(id uuid.UUID) (*models.Assessment, error)
	FindByCandidateAndJob(candidateID, jobID uuid.UUID) (*models.Assessment, error)
	FindByCandidate(candidateID uuid.UUID) ([]models.Assessment, error)
	MarkStarted(id uuid.UUID) error
	MarkCompleted(id uuid.UUID) error
	UpdateScores(id uuid.UUID, technical, psychometric, total float64) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *models.Assessment) error {
	if err := r.db.Create(assessment).Error; err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepository) FindByID(id uuid.UUID) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := r.db.Where("id = ?", id).First(&assessment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("assessment not found")
		}
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByCandidateAndJob(candidateID, jobID uuid.UUID) (*models.Assessment, error) {
	var assessment models.Assessment
	err := r.db.Where("candidate_id = ? AND job_id = ?", candidateID, jobID).First(&assessment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByCandidate(candidateID uuid.UUID) ([]models.Assessment, error) {
	var assessments []models.Assessment
	if err := r.db.Where("candidate_id = ?", candidateID).Order("created_at DESC").Find(&assessments).Error; err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}

func (r *assessmentRepository) MarkStarted(id uuid.UUID) error {
	now := time.Now()
	result := r.db.Model(&models.Assessment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.AssessmentInProgress,
			"started_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark assessment started: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("assessment not found")
	}
	return nil
}

func (r *assessmentRepository) MarkCompleted(id uuid.UUID) error {
	now := time.Now()
	result := r.db.Model(&models.Assessment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.AssessmentCompleted,
			"completed_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark assessment completed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("assessment not found")
	}
	return nil
}

func (r *assessmentRepository) UpdateScores(id uuid.UUID, technical, psychometric, total float64) error {
	result := r.db.Model(&models.Assessment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"technical_score":    technical,
			"psychometric_score": psychometric,
			"total_score":        total,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update assessment scores: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("assessment not found")
	}
	return nil
}

type ResponseRepository interface {
	// Create appends one graded response. Returns ErrDuplicateResponse if
	// the question already has one for this assessment.
	Create(response *models.QuestionResponse) error
	FindByAssessment(assessmentID uuid.UUID) ([]models.QuestionResponse, error)
	CountByAssessment(assessmentID uuid.UUID) (int64, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *models.QuestionResponse) error {
	var count int64
	err := r.db.Model(&models.QuestionResponse{}).
		Where("assessment_id = ? AND question_id = ?", response.AssessmentID, response.QuestionID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check existing response: %w", err)
	}
	if count > 0 {
		return ErrDuplicateResponse
	}

	if err := r.db.Create(response).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}
	return nil
}

func (r *responseRepository) FindByAssessment(assessmentID uuid.UUID) ([]models.QuestionResponse, error) {
	var responses []models.QuestionResponse
	err := r.db.Preload("Question").
		Where("assessment_id = ?", assessmentID).
		Order("submitted_at ASC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return responses, nil
}

func (r *responseRepository) CountByAssessment(assessmentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.QuestionResponse{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}
