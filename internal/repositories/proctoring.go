package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/talent-screen/internal/models"
)

// ProctoringRepository is append-only: events are never updated or deleted.
type ProctoringRepository interface {
	Create(event *models.ProctoringEvent) error
	FindByScope(candidateID, assessmentID uuid.UUID) ([]models.ProctoringEvent, error)
	FindByAssessment(assessmentID uuid.UUID) ([]models.ProctoringEvent, error)
}

type proctoringRepository struct {
	db *gorm.DB
}

func NewProctoringRepository(db *gorm.DB) ProctoringRepository {
	return &proctoringRepository{db: db}
}

func (r *proctoringRepository) Create(event *models.ProctoringEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to record proctoring event: %w", err)
	}
	return nil
}

func (r *proctoringRepository) FindByScope(candidateID, assessmentID uuid.UUID) ([]models.ProctoringEvent, error) {
	var events []models.ProctoringEvent
	err := r.db.Where("candidate_id = ? AND assessment_id = ?", candidateID, assessmentID).
		Order("timestamp ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list proctoring events: %w", err)
	}
	return events, nil
}

func (r *proctoringRepository) FindByAssessment(assessmentID uuid.UUID) ([]models.ProctoringEvent, error) {
	var events []models.ProctoringEvent
	err := r.db.Where("assessment_id = ?", assessmentID).
		Order("timestamp ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list proctoring events: %w", err)
	}
	return events, nil
}
