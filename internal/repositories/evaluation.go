package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/talent-screen/internal/models"
)

type EvaluationRepository interface {
	// Enqueue creates or resets the single evaluation row for a
	// (candidate, job) pair back to queued. Completing an assessment twice
	// overwrites the old record, never appends.
	Enqueue(eval *models.FinalEvaluation) error
	FindByID(id uuid.UUID) (*models.FinalEvaluation, error)
	FindByCandidateAndJob(candidateID, jobID uuid.UUID) (*models.FinalEvaluation, error)
	FindByCandidate(candidateID uuid.UUID) (*models.FinalEvaluation, error)
	FindCompletedByJob(jobID uuid.UUID) ([]models.FinalEvaluation, error)
	UpdateStatus(id uuid.UUID, status models.EvaluationStatus) error
	UpdateResult(id uuid.UUID, result *models.FinalEvaluation) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.FinalEvaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Enqueue(eval *models.FinalEvaluation) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "candidate_id"}, {Name: "job_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"assessment_id": eval.AssessmentID,
			"status":        models.StatusQueued,
			"error_message": nil,
			"updated_at":    time.Now(),
		}),
	}).Create(eval).Error

	if err != nil {
		return fmt.Errorf("failed to enqueue evaluation: %w", err)
	}
	return nil
}

func (r *evaluationRepository) FindByID(id uuid.UUID) (*models.FinalEvaluation, error) {
	var eval models.FinalEvaluation
	if err := r.db.Where("id = ?", id).First(&eval).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("evaluation not found")
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}
	return &eval, nil
}

func (r *evaluationRepository) FindByCandidateAndJob(candidateID, jobID uuid.UUID) (*models.FinalEvaluation, error) {
	var eval models.FinalEvaluation
	err := r.db.Where("candidate_id = ? AND job_id = ?", candidateID, jobID).First(&eval).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("evaluation not found")
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}
	return &eval, nil
}

func (r *evaluationRepository) FindByCandidate(candidateID uuid.UUID) (*models.FinalEvaluation, error) {
	var eval models.FinalEvaluation
	err := r.db.Where("candidate_id = ?", candidateID).
		Order("updated_at DESC").
		First(&eval).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("evaluation not found")
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}
	return &eval, nil
}

func (r *evaluationRepository) FindCompletedByJob(jobID uuid.UUID) ([]models.FinalEvaluation, error) {
	var evals []models.FinalEvaluation
	err := r.db.Where("job_id = ? AND status = ?", jobID, models.StatusCompleted).
		Order("final_score DESC").
		Find(&evals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return evals, nil
}

func (r *evaluationRepository) UpdateStatus(id uuid.UUID, status models.EvaluationStatus) error {
	result := r.db.Model(&models.FinalEvaluation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("evaluation not found")
	}
	return nil
}

// UpdateResult overwrites every derived field in one write; the evaluation
// is recomputed from scratch, never patched.
func (r *evaluationRepository) UpdateResult(id uuid.UUID, result *models.FinalEvaluation) error {
	res := r.db.Model(&models.FinalEvaluation{}).
		Where("id = ?", id).
		Select("status", "recommendation", "rationale", "final_score",
			"resume_match_score", "assessment_score", "integrity_score",
			"technical_breakdown", "psychometric_breakdown",
			"strengths", "weaknesses", "updated_at").
		Updates(&models.FinalEvaluation{
			Status:                models.StatusCompleted,
			Recommendation:        result.Recommendation,
			Rationale:             result.Rationale,
			FinalScore:            result.FinalScore,
			ResumeMatchScore:      result.ResumeMatchScore,
			AssessmentScore:       result.AssessmentScore,
			IntegrityScore:        result.IntegrityScore,
			TechnicalBreakdown:    result.TechnicalBreakdown,
			PsychometricBreakdown: result.PsychometricBreakdown,
			Strengths:             result.Strengths,
			Weaknesses:            result.Weaknesses,
			UpdatedAt:             time.Now(),
		})

	if res.Error != nil {
		return fmt.Errorf("failed to update result: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("evaluation not found")
	}
	return nil
}

func (r *evaluationRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.FinalEvaluation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("evaluation not found")
	}
	return nil
}

func (r *evaluationRepository) FindPendingJobs(limit int) ([]models.FinalEvaluation, error) {
	var evals []models.FinalEvaluation
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&evals).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return evals, nil
}
