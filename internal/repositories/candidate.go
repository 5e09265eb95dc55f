package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/talent-screen/internal/models"
)

type CandidateRepository interface {
	Create(profile *models.CandidateProfile) error
	FindByID(id uuid.UUID) (*models.CandidateProfile, error)
	FindByUserID(userID uuid.UUID) (*models.CandidateProfile, error)
	FindAll() ([]models.CandidateProfile, error)
	// ReplaceResume overwrites the stored resume wholesale; profiles are
	// never patched field by field.
	ReplaceResume(id uuid.UUID, resumePath string, parsed *models.ParsedResume) error
	UpdateRanking(id uuid.UUID, ranking string) error
	UpdateStatus(id uuid.UUID, status models.CandidateStatus) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(profile *models.CandidateProfile) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create candidate profile: %w", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("candidate profile not found")
		}
		return nil, fmt.Errorf("failed to find candidate profile: %w", err)
	}
	return &profile, nil
}

func (r *candidateRepository) FindByUserID(userID uuid.UUID) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("candidate profile not found")
		}
		return nil, fmt.Errorf("failed to find candidate profile: %w", err)
	}
	return &profile, nil
}

func (r *candidateRepository) FindAll() ([]models.CandidateProfile, error) {
	var profiles []models.CandidateProfile
	if err := r.db.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidate profiles: %w", err)
	}
	return profiles, nil
}

func (r *candidateRepository) ReplaceResume(id uuid.UUID, resumePath string, parsed *models.ParsedResume) error {
	// Updates goes through the model so the jsonb serializer applies.
	result := r.db.Model(&models.CandidateProfile{}).
		Where("id = ?", id).
		Select("resume_path", "parsed_resume", "updated_at").
		Updates(&models.CandidateProfile{
			ResumePath:   resumePath,
			ParsedResume: parsed,
			UpdatedAt:    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to replace resume: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate profile not found")
	}
	return nil
}

func (r *candidateRepository) UpdateRanking(id uuid.UUID, ranking string) error {
	result := r.db.Model(&models.CandidateProfile{}).
		Where("id = ?", id).
		Update("ranking", ranking)

	if result.Error != nil {
		return fmt.Errorf("failed to update ranking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate profile not found")
	}
	return nil
}

func (r *candidateRepository) UpdateStatus(id uuid.UUID, status models.CandidateStatus) error {
	result := r.db.Model(&models.CandidateProfile{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate profile not found")
	}
	return nil
}
