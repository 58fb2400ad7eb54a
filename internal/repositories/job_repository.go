package repositories

import (
	"errors"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	ListByEmployer(employerID string) ([]models.Job, error)
	ListOpen(limit int) ([]models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"title":       job.Title,
		"description": job.Description,
		"city":        job.City,
		"pay_min":     job.PayMin,
		"pay_max":     job.PayMax,
		"tags":        job.Tags,
		"status":      job.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) ListByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("employer_id = ?", employerID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListOpen(limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("status = ?", models.JobStatusOpen).
		Order("created_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}
