package repositories

import (
	"errors"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	// Create is an atomic insert-if-absent: the (job_id, applicant_id)
	// unique index decides, not a prior read. A losing concurrent insert
	// returns ErrApplicationAlreadyExists.
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobAndApplicant(jobID, applicantID string) (*models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error)
	Delete(id string) error
	ListByJob(jobID string) ([]models.Application, error)
	ListByApplicant(applicantID string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndApplicant(jobID, applicantID string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error) {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	return r.FindByID(id)
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Application{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("job_id = ?", jobID).Order("applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByApplicant(applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("applicant_id = ?", applicantID).Order("applied_at DESC").Find(&apps).Error
	return apps, err
}
