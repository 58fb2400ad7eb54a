package services

import (
	"giglink_backend/internal/logger"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

type JobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

func (s *JobService) Create(employerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		EmployerID:  employerID,
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		PayMin:      req.PayMin,
		PayMax:      req.PayMax,
		Tags:        listJSON(req.Tags),
		Status:      models.JobStatusOpen,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job created", "job_id", job.ID, "employer_id", employerID)
	return job, nil
}

func (s *JobService) Get(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Update patches the posting with the non-nil fields of req. Owner only.
func (s *JobService) Update(jobID, callerID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.EmployerID != callerID {
		return nil, apperrors.ErrNotJobOwner
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.City != nil {
		job.City = *req.City
	}
	if req.PayMin != nil {
		job.PayMin = *req.PayMin
	}
	if req.PayMax != nil {
		job.PayMax = *req.PayMax
	}
	if req.Tags != nil {
		job.Tags = listJSON(req.Tags)
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if err := s.jobRepo.Update(job); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobService) Delete(jobID, callerID string) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if job.EmployerID != callerID {
		return apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.Delete(job.ID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.Info("job deleted", "job_id", job.ID, "employer_id", callerID)
	return nil
}

func (s *JobService) ListOpen(limit int) ([]models.Job, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	jobs, err := s.jobRepo.ListOpen(limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobService) ListByEmployer(employerID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}
