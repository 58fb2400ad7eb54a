package services

import (
	"giglink_backend/internal/authz"
	"giglink_backend/internal/logger"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/pkg/apperrors"
)

// ApplicationService owns the job-application lifecycle. Every mutation
// resolves the caller's role from the record and its job via authz before
// touching the store; uniqueness is delegated to the store's index, not
// checked here.
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Submit creates a pending application for (jobID, applicantID). The insert
// itself arbitrates duplicates: a concurrent winner makes this call return
// ErrDuplicateApplication, never a second row.
func (s *ApplicationService) Submit(jobID, applicantID, coverLetter string) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.EmployerID == applicantID {
		return nil, apperrors.ErrOwnJobApplication
	}

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusPending,
		CoverLetter: coverLetter,
	}

	if err := s.applicationRepo.Create(app); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application submitted",
		"application_id", app.ID, "job_id", jobID, "applicant_id", applicantID)
	return app, nil
}

// Transition moves an application into requested on behalf of callerID.
// Applicants may only request completed; employers anything but completed;
// anyone else is not a party to the record.
func (s *ApplicationService) Transition(applicationID, callerID string, requested models.ApplicationStatus) (*models.Application, error) {
	if !models.IsApplicationStatus(requested) {
		return nil, apperrors.ErrInvalidStatus("application", "Unknown application status")
	}

	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(app.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if d := authz.CanTransitionApplication(app.ApplicantID, job.EmployerID, callerID, requested); !d.Allowed {
		return nil, apperrors.NewForbiddenError(d.Reason)
	}

	updated, err := s.applicationRepo.UpdateStatus(app.ID, requested)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application status changed",
		"application_id", app.ID, "status", requested, "caller_id", callerID)
	return updated, nil
}

// Withdraw removes the application entirely. Only the applicant may do this;
// a withdrawn applicant is free to apply to the same job again.
func (s *ApplicationService) Withdraw(applicationID, callerID string) error {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}

	if d := authz.CanWithdrawApplication(app.ApplicantID, callerID); !d.Allowed {
		return apperrors.NewForbiddenError(d.Reason)
	}

	if err := s.applicationRepo.Delete(app.ID); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.Info("application withdrawn", "application_id", app.ID, "applicant_id", callerID)
	return nil
}

// ListByJob returns a job's applications to its owner.
func (s *ApplicationService) ListByJob(jobID, callerID string) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.EmployerID != callerID {
		return nil, apperrors.NewForbiddenError("Only the job owner may list its applications")
	}

	apps, err := s.applicationRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *ApplicationService) ListByApplicant(applicantID string) ([]models.Application, error) {
	apps, err := s.applicationRepo.ListByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}
