package models

import "time"

// Application is the job-application relationship record. The unique index
// over (job_id, applicant_id) is the store-level guarantee that concurrent
// submits cannot create two live applications for the same pair; withdrawal
// removes the row entirely, so a withdrawn applicant may apply again.
type Application struct {
	ID          string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CoverLetter string            `json:"cover_letter"`
	AppliedAt   time.Time         `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}
