package handlers

import (
	"net/http"

	"giglink_backend/internal/middleware"
	"giglink_backend/internal/models"
	"giglink_backend/internal/services"
	"giglink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		// Employer routes: creation and ownership are tied to the employer
		// account kind.
		jobs.POST("", middleware.RequireRoles(models.UserRoleEmployer), h.CreateJob)
		jobs.GET("/my", middleware.RequireRoles(models.UserRoleEmployer), h.GetMyJobs)
		jobs.PUT("/:jobId", middleware.RequireRoles(models.UserRoleEmployer), h.UpdateJob)
		jobs.DELETE("/:jobId", middleware.RequireRoles(models.UserRoleEmployer), h.DeleteJob)

		// Common routes
		jobs.GET("", h.ListOpenJobs)
		jobs.GET("/:jobId", h.GetJob)
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("jobId"), employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Param("jobId"), employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 50)

	jobs, err := h.jobService.ListOpen(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListByEmployer(employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}
