package handlers

import (
	"net/http"

	"giglink_backend/internal/middleware"
	"giglink_backend/internal/models"
	"giglink_backend/internal/services"
	"giglink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler is the HTTP boundary of the application lifecycle. Who
// may do what is decided per record inside the service, so none of these
// routes carry an account-kind gate.
type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("/:jobId/applications", h.SubmitApplication)
		jobs.GET("/:jobId/applications", h.GetJobApplications)
	}

	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.PUT("/:applicationId/status", h.UpdateApplicationStatus)
		applications.DELETE("/:applicationId", h.WithdrawApplication)
		applications.GET("/my", h.GetMyApplications)
	}
}

func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Submit(c.Param("jobId"), applicantID, req.CoverLetter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.TransitionApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Transition(
		c.Param("applicationId"), callerID, models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) WithdrawApplication(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(c.Param("applicationId"), callerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn successfully"})
}

func (h *ApplicationHandler) GetJobApplications(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListByJob(c.Param("jobId"), callerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps, "total": len(apps)})
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListByApplicant(applicantID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps, "total": len(apps)})
}
