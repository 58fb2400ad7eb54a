package handlers

import (
	"net/http"

	"giglink_backend/internal/middleware"
	"giglink_backend/internal/services"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ConnectionHandler is the HTTP boundary of the connection lifecycle plus the
// combined /network read endpoint.
type ConnectionHandler struct {
	*BaseHandler
	connectionService *services.ConnectionService
}

func NewConnectionHandler(base *BaseHandler, connectionService *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{BaseHandler: base, connectionService: connectionService}
}

func (h *ConnectionHandler) RegisterRoutes(r *gin.RouterGroup) {
	connections := r.Group("/connections")
	connections.Use(middleware.AuthMiddleware())
	{
		connections.POST("", h.RequestConnection)
		connections.POST("/action", h.ActOnConnection)
	}

	network := r.Group("/network")
	network.Use(middleware.AuthMiddleware())
	{
		network.GET("", h.GetNetwork)
	}
}

// RequestConnection creates a pending request from the caller. The requester
// is always the JWT subject; the body only names the target.
func (h *ConnectionHandler) RequestConnection(c *gin.Context) {
	requesterID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RequestConnectionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	conn, err := h.connectionService.Request(requesterID, req.TargetID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, conn)
}

func (h *ConnectionHandler) ActOnConnection(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ConnectionActionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	switch req.Action {
	case "accept":
		conn, err := h.connectionService.Accept(req.RequestID, callerID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, conn)
	case "reject":
		if err := h.connectionService.Reject(req.RequestID, callerID); err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Connection request rejected"})
	default:
		// Unreachable behind the is-connection-action tag; kept so the
		// switch stays total.
		apperrors.HandleError(c, apperrors.NewBadRequestError("Action must be 'accept' or 'reject'"))
	}
}

// GetNetwork serves the three network reads behind one endpoint:
// connections, requests and discover.
func (h *ConnectionHandler) GetNetwork(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	switch c.Query("type") {
	case "connections":
		userID := c.Query("user_id")
		if userID == "" {
			userID = callerID
		}
		views, err := h.connectionService.ConnectionsOf(userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"connections": views, "total": len(views)})
	case "requests":
		conns, err := h.connectionService.PendingRequestsFor(callerID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": conns, "total": len(conns)})
	case "discover":
		users, err := h.connectionService.Discover(callerID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
	default:
		apperrors.HandleError(c, apperrors.NewBadRequestError(
			"Query parameter 'type' must be one of: connections, requests, discover"))
	}
}
