package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/accesscontrol"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/internal/shared/response"
)

type AccessControlHandler struct {
	service accesscontrol.Service
}

func NewAccessControlHandler(service accesscontrol.Service) *AccessControlHandler {
	return &AccessControlHandler{service: service}
}

// ListGroups handles GET /api/groups
func (h *AccessControlHandler) ListGroups(c *gin.Context) {
	groups, err := h.service.ListGroups(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, groups)
}

// GetMyPermissions handles GET /api/users/me/permissions
func (h *AccessControlHandler) GetMyPermissions(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	perms, err := h.service.GetUserPermissions(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"permissions": perms})
}

// ListMembers handles GET /api/groups/:name/members
func (h *AccessControlHandler) ListMembers(c *gin.Context) {
	members, err := h.service.ListGroupMembers(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"members": members})
}

// AddMember handles POST /api/groups/:name/members/:userID
func (h *AccessControlHandler) AddMember(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.service.AddUserToGroup(c.Request.Context(), c.Param("name"), userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"member": true})
}

// RemoveMember handles DELETE /api/groups/:name/members/:userID
func (h *AccessControlHandler) RemoveMember(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.service.RemoveUserFromGroup(c.Request.Context(), c.Param("name"), userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"member": false})
}

func (h *AccessControlHandler) handleError(c *gin.Context, err error) {
	response.ErrorResponse(c, accesscontrol.ToHTTPStatus(err), accesscontrol.ToErrorCode(err), err.Error())
}
