package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	projectsdomain "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/domain"
	usersdomain "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/domain"
)

type selectReq struct {
	UID       string `json:"uid"`
	ProjectID string `json:"projectId"`
}

// selectProject runs the assignment workflow. Missing uid or projectId flow
// through to the store unvalidated; an unknown project id still answers 200
// with a null project, since the user's selection has already been written.
func (h *Handler) selectProject(c *gin.Context) {
	var req selectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	u, p, err := h.svc.Select(c.Request.Context(), req.UID, req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "project": p})
}

func (h *Handler) checkUsers(c *gin.Context) {
	projectID := c.Param("projectId")

	hasTwo, err := h.svc.HasTwoUsers(c.Request.Context(), projectID)
	if err != nil {
		respondLookupErr(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasTwoUsers": hasTwo})
}

func (h *Handler) projectForUser(c *gin.Context) {
	userID := c.Param("userId")

	p, err := h.svc.ProjectForUser(c.Request.Context(), userID)
	if err != nil {
		respondLookupErr(c, err, "User not found")
		return
	}
	// p is nil when the user's selection points at no existing project;
	// that serializes as a null body, matching the workflow's permissive
	// contract.
	c.JSON(http.StatusOK, p)
}

// respondLookupErr maps the two error kinds the read paths produce: a
// not-found sentinel answers 404 with a fixed message, anything else is a
// store failure carrying the underlying message.
func respondLookupErr(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, usersdomain.ErrUserNotFound) || errors.Is(err, projectsdomain.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
