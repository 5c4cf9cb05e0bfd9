package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/domain"
)

type createReq struct {
	UID             string `json:"uid"`
	SelectedProject string `json:"selected_project"`
}

// create persists whatever the caller sends; uid is not checked for
// presence or uniqueness.
func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	u, err := h.repo.Create(c.Request.Context(), &domain.User{
		UID:             req.UID,
		SelectedProject: req.SelectedProject,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u)
}
