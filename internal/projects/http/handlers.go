package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/domain"
)

func (h *Handler) getAll(c *gin.Context) {
	projects, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) getByID(c *gin.Context) {
	projectID := c.Param("projectId")

	p, err := h.repo.GetByPublicID(c.Request.Context(), projectID)
	if errors.Is(err, domain.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

type createReq struct {
	Name  string   `json:"name"`
	ID    string   `json:"id"`
	Image string   `json:"image"`
	Link  string   `json:"link"`
	Users []string `json:"users"`
}

// create persists whatever the caller sends. Fields are passed through
// unvalidated and the external id is not checked for uniqueness.
func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), &domain.Project{
		PublicID: req.ID,
		Name:     req.Name,
		Image:    req.Image,
		Link:     req.Link,
		Users:    req.Users,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}
