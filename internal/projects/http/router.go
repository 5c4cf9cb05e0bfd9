package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg gin.IRouter) {
	rg.GET("/projects/getAll", h.getAll)
	rg.GET("/get/project/:projectId", h.getByID)
	rg.POST("/projects", h.create)
}
