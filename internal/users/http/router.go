package http

import "github.com/gin-gonic/gin"

// Register attaches user routes to the given router group.
func (h *Handler) Register(rg gin.IRouter) {
	rg.POST("/users", h.create)
}
