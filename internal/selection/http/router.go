package http

import "github.com/gin-gonic/gin"

// Register attaches selection routes to the given router group. The
// user-selected-project view lives under /projects/:userId next to the
// directory's static /projects routes.
func (h *Handler) Register(rg gin.IRouter) {
	rg.POST("/selectProject", h.selectProject)
	rg.GET("/checkUsers/:projectId", h.checkUsers)
	rg.GET("/projects/:userId", h.projectForUser)
}
