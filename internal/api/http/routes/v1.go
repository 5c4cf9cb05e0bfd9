package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	projectshttp "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/http"
	projectsrepo "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/repository"
	selectionhttp "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/selection/http"
	selectionsvc "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/selection/service"
	usershttp "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/http"
	usersrepo "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/repository"
)

type V1Deps struct {
	DB *mongo.Database
}

// RegisterV1 wires the repositories and attaches every /api/v1 route.
func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	projectRepo := projectsrepo.NewProjectRepository(dep.DB)
	userRepo := usersrepo.NewUserRepository(dep.DB)

	projectshttp.New(projectRepo).Register(api)
	usershttp.New(userRepo).Register(api)

	sel := selectionsvc.NewSelectionService(userRepo, projectRepo)
	selectionhttp.New(sel).Register(api)
}
