package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	httpapi "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/api/http"
	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/api/http/middleware"
	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/api/http/routes"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *mongo.Database
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{DB: dep.DB})

	return r
}
