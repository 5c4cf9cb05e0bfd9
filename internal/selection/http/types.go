package http

import "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/selection/service"

// Handler bundles the dependencies for selection HTTP endpoints.
type Handler struct {
	svc *service.SelectionService
}

func New(svc *service.SelectionService) *Handler {
	return &Handler{svc: svc}
}
