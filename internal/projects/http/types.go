package http

import "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/domain"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	repo domain.Repository
}

func New(repo domain.Repository) *Handler {
	return &Handler{repo: repo}
}
