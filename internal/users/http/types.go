package http

import "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/domain"

// Handler bundles the dependencies for user HTTP endpoints.
type Handler struct {
	repo domain.Repository
}

func New(repo domain.Repository) *Handler {
	return &Handler{repo: repo}
}
