package wire

import (
	"cinerate/internal/adaptor"
	"cinerate/internal/data/repository"
	"cinerate/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// GET /api/users/{id} - public profile
	r.Get("/api/users/{id}", userHandler.GetProfile)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/user/me - own profile with email
		r.Get("/api/user/me", userHandler.GetMe)
	})
}
