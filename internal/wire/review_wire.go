package wire

import (
	"cinerate/internal/adaptor"
	"cinerate/internal/data/repository"
	"cinerate/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies/{id}/reviews - reviews of a movie with author info
	r.Get("/api/movies/{id}/reviews", reviewHandler.GetMovieReviews)

	// GET /api/users/{id}/reviews - reviews by a user, cursor-paginated
	r.Get("/api/users/{id}/reviews", reviewHandler.GetUserReviews)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/reviews - create review, one per user per movie
		r.Post("/api/reviews", reviewHandler.CreateReview)

		// GET /api/user/reviews - own reviews, cursor-paginated
		r.Get("/api/user/reviews", reviewHandler.GetMyReviews)

		// PATCH /api/reviews/{id} - partial update, owner only
		r.Patch("/api/reviews/{id}", reviewHandler.UpdateReview)

		// DELETE /api/reviews/{id} - owner only
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
