package response

import (
	"time"

	"cinerate/internal/data/entity"
)

type ReviewResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	TMDBMovieID      int64     `json:"tmdb_movie_id"`
	Rating           int       `json:"rating"`
	Content          *string   `json:"content,omitempty"`
	ContainsSpoilers bool      `json:"contains_spoilers"`
	CreatedAt        time.Time `json:"created_at"`
}

type AuthorSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type ReviewWithAuthorResponse struct {
	ReviewResponse
	Author AuthorSummary `json:"author"`
}

// Helper converters
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:               review.ID.String(),
		UserID:           review.UserID.String(),
		TMDBMovieID:      review.TMDBMovieID,
		Rating:           review.Rating,
		Content:          review.Content,
		ContainsSpoilers: review.ContainsSpoilers,
		CreatedAt:        review.CreatedAt,
	}
}

func ReviewWithAuthorToResponse(review *entity.ReviewWithAuthor) ReviewWithAuthorResponse {
	return ReviewWithAuthorResponse{
		ReviewResponse: ReviewToResponse(&review.Review),
		Author: AuthorSummary{
			ID:        review.UserID.String(),
			Name:      review.AuthorName,
			Username:  review.AuthorUsername,
			AvatarURL: review.AuthorAvatar,
		},
	}
}
