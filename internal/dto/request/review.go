package request

type CreateReviewRequest struct {
	TMDBMovieID      int64   `json:"tmdb_movie_id" validate:"required,gt=0"`
	Rating           int     `json:"rating" validate:"required,min=1,max=5"`
	Content          *string `json:"content,omitempty" validate:"omitempty,max=2000"`
	ContainsSpoilers bool    `json:"contains_spoilers"`
}

type UpdateReviewRequest struct {
	Rating           *int    `json:"rating,omitempty" validate:"omitnil,min=1,max=5"`
	Content          *string `json:"content,omitempty" validate:"omitnil,max=2000"`
	ContainsSpoilers *bool   `json:"contains_spoilers,omitempty"`
}
