package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID           uuid.UUID `db:"user_id"`
	TMDBMovieID      int64     `db:"tmdb_movie_id"`
	Rating           int       `db:"rating"` // 1-5
	Content          *string   `db:"content"`
	ContainsSpoilers bool      `db:"contains_spoilers"`
}

// ReviewWithAuthor carries the public author summary joined from users,
// used for the per-movie listing.
type ReviewWithAuthor struct {
	Review
	AuthorName     string  `db:"author_name"`
	AuthorUsername string  `db:"author_username"`
	AuthorAvatar   *string `db:"author_avatar"`
}
