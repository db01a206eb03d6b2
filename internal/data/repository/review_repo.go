package repository

import (
	"context"
	"errors"
	"fmt"

	"cinerate/internal/data/entity"
	"cinerate/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateReview is returned when an insert trips the
// (user_id, tmdb_movie_id) uniqueness constraint. Two racing creates can
// both pass the service-level existence probe, so the constraint is the
// backstop and this sentinel lets the service map both paths to the same
// conflict answer.
var ErrDuplicateReview = errors.New("duplicate review")

const uniqueViolationCode = "23505"

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByMovieID(ctx context.Context, tmdbMovieID int64) ([]*entity.ReviewWithAuthor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, cursor *uuid.UUID, limit int) ([]*entity.Review, error)
	FindByUserAndMovie(ctx context.Context, userID uuid.UUID, tmdbMovieID int64) (*entity.Review, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, tmdb_movie_id, rating, content, contains_spoilers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.TMDBMovieID,
		review.Rating,
		review.Content,
		review.ContainsSpoilers,
		review.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateReview
		}

		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.Int64("tmdb_movie_id", review.TMDBMovieID),
		)
		return fmt.Errorf("create review for movie %d by user %s: %w",
			review.TMDBMovieID, review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, tmdb_movie_id, rating, content, contains_spoilers, created_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.TMDBMovieID,
		&review.Rating,
		&review.Content,
		&review.ContainsSpoilers,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, tmdbMovieID int64) ([]*entity.ReviewWithAuthor, error) {
	query := `
		SELECT r.id, r.user_id, r.tmdb_movie_id, r.rating, r.content, r.contains_spoilers, r.created_at,
		       u.name, u.username, u.avatar_url
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.tmdb_movie_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`

	rows, err := r.db.Query(ctx, query, tmdbMovieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int64("tmdb_movie_id", tmdbMovieID),
		)
		return nil, fmt.Errorf("find reviews by movie ID %d: %w", tmdbMovieID, err)
	}
	defer rows.Close()

	var reviews []*entity.ReviewWithAuthor
	for rows.Next() {
		var review entity.ReviewWithAuthor
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.TMDBMovieID,
			&review.Rating,
			&review.Content,
			&review.ContainsSpoilers,
			&review.CreatedAt,
			&review.AuthorName,
			&review.AuthorUsername,
			&review.AuthorAvatar,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

// FindByUserID pages with a keyset on (created_at, id) so rows inserted or
// deleted between requests never shift the page boundary. The cursor row
// itself is excluded; callers pass limit+1 to probe for a next page.
func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID, cursor *uuid.UUID, limit int) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, tmdb_movie_id, rating, content, contains_spoilers, created_at
		FROM reviews
		WHERE user_id = $1
		  AND ($2::uuid IS NULL OR (created_at, id) < (SELECT created_at, id FROM reviews WHERE id = $2))
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, userID, cursor, limit)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.TMDBMovieID,
			&review.Rating,
			&review.Content,
			&review.ContainsSpoilers,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID uuid.UUID, tmdbMovieID int64) (*entity.Review, error) {
	query := `
		SELECT id, user_id, tmdb_movie_id, rating, content, contains_spoilers, created_at
		FROM reviews
		WHERE user_id = $1 AND tmdb_movie_id = $2
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, tmdbMovieID).Scan(
		&review.ID,
		&review.UserID,
		&review.TMDBMovieID,
		&review.Rating,
		&review.Content,
		&review.ContainsSpoilers,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("tmdb_movie_id", tmdbMovieID),
		)
		return nil, fmt.Errorf("find review by user %s and movie %d: %w",
			userID.String(), tmdbMovieID, err)
	}

	return &review, nil
}

func (r *reviewRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reviews by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, content = $3, contains_spoilers = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Content,
		review.ContainsSpoilers,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}
