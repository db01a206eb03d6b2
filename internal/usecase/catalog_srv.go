package usecase

import (
	"context"
	"fmt"
	"strings"

	"cinerate/internal/tmdb"

	"go.uber.org/zap"
)

// CatalogGateway is the boundary to the external movie catalog.
// *tmdb.Client satisfies it.
type CatalogGateway interface {
	Trending(ctx context.Context, window string) (*tmdb.MovieListResponse, error)
	NowPlaying(ctx context.Context, page int) (*tmdb.MovieListResponse, error)
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.MovieListResponse, error)
	MovieDetails(ctx context.Context, id int64) (*tmdb.MovieDetails, error)
}

type CatalogService interface {
	Trending(ctx context.Context, window string) (*tmdb.MovieListResponse, error)
	NowPlaying(ctx context.Context, page int) (*tmdb.MovieListResponse, error)
	Search(ctx context.Context, query string, page int) (*tmdb.MovieListResponse, error)
	MovieDetails(ctx context.Context, id int64) (*tmdb.MovieDetails, error)
}

type catalogService struct {
	gateway CatalogGateway
	log     *zap.Logger
}

func NewCatalogService(gateway CatalogGateway, log *zap.Logger) CatalogService {
	return &catalogService{
		gateway: gateway,
		log:     log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Trending(ctx context.Context, window string) (*tmdb.MovieListResponse, error) {
	if window == "" {
		window = "week"
	}
	if window != "day" && window != "week" {
		return nil, fmt.Errorf("%w: time window must be day or week", ErrValidation)
	}

	out, err := s.gateway.Trending(ctx, window)
	if err != nil {
		s.log.Error("Failed to fetch trending movies", zap.Error(err), zap.String("window", window))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return out, nil
}

func (s *catalogService) NowPlaying(ctx context.Context, page int) (*tmdb.MovieListResponse, error) {
	if page < 1 {
		page = 1
	}

	out, err := s.gateway.NowPlaying(ctx, page)
	if err != nil {
		s.log.Error("Failed to fetch now playing movies", zap.Error(err), zap.Int("page", page))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return out, nil
}

func (s *catalogService) Search(ctx context.Context, query string, page int) (*tmdb.MovieListResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidation)
	}
	if page < 1 {
		page = 1
	}

	out, err := s.gateway.SearchMovies(ctx, query, page)
	if err != nil {
		s.log.Error("Failed to search movies", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return out, nil
}

func (s *catalogService) MovieDetails(ctx context.Context, id int64) (*tmdb.MovieDetails, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: movie id must be positive", ErrValidation)
	}

	out, err := s.gateway.MovieDetails(ctx, id)
	if err != nil {
		s.log.Error("Failed to fetch movie details", zap.Error(err), zap.Int64("tmdb_movie_id", id))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return out, nil
}
