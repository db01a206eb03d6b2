package usecase

import (
	"context"
	"errors"
	"testing"

	"cinerate/internal/tmdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCatalogGateway struct {
	lastWindow string
	lastQuery  string
	lastPage   int
	err        error
}

func (f *fakeCatalogGateway) Trending(ctx context.Context, window string) (*tmdb.MovieListResponse, error) {
	f.lastWindow = window
	if f.err != nil {
		return nil, f.err
	}
	return &tmdb.MovieListResponse{Page: 1}, nil
}

func (f *fakeCatalogGateway) NowPlaying(ctx context.Context, page int) (*tmdb.MovieListResponse, error) {
	f.lastPage = page
	if f.err != nil {
		return nil, f.err
	}
	return &tmdb.MovieListResponse{Page: page}, nil
}

func (f *fakeCatalogGateway) SearchMovies(ctx context.Context, query string, page int) (*tmdb.MovieListResponse, error) {
	f.lastQuery = query
	f.lastPage = page
	if f.err != nil {
		return nil, f.err
	}
	return &tmdb.MovieListResponse{Page: page}, nil
}

func (f *fakeCatalogGateway) MovieDetails(ctx context.Context, id int64) (*tmdb.MovieDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &tmdb.MovieDetails{Movie: tmdb.Movie{ID: id}}, nil
}

func TestCatalogTrending_WindowValidation(t *testing.T) {
	gateway := &fakeCatalogGateway{}
	svc := NewCatalogService(gateway, zap.NewNop())

	_, err := svc.Trending(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "week", gateway.lastWindow)

	_, err = svc.Trending(context.Background(), "day")
	require.NoError(t, err)
	assert.Equal(t, "day", gateway.lastWindow)

	_, err = svc.Trending(context.Background(), "month")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogSearch_RequiresQuery(t *testing.T) {
	gateway := &fakeCatalogGateway{}
	svc := NewCatalogService(gateway, zap.NewNop())

	_, err := svc.Search(context.Background(), "   ", 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Search(context.Background(), " dune ", 0)
	require.NoError(t, err)
	assert.Equal(t, "dune", gateway.lastQuery)
	assert.Equal(t, 1, gateway.lastPage, "page defaults to 1")
}

func TestCatalog_UpstreamFailuresAreWrapped(t *testing.T) {
	gateway := &fakeCatalogGateway{err: errors.New("tmdb status 503")}
	svc := NewCatalogService(gateway, zap.NewNop())

	_, err := svc.Trending(context.Background(), "week")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = svc.NowPlaying(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = svc.MovieDetails(context.Background(), 603)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestCatalogMovieDetails_RejectsNonPositiveID(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogGateway{}, zap.NewNop())

	_, err := svc.MovieDetails(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidation)
}
