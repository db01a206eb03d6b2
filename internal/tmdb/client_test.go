package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinerate/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const v3Key = "0123456789abcdef0123456789abcdef" // 32 chars

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New(utils.TMDBConfig{APIKey: apiKey, BaseURL: srv.URL}, zap.NewNop())
	return client, srv
}

func TestClient_V3KeyGoesInQuery(t *testing.T) {
	var gotKey, gotAuth string
	client, _ := newTestClient(t, v3Key, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	_, err := client.Trending(context.Background(), "week")
	require.NoError(t, err)

	assert.Equal(t, v3Key, gotKey)
	assert.Empty(t, gotAuth)
}

func TestClient_V4TokenGoesInHeader(t *testing.T) {
	token := "eyJhbGciOiJIUzI1NiJ9.long-read-access-token"

	var gotKey, gotAuth string
	client, _ := newTestClient(t, token, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	_, err := client.Trending(context.Background(), "day")
	require.NoError(t, err)

	assert.Empty(t, gotKey)
	assert.Equal(t, "Bearer "+token, gotAuth)
}

func TestClient_Trending_DefaultsToWeek(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, v3Key, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	_, err := client.Trending(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "/trending/movie/week", gotPath)
}

func TestClient_SearchMovies(t *testing.T) {
	client, _ := newTestClient(t, v3Key, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "dune part two", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{
			"page": 2,
			"results": [{"id": 693134, "title": "Dune: Part Two", "vote_average": 8.2}],
			"total_pages": 3,
			"total_results": 41
		}`))
	})

	out, err := client.SearchMovies(context.Background(), "dune part two", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Page)
	require.Len(t, out.Results, 1)
	assert.Equal(t, int64(693134), out.Results[0].ID)
	assert.Equal(t, "Dune: Part Two", out.Results[0].Title)
}

func TestClient_MovieDetails_AppendsCredits(t *testing.T) {
	client, _ := newTestClient(t, v3Key, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		assert.Equal(t, "credits", r.URL.Query().Get("append_to_response"))
		w.Write([]byte(`{
			"id": 603,
			"title": "The Matrix",
			"runtime": 136,
			"genres": [{"id": 28, "name": "Action"}],
			"credits": {"cast": [{"id": 6384, "name": "Keanu Reeves", "character": "Neo"}], "crew": []}
		}`))
	})

	out, err := client.MovieDetails(context.Background(), 603)
	require.NoError(t, err)

	assert.Equal(t, 136, out.Runtime)
	require.Len(t, out.Genres, 1)
	require.NotNil(t, out.Credits)
	assert.Equal(t, "Keanu Reeves", out.Credits.Cast[0].Name)
}

func TestClient_NonOKStatusIsError(t *testing.T) {
	client, _ := newTestClient(t, v3Key, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_message":"The resource you requested could not be found."}`))
	})

	_, err := client.MovieDetails(context.Background(), 999999999)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "404"))
}
