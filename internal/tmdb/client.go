package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cinerate/pkg/utils"

	"go.uber.org/zap"
)

// Client is a stateless pass-through to the TMDB v3 API. No caching, no
// retries: a non-2xx answer surfaces as an error to the caller.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	GenreIDs     []int64 `json:"genre_ids"`
}

type MovieListResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

type CrewMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	ProfilePath *string `json:"profile_path"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type MovieDetails struct {
	Movie
	Genres  []Genre  `json:"genres"`
	Runtime int      `json:"runtime"`
	Tagline string   `json:"tagline"`
	Status  string   `json:"status"`
	Credits *Credits `json:"credits,omitempty"`
}

func New(config utils.TMDBConfig, log *zap.Logger) *Client {
	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log.With(zap.String("client", "tmdb")),
	}
}

// get issues one authenticated request. A 32-character credential is a v3
// key and goes in the query string; anything else is treated as a v4 read
// access token and sent as a Bearer header.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return fmt.Errorf("parse tmdb url %s: %w", endpoint, err)
	}

	if query == nil {
		query = url.Values{}
	}

	isV3Key := len(c.apiKey) == 32
	if isV3Key {
		query.Set("api_key", c.apiKey)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build tmdb request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if !isV3Key {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request %s: %w", endpoint, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		c.log.Warn("TMDB returned non-2xx",
			zap.String("endpoint", endpoint),
			zap.Int("status", res.StatusCode),
		)
		return fmt.Errorf("tmdb status %d: %s", res.StatusCode, string(body))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb response %s: %w", endpoint, err)
	}

	return nil
}

// Trending fetches trending movies for a window of "day" or "week".
func (c *Client) Trending(ctx context.Context, window string) (*MovieListResponse, error) {
	if window == "" {
		window = "week"
	}

	var out MovieListResponse
	if err := c.get(ctx, "/trending/movie/"+window, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) NowPlaying(ctx context.Context, page int) (*MovieListResponse, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", fmt.Sprint(page))
	}

	var out MovieListResponse
	if err := c.get(ctx, "/movie/now_playing", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchMovies(ctx context.Context, queryText string, page int) (*MovieListResponse, error) {
	query := url.Values{}
	query.Set("query", queryText)
	if page > 0 {
		query.Set("page", fmt.Sprint(page))
	}

	var out MovieListResponse
	if err := c.get(ctx, "/search/movie", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MovieDetails fetches one movie with its credits in a single round trip.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	query := url.Values{}
	query.Set("append_to_response", "credits")

	var out MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
