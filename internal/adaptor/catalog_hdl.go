package adaptor

import (
	"net/http"
	"strconv"

	"cinerate/internal/usecase"
	"cinerate/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// Trending handles GET /api/movies/trending (public)
func (h *CatalogHandler) Trending(w http.ResponseWriter, r *http.Request) {
	window := r.URL.Query().Get("time_window")

	movies, err := h.service.Trending(r.Context(), window)
	if err != nil {
		respondServiceError(w, h.log, err, "get trending movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// NowPlaying handles GET /api/movies/now-playing (public)
func (h *CatalogHandler) NowPlaying(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	movies, err := h.service.NowPlaying(r.Context(), page)
	if err != nil {
		respondServiceError(w, h.log, err, "get now playing movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// Search handles GET /api/movies/search (public)
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	movies, err := h.service.Search(r.Context(), query, page)
	if err != nil {
		respondServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// MovieDetails handles GET /api/movies/{id} (public)
func (h *CatalogHandler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || movieID <= 0 {
		utils.ResponseBadRequest(w, "Movie ID must be a positive integer", nil)
		return
	}

	movie, err := h.service.MovieDetails(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "get movie details")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}
