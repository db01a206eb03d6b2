package wire

import (
	"cinerate/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Catalog routes are all public, the server-held TMDB credential never
// reaches the client.
func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/api/movies/trending", catalogHandler.Trending)
	r.Get("/api/movies/now-playing", catalogHandler.NowPlaying)
	r.Get("/api/movies/search", catalogHandler.Search)
	r.Get("/api/movies/{id}", catalogHandler.MovieDetails)
}
