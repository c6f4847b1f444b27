package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kaanc/movie-api/internal/domain"
	"github.com/kaanc/movie-api/internal/service"
)

// MovieHandler handles movie listing and favoriting HTTP requests.
type MovieHandler struct {
	movies *service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(movies *service.MovieService) *MovieHandler {
	return &MovieHandler{movies: movies}
}

// HandleList returns a page of movies annotated with the user's favorite
// state.
// GET /api/movie/list?skip=0&limit=100
func (h *MovieHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	skip, limit := paging(r)

	listings, err := h.movies.List(r.Context(), identity.User.ID, skip, limit)
	if err != nil {
		slog.Error("list movies", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, toMovieDTOs(listings))
}

// HandleToggleFavorite flips the user's favorite state for a movie.
// POST /api/movie/favorite/{movie_id}
// Response: {"message":"Favorite added"} or {"message":"Favorite removed"}
func (h *MovieHandler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	movieID, err := strconv.ParseInt(r.PathValue("movie_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie id")
		return
	}

	added, err := h.movies.ToggleFavorite(r.Context(), identity.User.ID, movieID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		slog.Error("toggle favorite", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	if added {
		writeMessage(w, "Favorite added")
	} else {
		writeMessage(w, "Favorite removed")
	}
}

// HandleFavorites returns a page of the user's favorited movies.
// GET /api/movie/favorites?skip=0&limit=100
func (h *MovieHandler) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	skip, limit := paging(r)

	listings, err := h.movies.ListFavorites(r.Context(), identity.User.ID, skip, limit)
	if err != nil {
		slog.Error("list favorites", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, toMovieDTOs(listings))
}

// paging reads skip/limit query parameters, falling back to the defaults
// when absent or malformed.
func paging(r *http.Request) (skip, limit int) {
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = service.DefaultListLimit
	}
	return skip, limit
}
