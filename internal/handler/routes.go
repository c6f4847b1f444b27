package handler

import (
	"net/http"

	"github.com/kaanc/movie-api/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, movies *service.MovieService) {
	authHandler := NewAuthHandler(auth)
	movieHandler := NewMovieHandler(movies)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Public auth routes.
	mux.HandleFunc("POST /api/user/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/user/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/user/refresh", authHandler.HandleRefresh)

	// Protected routes behind the session guard.
	mux.Handle("POST /api/user/logout", RequireAuth(auth, http.HandlerFunc(authHandler.HandleLogout)))
	mux.Handle("GET /api/user/profile", RequireAuth(auth, http.HandlerFunc(authHandler.HandleProfile)))
	mux.Handle("POST /api/user/upload_photo", RequireAuth(auth, http.HandlerFunc(authHandler.HandleUploadPhoto)))
	mux.Handle("GET /api/movie/list", RequireAuth(auth, http.HandlerFunc(movieHandler.HandleList)))
	mux.Handle("POST /api/movie/favorite/{movie_id}", RequireAuth(auth, http.HandlerFunc(movieHandler.HandleToggleFavorite)))
	mux.Handle("GET /api/movie/favorites", RequireAuth(auth, http.HandlerFunc(movieHandler.HandleFavorites)))
}
