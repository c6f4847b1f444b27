package handler

import (
	"time"

	"github.com/kaanc/movie-api/internal/domain"
	"github.com/kaanc/movie-api/internal/service"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
	}
}

// MovieDTO is the JSON representation of a movie in a listing, annotated
// with the requesting user's favorite state.
type MovieDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PosterURL  string `json:"poster_url"`
	Overview   string `json:"overview"`
	CreatedAt  string `json:"created_at"`
	IsFavorite bool   `json:"is_favorite"`
}

func toMovieDTO(l service.MovieListing) MovieDTO {
	return MovieDTO{
		ID:         l.ID,
		Title:      l.Title,
		PosterURL:  l.PosterURL,
		Overview:   l.Overview,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		IsFavorite: l.IsFavorite,
	}
}

func toMovieDTOs(listings []service.MovieListing) []MovieDTO {
	dtos := make([]MovieDTO, len(listings))
	for i, l := range listings {
		dtos[i] = toMovieDTO(l)
	}
	return dtos
}
