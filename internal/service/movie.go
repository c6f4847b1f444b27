package service

import (
	"context"
	"fmt"

	"github.com/kaanc/movie-api/internal/domain"
)

// DefaultListLimit is the page size used when the client does not supply one.
const DefaultListLimit = 100

// MovieListing is a movie annotated with the requesting user's favorite
// state.
type MovieListing struct {
	domain.Movie
	IsFavorite bool
}

// MovieService handles movie listing and per-user favoriting.
type MovieService struct {
	movies    domain.MovieRepository
	favorites domain.FavoriteRepository
}

// NewMovieService creates a new MovieService.
func NewMovieService(movies domain.MovieRepository, favorites domain.FavoriteRepository) *MovieService {
	return &MovieService{movies: movies, favorites: favorites}
}

// List returns a page of movies, each annotated with whether the user has
// favorited it. The favorite id set is fetched once per request rather than
// per movie.
func (s *MovieService) List(ctx context.Context, userID int64, skip, limit int) ([]MovieListing, error) {
	skip, limit = clampPage(skip, limit)

	movies, err := s.movies.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	favoriteIDs, err := s.favorites.MovieIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favorite ids: %w", err)
	}

	listings := make([]MovieListing, len(movies))
	for i, m := range movies {
		listings[i] = MovieListing{Movie: m, IsFavorite: favoriteIDs[m.ID]}
	}
	return listings, nil
}

// ToggleFavorite flips the user's favorite state for the movie and reports
// whether the favorite was added.
func (s *MovieService) ToggleFavorite(ctx context.Context, userID, movieID int64) (bool, error) {
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		return false, err
	}

	added, err := s.favorites.Toggle(ctx, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return added, nil
}

// ListFavorites returns a page of the user's favorited movies in the order
// they were favorited.
func (s *MovieService) ListFavorites(ctx context.Context, userID int64, skip, limit int) ([]MovieListing, error) {
	skip, limit = clampPage(skip, limit)

	movies, err := s.favorites.ListMovies(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	listings := make([]MovieListing, len(movies))
	for i, m := range movies {
		listings[i] = MovieListing{Movie: m, IsFavorite: true}
	}
	return listings, nil
}

func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return skip, limit
}
