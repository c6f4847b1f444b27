package domain

import (
	"context"
	"time"
)

// Favorite links a user to a movie they have marked as a favorite.
// At most one row exists per (user, movie) pair.
type Favorite struct {
	ID        int64
	UserID    int64
	MovieID   int64
	CreatedAt time.Time
}

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	// Toggle flips the favorite state for the pair inside a single
	// transaction. It reports true when the favorite was added and false
	// when an existing favorite was removed.
	Toggle(ctx context.Context, userID, movieID int64) (added bool, err error)
	// ListMovies returns the user's favorited movies in the order they
	// were favorited.
	ListMovies(ctx context.Context, userID int64, offset, limit int) ([]Movie, error)
	// MovieIDs returns the set of movie ids the user has favorited.
	MovieIDs(ctx context.Context, userID int64) (map[int64]bool, error)
	// Exists reports whether the user currently has the movie favorited.
	Exists(ctx context.Context, userID, movieID int64) (bool, error)
}
