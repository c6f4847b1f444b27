package domain

import (
	"context"
	"time"
)

// Movie represents a catalog entry. Movies are read-only from the API's
// perspective and are seeded externally.
type Movie struct {
	ID        int64
	Title     string
	PosterURL string
	Overview  string
	CreatedAt time.Time
}

// MovieRepository defines persistence operations for movies.
type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetByID(ctx context.Context, id int64) (*Movie, error)
	List(ctx context.Context, offset, limit int) ([]Movie, error)
}
