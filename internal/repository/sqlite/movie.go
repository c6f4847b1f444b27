package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kaanc/movie-api/internal/domain"
)

// MovieRepository implements domain.MovieRepository using SQLite.
type MovieRepository struct {
	db *sql.DB
}

// NewMovieRepository creates a new SQLite-backed MovieRepository.
func NewMovieRepository(db *DB) *MovieRepository {
	return &MovieRepository{db: db.SqlDB}
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO movies (title, poster_url, overview, created_at)
		 VALUES (?, ?, ?, ?)`,
		movie.Title, movie.PosterURL, movie.Overview, now,
	)
	if err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	movie.ID = id
	movie.CreatedAt = now
	return nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	m := &domain.Movie{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, poster_url, overview, created_at
		 FROM movies WHERE id = ?`, id,
	).Scan(&m.ID, &m.Title, &m.PosterURL, &m.Overview, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	return m, nil
}

// List returns movies in stable insertion order.
func (r *MovieRepository) List(ctx context.Context, offset, limit int) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, poster_url, overview, created_at
		 FROM movies ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()
	return scanMovies(rows)
}

func scanMovies(rows *sql.Rows) ([]domain.Movie, error) {
	var movies []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.PosterURL, &m.Overview, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}
