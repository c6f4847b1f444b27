package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kaanc/movie-api/internal/domain"
)

// FavoriteRepository implements domain.FavoriteRepository using SQLite.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new SQLite-backed FavoriteRepository.
func NewFavoriteRepository(db *DB) *FavoriteRepository {
	return &FavoriteRepository{db: db.SqlDB}
}

// Toggle flips the favorite state for (userID, movieID) inside a single
// transaction. Delete-first keeps each branch a single write; the
// UNIQUE(user_id, movie_id) constraint backstops concurrent inserts.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID, movieID int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = ? AND movie_id = ?", userID, movieID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	if deleted > 0 {
		return false, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO favorites (user_id, movie_id, created_at) VALUES (?, ?, ?)",
		userID, movieID, time.Now().UTC(),
	); err != nil {
		return false, fmt.Errorf("insert favorite: %w", err)
	}

	return true, tx.Commit()
}

// ListMovies returns the user's favorited movies in the order they were
// favorited.
func (r *FavoriteRepository) ListMovies(ctx context.Context, userID int64, offset, limit int) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT m.id, m.title, m.poster_url, m.overview, m.created_at
		 FROM favorites f
		 JOIN movies m ON m.id = f.movie_id
		 WHERE f.user_id = ?
		 ORDER BY f.id LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list favorite movies: %w", err)
	}
	defer rows.Close()
	return scanMovies(rows)
}

// MovieIDs returns the set of movie ids the user has favorited.
func (r *FavoriteRepository) MovieIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT movie_id FROM favorites WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("query favorite ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite id: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM favorites WHERE user_id = ? AND movie_id = ?",
		userID, movieID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count favorites: %w", err)
	}
	return n > 0, nil
}
