package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kaanc/movie-api/internal/domain"
	"github.com/kaanc/movie-api/internal/repository/sqlite"
)

func seedMovies(t *testing.T, db *sqlite.DB, count int) []domain.Movie {
	t.Helper()
	repo := sqlite.NewMovieRepository(db)
	ctx := context.Background()

	movies := make([]domain.Movie, count)
	for i := 0; i < count; i++ {
		m := domain.Movie{
			Title:     fmt.Sprintf("Movie %d", i+1),
			PosterURL: fmt.Sprintf("https://example.com/poster%d.jpg", i+1),
			Overview:  fmt.Sprintf("Overview %d", i+1),
		}
		if err := repo.Create(ctx, &m); err != nil {
			t.Fatalf("Create movie %d: %v", i+1, err)
		}
		movies[i] = m
	}
	return movies
}

func TestMovieRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMovieRepository(db)
	ctx := context.Background()

	movie := &domain.Movie{Title: "Inception", Overview: "A heist in dreams."}
	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if movie.ID == 0 {
		t.Fatal("expected movie ID to be set after create")
	}
	if movie.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestMovieRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMovieRepository(db)
	movies := seedMovies(t, db, 1)

	found, err := repo.GetByID(context.Background(), movies[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Title != movies[0].Title {
		t.Fatalf("expected title %q, got %q", movies[0].Title, found.Title)
	}
}

func TestMovieRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMovieRepository(db)

	_, err := repo.GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMovieRepository_List_Order(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMovieRepository(db)
	seedMovies(t, db, 5)

	movies, err := repo.List(context.Background(), 0, 100)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(movies) != 5 {
		t.Fatalf("expected 5 movies, got %d", len(movies))
	}
	for i := 1; i < len(movies); i++ {
		if movies[i].ID <= movies[i-1].ID {
			t.Fatalf("expected stable insertion order, got ids %d then %d", movies[i-1].ID, movies[i].ID)
		}
	}
}

func TestMovieRepository_List_Pagination(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMovieRepository(db)
	seeded := seedMovies(t, db, 5)

	page, err := repo.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(page) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(page))
	}
	if page[0].ID != seeded[2].ID {
		t.Fatalf("expected page to start at id %d, got %d", seeded[2].ID, page[0].ID)
	}
}
