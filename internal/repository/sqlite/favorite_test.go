package sqlite_test

import (
	"context"
	"testing"

	"github.com/kaanc/movie-api/internal/domain"
	"github.com/kaanc/movie-api/internal/repository/sqlite"
)

func seedUser(t *testing.T, db *sqlite.DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	if err := sqlite.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("Create user %s: %v", username, err)
	}
	return user
}

func TestFavoriteRepository_Toggle_AddThenRemove(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "toggler")
	movies := seedMovies(t, db, 1)

	added, err := repo.Toggle(ctx, user.ID, movies[0].ID)
	if err != nil {
		t.Fatalf("first Toggle: %v", err)
	}
	if !added {
		t.Fatal("expected first toggle to add the favorite")
	}

	exists, err := repo.Exists(ctx, user.ID, movies[0].ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatal("expected favorite row to exist after first toggle")
	}

	added, err = repo.Toggle(ctx, user.ID, movies[0].ID)
	if err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	if added {
		t.Fatal("expected second toggle to remove the favorite")
	}

	exists, err = repo.Exists(ctx, user.ID, movies[0].ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("expected favorite row to be gone after second toggle")
	}
}

func TestFavoriteRepository_Toggle_UniquePerPair(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "unique")
	movies := seedMovies(t, db, 1)

	if _, err := repo.Toggle(ctx, user.ID, movies[0].ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	// A direct duplicate insert must violate the uniqueness constraint.
	_, err := db.SqlDB.ExecContext(ctx,
		"INSERT INTO favorites (user_id, movie_id) VALUES (?, ?)",
		user.ID, movies[0].ID)
	if err == nil {
		t.Fatal("expected unique constraint violation for duplicate favorite")
	}
}

func TestFavoriteRepository_ListMovies_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "lister")
	movies := seedMovies(t, db, 3)

	// Favorite in reverse catalog order; listing must follow favoriting order.
	for i := len(movies) - 1; i >= 0; i-- {
		if _, err := repo.Toggle(ctx, user.ID, movies[i].ID); err != nil {
			t.Fatalf("Toggle movie %d: %v", movies[i].ID, err)
		}
	}

	favorites, err := repo.ListMovies(ctx, user.ID, 0, 100)
	if err != nil {
		t.Fatalf("ListMovies: %v", err)
	}

	if len(favorites) != 3 {
		t.Fatalf("expected 3 favorites, got %d", len(favorites))
	}
	for i, want := range []int64{movies[2].ID, movies[1].ID, movies[0].ID} {
		if favorites[i].ID != want {
			t.Fatalf("expected favorite %d to be movie %d, got %d", i, want, favorites[i].ID)
		}
	}
	if favorites[0].Title != movies[2].Title {
		t.Fatalf("expected joined movie fields, got title %q", favorites[0].Title)
	}
}

func TestFavoriteRepository_MovieIDs(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "idset")
	other := seedUser(t, db, "other")
	movies := seedMovies(t, db, 3)

	if _, err := repo.Toggle(ctx, user.ID, movies[0].ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := repo.Toggle(ctx, user.ID, movies[2].ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := repo.Toggle(ctx, other.ID, movies[1].ID); err != nil {
		t.Fatalf("Toggle other: %v", err)
	}

	ids, err := repo.MovieIDs(ctx, user.ID)
	if err != nil {
		t.Fatalf("MovieIDs: %v", err)
	}

	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	if !ids[movies[0].ID] || !ids[movies[2].ID] {
		t.Fatalf("expected ids for movies %d and %d, got %v", movies[0].ID, movies[2].ID, ids)
	}
	if ids[movies[1].ID] {
		t.Fatal("did not expect another user's favorite in the id set")
	}
}
