package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(Config{
		Type:       "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestNewDBUnsupportedType(t *testing.T) {
	_, err := NewDB(Config{Type: "mysql"})
	assert.ErrorContains(t, err, "unsupported database type")
}

func TestNewDBInMemory(t *testing.T) {
	db, err := NewDB(Config{Type: "sqlite", SQLitePath: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	reviews, err := NewReviewRepository(db).ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, reviews, len(fixturePending))
}

func TestSeedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")

	for i := 0; i < 3; i++ {
		db, err := NewDB(Config{Type: "sqlite", SQLitePath: path})
		require.NoError(t, err)
		require.NoError(t, db.Close())
	}

	db, err := NewDB(Config{Type: "sqlite", SQLitePath: path})
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.Conn().QueryRow(`SELECT COUNT(*) FROM pending_reviews`).Scan(&count))
	assert.Equal(t, len(fixturePending), count)

	require.NoError(t, db.Conn().QueryRow(`SELECT COUNT(*) FROM mock_result_feedback`).Scan(&count))
	assert.Equal(t, 7, count)
}

func TestRebind(t *testing.T) {
	sqlite := &DB{dbType: "sqlite"}
	postgres := &DB{dbType: "postgres"}

	query := `SELECT * FROM t WHERE a = ? AND b = ?`
	assert.Equal(t, query, sqlite.rebind(query))
	assert.Equal(t, `SELECT * FROM t WHERE a = $1 AND b = $2`, postgres.rebind(query))
}

func TestResultRepository_DefaultResult(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)

	result, err := repo.DefaultResult(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(fixtureResult, *result); diff != "" {
		t.Errorf("default result mismatch (-want +got):\n%s", diff)
	}
}

func TestResultRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)

	_, err := repo.GetResult(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewRepository_ListPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)

	reviews, err := repo.ListPending(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(fixturePending, reviews); diff != "" {
		t.Errorf("pending reviews mismatch (-want +got):\n%s", diff)
	}
}

func TestReviewRepository_GetPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)

	review, err := repo.GetPending(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", review.Name)
	assert.Equal(t, 18, review.AIReps)

	_, err = repo.GetPending(context.Background(), "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewRepository_ListCorrections(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)

	corrections, err := repo.ListCorrections(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(fixtureCorrections, corrections); diff != "" {
		t.Errorf("corrections mismatch (-want +got):\n%s", diff)
	}
}
