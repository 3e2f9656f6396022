package authors

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mateuszwwwrobel/bookstore/pkg/errcodes"
	"github.com/mateuszwwwrobel/bookstore/pkg/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestCreateAuthor(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	author := &Author{Name: "Tolkien"}
	err := svc.CreateAuthor(ctx, author)
	require.NoError(t, err)
	assert.NotZero(t, author.ID)
	assert.False(t, author.CreatedAt.IsZero())
	assert.Equal(t, author.CreatedAt, author.UpdatedAt)
}

func TestCreateAuthor_DuplicateName(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	require.NoError(t, svc.CreateAuthor(ctx, &Author{Name: "Tolkien"}))

	err := svc.CreateAuthor(ctx, &Author{Name: "Tolkien"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.Conflict("Author"))
}

func TestRetrieveAuthor_ByName(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	created := &Author{Name: "Sapkowski"}
	require.NoError(t, svc.CreateAuthor(ctx, created))

	name := "Sapkowski"
	author, err := svc.RetrieveAuthor(ctx, RetrieveAuthorOptions{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, created.ID, author.ID)

	// Exact match only.
	name = "sapkowski"
	_, err = svc.RetrieveAuthor(ctx, RetrieveAuthorOptions{Name: &name})
	assert.ErrorIs(t, err, errcodes.NotFound("Author"))
}

func TestFindOrCreateAuthor(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	first, err := svc.FindOrCreateAuthor(ctx, "Lem")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// Second call returns the same row rather than creating a duplicate.
	second, err := svc.FindOrCreateAuthor(ctx, "Lem")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, total, err := svc.ListAuthorsWithTotal(ctx, ListAuthorsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestFindOrCreateAuthor_TrimsAndRejectsEmpty(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	author, err := svc.FindOrCreateAuthor(ctx, "  Lem  ")
	require.NoError(t, err)
	assert.Equal(t, "Lem", author.Name)

	_, err = svc.FindOrCreateAuthor(ctx, "   ")
	assert.Error(t, err)
}

func TestListAuthors_OrderedByName(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	for _, name := range []string{"Zelazny", "Asimov", "Lem"} {
		require.NoError(t, svc.CreateAuthor(ctx, &Author{Name: name}))
	}

	authors, total, err := svc.ListAuthorsWithTotal(ctx, ListAuthorsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, authors, 3)
	assert.Equal(t, "Asimov", authors[0].Name)
	assert.Equal(t, "Lem", authors[1].Name)
	assert.Equal(t, "Zelazny", authors[2].Name)
}

func TestDeleteAuthor(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	author := &Author{Name: "Tolkien"}
	require.NoError(t, svc.CreateAuthor(ctx, author))

	require.NoError(t, svc.DeleteAuthor(ctx, author.ID))

	_, err := svc.RetrieveAuthor(ctx, RetrieveAuthorOptions{ID: &author.ID})
	assert.ErrorIs(t, err, errcodes.NotFound("Author"))

	err = svc.DeleteAuthor(ctx, author.ID)
	assert.ErrorIs(t, err, errcodes.NotFound("Author"))
}
