package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"heritage/pkg/domain"
	"heritage/pkg/storage"
	"heritage/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func newSite(name string) domain.HeritageSite {
	return domain.HeritageSite{
		Name:        name,
		Description: "a site created by a test",
		Category:    domain.HeritageSiteCategory{ID: 1},
	}
}

func countSitesNamed(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM heritage_site WHERE site_name = $1`, name)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.ErrorIs(t, inner.Ping(ctx), storage.ErrAlreadyInTx)
	require.NoError(t, pg.Ping(ctx))

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: commit inserts
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreSite(ctx, newSite("Committed Site"))
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	require.Equal(t, 1, countSitesNamed(t, db, "Committed Site"))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	id, err := txStorage.StoreSite(ctx, newSite("Rolled Back Site"))
	require.NoError(t, err)
	require.NoError(t, txStorage.ReplaceJurisdictions(ctx, id, []domain.CountryAreaID{8}))
	require.NoError(t, txStorage.Rollback())

	require.Equal(t, 0, countSitesNamed(t, db, "Rolled Back Site"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		id, e := s.StoreSite(ctx, newSite("Seven"))
		if e != nil {
			return e //nolint: wrapcheck
		}

		return s.ReplaceJurisdictions(ctx, id, []domain.CountryAreaID{8, 9}) //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countSitesNamed(t, db, "Seven"))

	// a failing callback leaves neither the site nor its jurisdictions behind
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		id, e := s.StoreSite(ctx, newSite("Nine"))
		if e != nil {
			return e //nolint: wrapcheck
		}
		_ = s.ReplaceJurisdictions(ctx, id, []domain.CountryAreaID{8})

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countSitesNamed(t, db, "Nine"))
}
