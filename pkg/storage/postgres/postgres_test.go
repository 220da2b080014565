package postgres_test

import (
	"context"
	"database/sql"
	"heritage/migrations"
	"heritage/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// catalogDB describes the throwaway database every storage test runs against.
var catalogDB = postgres.Options{ //nolint: gochecknoglobals
	Username:           "heritage",
	Password:           "heritage",
	Database:           "unesco_heritage_sites_test",
	SslMode:            "disable",
	ConnMaxLifetime:    time.Minute,
	ConnMaxIdleTime:    time.Minute,
	MaxOpenConnections: 5,
	MaxIdleConnections: 2,
}

// startCatalogDB runs Postgres in a container and returns the connection
// options pointing at it.
func startCatalogDB(ctx context.Context, t *testing.T) (postgres.Options, testcontainers.Container) {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     catalogDB.Username,
				"POSTGRES_PASSWORD": catalogDB.Password,
				"POSTGRES_DB":       catalogDB.Database,
			},
			// the server restarts once after running its init scripts
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err, "could not start postgres container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	options := catalogDB
	options.Host = host
	options.Port = port.Int()

	return options, container
}

// setupTestDB returns storage over a new database holding the catalog schema
// and the reference fixtures.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	options, container := startCatalogDB(ctx, t)

	pgSQL, err := postgres.New(ctx, options)
	require.NoError(t, err)
	require.NoError(t, pgSQL.Ping(ctx))
	require.NoError(t, migrations.Up(pgSQL.DB.(*sql.DB)))

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = container.Terminate(ctx)
	}
}
