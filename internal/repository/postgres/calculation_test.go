package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/RMahshie/adscorr/pkg/models"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRepository starts a PostgreSQL container and returns a repository with the schema applied
func setupRepository(t *testing.T) *PostgresCalculationRepository {
	t.Helper()
	ctx := context.Background()

	container, err := pgContainer.Run(ctx,
		"postgres:15-alpine",
		pgContainer.WithDatabase("adscorr_test"),
		pgContainer.WithUsername("testuser"),
		pgContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewPostgresCalculationRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	return repo
}

func newCalculation(createdAt time.Time, corrected float64) *models.Calculation {
	return &models.Calculation{
		ID: uuid.New().String(),
		Sources: models.Sources{
			Final:    "s3://frequencies/final.dat",
			Isolated: "/data/co.dat",
			Surface:  "/data/pt111.dat",
		},
		E0K:         -1.0,
		Temperature: 300,
		Linear:      true,
		Modes:       models.ModeCounts{Final: 2, Isolated: 1, Surface: 0},
		Result: models.Result{
			VibFinal:      0.052,
			VibIsolated:   0.026,
			Rotational:    0.025,
			Translational: 0.037,
			Corrected:     corrected,
		},
		CreatedAt: createdAt,
	}
}

func TestCalculationRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := setupRepository(t)
	ctx := context.Background()

	older := newCalculation(time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond), -1.1)
	newer := newCalculation(time.Now().UTC().Truncate(time.Microsecond), -1.0485933550311166)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.GetByID(ctx, uuid.MustParse(newer.ID))
	require.NoError(t, err)
	assert.Equal(t, newer.Sources, got.Sources)
	assert.Equal(t, newer.Modes, got.Modes)
	assert.Equal(t, newer.Result, got.Result)
	assert.True(t, newer.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, got.Linear)

	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
