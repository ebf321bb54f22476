package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RMahshie/adscorr/internal/repository"
	"github.com/RMahshie/adscorr/pkg/models"
	"github.com/google/uuid"
)

const schema = `
	CREATE TABLE IF NOT EXISTS calculations (
		id               UUID PRIMARY KEY,
		final_source     TEXT NOT NULL,
		isolated_source  TEXT NOT NULL,
		surface_source   TEXT NOT NULL,
		final_modes      INTEGER NOT NULL,
		isolated_modes   INTEGER NOT NULL,
		surface_modes    INTEGER NOT NULL,
		e0k              DOUBLE PRECISION NOT NULL,
		temperature      DOUBLE PRECISION NOT NULL,
		linear           BOOLEAN NOT NULL,
		vib_final        DOUBLE PRECISION NOT NULL,
		vib_isolated     DOUBLE PRECISION NOT NULL,
		vib_surface      DOUBLE PRECISION NOT NULL,
		rotational       DOUBLE PRECISION NOT NULL,
		translational    DOUBLE PRECISION NOT NULL,
		corrected        DOUBLE PRECISION NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL
	)`

const selectColumns = `
	SELECT id, final_source, isolated_source, surface_source,
	       final_modes, isolated_modes, surface_modes,
	       e0k, temperature, linear,
	       vib_final, vib_isolated, vib_surface, rotational, translational, corrected,
	       created_at
	FROM calculations`

// PostgresCalculationRepository implements CalculationRepository for PostgreSQL
type PostgresCalculationRepository struct {
	db *sql.DB
}

// NewPostgresCalculationRepository creates a new PostgreSQL calculation repository
func NewPostgresCalculationRepository(db *sql.DB) *PostgresCalculationRepository {
	return &PostgresCalculationRepository{db: db}
}

var _ repository.CalculationRepository = (*PostgresCalculationRepository)(nil)

// EnsureSchema creates the calculations table if it does not exist
func (r *PostgresCalculationRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create calculations table: %w", err)
	}
	return nil
}

// Create inserts a new calculation record
func (r *PostgresCalculationRepository) Create(ctx context.Context, calc *models.Calculation) error {
	query := `
		INSERT INTO calculations (
			id, final_source, isolated_source, surface_source,
			final_modes, isolated_modes, surface_modes,
			e0k, temperature, linear,
			vib_final, vib_isolated, vib_surface, rotational, translational, corrected,
			created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecContext(ctx, query,
		calc.ID,
		calc.Sources.Final,
		calc.Sources.Isolated,
		calc.Sources.Surface,
		calc.Modes.Final,
		calc.Modes.Isolated,
		calc.Modes.Surface,
		calc.E0K,
		calc.Temperature,
		calc.Linear,
		calc.Result.VibFinal,
		calc.Result.VibIsolated,
		calc.Result.VibSurface,
		calc.Result.Rotational,
		calc.Result.Translational,
		calc.Result.Corrected,
		calc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert calculation: %w", err)
	}
	return nil
}

// GetByID retrieves a calculation by ID. A missing row yields sql.ErrNoRows.
func (r *PostgresCalculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Calculation, error) {
	calc, err := scanCalculation(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return calc, nil
}

// List returns the most recent calculations, newest first
func (r *PostgresCalculationRepository) List(ctx context.Context, limit int) ([]*models.Calculation, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []*models.Calculation
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}

	return calcs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row scanner) (*models.Calculation, error) {
	var calc models.Calculation
	err := row.Scan(
		&calc.ID,
		&calc.Sources.Final,
		&calc.Sources.Isolated,
		&calc.Sources.Surface,
		&calc.Modes.Final,
		&calc.Modes.Isolated,
		&calc.Modes.Surface,
		&calc.E0K,
		&calc.Temperature,
		&calc.Linear,
		&calc.Result.VibFinal,
		&calc.Result.VibIsolated,
		&calc.Result.VibSurface,
		&calc.Result.Rotational,
		&calc.Result.Translational,
		&calc.Result.Corrected,
		&calc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &calc, nil
}
