package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tariffcalc/tariffcalc/pkg/models"
)

// Store reads and seeds a tariff table kept in a SQLite database.
type Store struct {
	db *sql.DB
}

const createTariffsTable = `
CREATE TABLE IF NOT EXISTS tariffs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	power_rate REAL,
	gas_rate REAL,
	standing_charge REAL NOT NULL DEFAULT 0
);
`

// New opens the database at dbPath and runs auto-migration.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open prices db: %w", err)
	}

	if _, err := db.Exec(createTariffsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate prices db: %w", err)
	}

	return &Store{db: db}, nil
}

// Tariffs returns every tariff in insertion order. A NULL rate means the
// tariff does not supply that fuel.
func (s *Store) Tariffs(ctx context.Context) ([]models.TariffRate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, power_rate, gas_rate, standing_charge FROM tariffs ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query tariffs: %w", err)
	}
	defer rows.Close()

	var tariffs []models.TariffRate
	for rows.Next() {
		var (
			t          models.TariffRate
			power, gas sql.NullFloat64
		)
		if err := rows.Scan(&t.Name, &power, &gas, &t.MonthlyStandingCharge); err != nil {
			return nil, fmt.Errorf("scan tariff: %w", err)
		}
		if power.Valid {
			t.Rates.Power = models.Float(power.Float64)
		}
		if gas.Valid {
			t.Rates.Gas = models.Float(gas.Float64)
		}
		tariffs = append(tariffs, t)
	}
	return tariffs, rows.Err()
}

// Replace swaps the stored table for tariffs in a single transaction.
func (s *Store) Replace(ctx context.Context, tariffs []models.TariffRate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tariffs`); err != nil {
		return fmt.Errorf("clear tariffs: %w", err)
	}
	for _, t := range tariffs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO tariffs (name, power_rate, gas_rate, standing_charge) VALUES (?, ?, ?, ?)`,
			t.Name, nullRate(t.Rates.Power), nullRate(t.Rates.Gas), t.MonthlyStandingCharge,
		)
		if err != nil {
			return fmt.Errorf("insert tariff %q: %w", t.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func nullRate(r *float64) sql.NullFloat64 {
	if r == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *r, Valid: true}
}
