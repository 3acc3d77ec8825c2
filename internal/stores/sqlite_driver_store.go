package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"driver-tips/internal/models"

	"github.com/mattn/go-sqlite3"
)

type sqliteDriverStore struct {
	conn *sql.DB
}

// NewSQLiteDriverStore opens the drivers database and initializes the schema.
func NewSQLiteDriverStore(dbPath string) (DriverStore, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &sqliteDriverStore{conn: conn}
	if err := store.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *sqliteDriverStore) initSchema() error {
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS drivers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`)
	return err
}

func (s *sqliteDriverStore) Create(ctx context.Context, driver *models.Driver) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO drivers (id, name, phone, created_at) VALUES (?, ?, ?, ?)`,
		driver.DriverID, driver.Name, driver.Phone, driver.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrDriverAlreadyExists
		}
		return fmt.Errorf("failed to insert driver: %w", err)
	}
	return nil
}

func (s *sqliteDriverStore) Get(ctx context.Context, driverID string) (*models.Driver, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, name, phone, created_at FROM drivers WHERE id = ?`, driverID)

	var driver models.Driver
	var createdAt string
	if err := row.Scan(&driver.DriverID, &driver.Name, &driver.Phone, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to query driver: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at for driver %s: %w", driverID, err)
	}
	driver.CreatedAt = parsed

	return &driver, nil
}
