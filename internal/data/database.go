package data

import (
	"errors"
	"fmt"
	"strings"
	"waste-sorting-app/migrations"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	migratesqlite3 "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverMySQL   = "mysql"
	DriverSQLite3 = "sqlite3" // mattn/go-sqlite3 (cgo)
	DriverSQLite  = "sqlite"  // modernc.org/sqlite (pure Go)
)

func isSQLite(driver string) bool {
	return driver == DriverSQLite3 || driver == DriverSQLite
}

// NewDB creates a new database connection pool for the given driver.
func NewDB(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverMySQL, DriverSQLite3, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if isSQLite(driver) {
		dsn = withForeignKeys(driver, dsn)
	}

	// sqlx.Connect opens a connection and pings it to verify it's alive.
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if isSQLite(driver) {
		// SQLite serializes writers, and an in-memory database exists only
		// for the connection that created it.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// withForeignKeys adds the driver specific DSN parameter that turns on
// foreign key enforcement, so every connection the pool opens enforces them.
func withForeignKeys(driver, dsn string) string {
	param := "_foreign_keys=on"
	if driver == DriverSQLite {
		param = "_pragma=foreign_keys(1)"
	}
	if strings.Contains(dsn, param) {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + param
}

// Migrate applies all up migrations for the connection's SQL dialect using
// the migration files embedded in the binary.
func Migrate(db *sqlx.DB) error {
	dir := "sqlite"
	if db.DriverName() == DriverMySQL {
		dir = "mysql"
	}
	source, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	var driver database.Driver
	switch db.DriverName() {
	case DriverMySQL:
		driver, err = migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	case DriverSQLite3:
		driver, err = migratesqlite3.WithInstance(db.DB, &migratesqlite3.Config{})
	case DriverSQLite:
		driver, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	default:
		return fmt.Errorf("no migration driver for %q", db.DriverName())
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, db.DriverName(), driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	// The instance is not closed: that would close the shared connection pool.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
