package cmd

import (
	"database/sql"
	"fmt"

	"logistics/internal/adapters/out/postgres/ndrrepo"
	"logistics/internal/adapters/out/postgres/serviceability"
	"logistics/internal/adapters/out/postgres/shipmentrepo"

	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CreateDBIfNotExists creates the application database when it is missing.
// Connects to the maintenance database with lib/pq because the target
// database cannot be used before it exists.
func CreateDBIfNotExists(host, port, user, password, dbName, sslMode string) error {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", dbName)); err != nil {
			return fmt.Errorf("failed to create database %s: %w", dbName, err)
		}
	}

	return nil
}

// MustConnectDB opens the GORM connection and migrates the schema.
// Panics on failure because the application cannot run without storage.
func MustConnectDB(connStr string) *gorm.DB {
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.StatusEventDTO{},
		&ndrrepo.NDRReportDTO{},
		&ndrrepo.NDRCallLogDTO{},
		&serviceability.TransporterDTO{},
		&serviceability.ServiceabilityEntryDTO{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate database schema: %v", err))
	}

	return db
}

// MakeConnectionString builds the GORM connection string for the application
// database.
func MakeConnectionString(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}
