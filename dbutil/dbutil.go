package dbutil

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultMaxConnections    = int32(20)
	defaultMinConnections    = int32(2)
	defaultMaxConnLifetime   = time.Hour
	defaultMaxConnIdleTime   = 5 * time.Minute
	defaultHealthCheckPeriod = time.Minute
	defaultConnectTimeout    = 5 * time.Second
)

func GetConnectionString(typ, user, pass, host, port, db string) string {
	return fmt.Sprintf("%s://%s:%s@%s:%s/%s?sslmode=disable", typ, user, pass, host, port, db)
}

func PoolConfig(connStr string, maxConns int32) (*pgxpool.Config, error) {
	dbConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse db config: %w", err)
	}
	if maxConns <= 0 {
		maxConns = defaultMaxConnections
	}
	dbConfig.MaxConns = maxConns
	dbConfig.MinConns = min(defaultMinConnections, maxConns)
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout
	return dbConfig, nil
}

func InitDbPool(connStr string, maxConns int32) (*pgxpool.Pool, error) {
	dbConfig, err := PoolConfig(connStr, maxConns)
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(context.Background(), dbConfig)
}

func RunMigrateScripts(migrateDir, connStr string) (uint, uint, bool, error) {
	var versionFrom, versionTo uint
	var dirty bool
	m, err := migrate.New(migrateDir, connStr)
	if err != nil {
		return versionFrom, versionTo, dirty, fmt.Errorf("failed to initiate migration: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()
	versionFrom, dirty, err = m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return versionFrom, versionTo, dirty, fmt.Errorf("failed to get migration version: %w", err)
	}
	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return versionFrom, versionTo, dirty, fmt.Errorf("failed to run migration: %w", err)
	}
	versionTo, dirty, err = m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return versionFrom, versionTo, dirty, fmt.Errorf("failed to get migration version after running: %w", err)
	}
	return versionFrom, versionTo, dirty, nil
}

func StartPGContainer() (context.Context, *postgres.PostgresContainer, string, error) {
	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx, "postgres",
		postgres.WithDatabase("circbroker"),
		postgres.WithUsername("circbroker"),
		postgres.WithPassword("circbroker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return ctx, pgContainer, "", fmt.Errorf("failed to start db container: %w", err)
	}
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return ctx, pgContainer, "", fmt.Errorf("failed to get conn string: %w", err)
	}
	return ctx, pgContainer, connStr, nil
}

func TerminatePGContainer(ctx context.Context, pgContainer testcontainers.Container) error {
	if err := pgContainer.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to stop db container: %w", err)
	}
	return nil
}
