package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"deploystack/base-services/internal/probe"
)

// ConnectPostgres opens an sqlx handle for the given DSN, retrying briefly so
// a freshly scaffolded stack can come up in any order.
func ConnectPostgres(dsn string) (*sqlx.DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)
	for i := 0; i < 10; i++ {
		conn, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			conn.SetMaxOpenConns(10)
			conn.SetConnMaxIdleTime(5 * time.Minute)
			return conn, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, err
}

// PostgresCheck wraps the sqlx handle in a readiness check.
func PostgresCheck(conn *sqlx.DB) probe.Check {
	return probe.Check{
		Name: "postgres",
		Run: func(ctx context.Context) error {
			return conn.PingContext(ctx)
		},
	}
}
