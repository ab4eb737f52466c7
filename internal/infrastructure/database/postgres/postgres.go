package postgres

import (
	"fmt"
	"sync"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

var (
	once    sync.Once
	db      *sqlx.DB
	initErr error
)

// GetDBInstance opens the storefront database on first call and hands back
// the shared handle afterwards. The driver is wrapped with otelsql so
// catalog, cart and checkout queries land on the request traces.
func GetDBInstance(user, password, host, port, dbName string) (*sqlx.DB, error) {
	once.Do(func() {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbName)

		sqlDB, err := otelsql.Open("postgres", dsn,
			otelsql.WithAttributes(
				semconv.DBSystemPostgreSQL,
				semconv.DBNameKey.String(dbName),
			),
			otelsql.WithSpanOptions(otelsql.SpanOptions{
				DisableQuery: true,
			}),
		)
		if err != nil {
			initErr = err
			return
		}

		handle := sqlx.NewDb(sqlDB, "postgres")
		handle.SetMaxOpenConns(25)
		handle.SetMaxIdleConns(5)
		handle.SetConnMaxLifetime(30 * time.Minute)

		if err := handle.Ping(); err != nil {
			initErr = err
			return
		}

		db = handle
	})

	return db, initErr
}
