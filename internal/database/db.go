package database

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.  The dsn comes straight
// from DATABASE_URL in the driver's own format
// (user:pass@tcp(host:port)/dbname).  The returned *sql.DB is the shared
// connection pool for the whole process; it is never torn down explicitly and
// lives until process exit.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", normalizeDSN(dsn))
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// normalizeDSN makes sure parseTime=true is always present so DATETIME
// columns scan as time.Time instead of raw bytes.  A dsn that already sets
// parseTime is left untouched.
func normalizeDSN(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "parseTime=true"
}
