package db

import "database/sql"

// DB wraps the shared *sql.DB so stores depend on one internal type.
type DB struct {
	*sql.DB
}
