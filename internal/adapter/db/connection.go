package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"taskhub/internal/config"
)

//go:embed schema/*.sql
var schemaFS embed.FS

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	if conf.DbDriver == config.DriverSQLite {
		return ConnectSQLite(conf.SQLitePath)
	}

	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}
	// Updates report matched rows so an unchanged row is not taken as missing.
	if !strings.Contains(params, "clientFoundRows") {
		params += "&clientFoundRows=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens an embedded database. SQLite serializes writers, and
// ":memory:" databases exist per connection, so the pool is capped at one.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(config.DriverSQLite, path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// Migrate creates the schema for the database driver in use.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	name := "schema/mysql.sql"
	if db.DriverName() == config.DriverSQLite {
		name = "schema/sqlite.sql"
	}

	content, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	for _, statement := range strings.Split(string(content), ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}
