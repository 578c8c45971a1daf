package postgres

import (
	"database/sql"
	"fmt"

	"github.com/SergeyBogomolovv/shoppy/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func New(cfg config.Postgres) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db, nil
}

func DSN(cfg config.Postgres) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
}

// TxOptions maps the configured isolation name onto sql.TxOptions.
func TxOptions(cfg config.Postgres) *sql.TxOptions {
	level := sql.LevelReadCommitted
	switch cfg.Isolation {
	case "repeatable_read":
		level = sql.LevelRepeatableRead
	case "serializable":
		level = sql.LevelSerializable
	}
	return &sql.TxOptions{Isolation: level}
}
