package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("record not found")

type DB struct {
	conn   *sql.DB
	dbType string
}

type Config struct {
	Type       string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SQLitePath string
}

// NewDB opens the fixtures database, creates its tables and seeds the mock
// records. Seeding is idempotent.
func NewDB(config Config) (*DB, error) {
	var conn *sql.DB
	var err error

	switch config.Type {
	case "sqlite":
		conn, err = sql.Open("sqlite3", config.SQLitePath)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			config.Host, config.Port, config.User, config.Password, config.Name)
		conn, err = sql.Open("pgx", dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", config.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if config.Type == "sqlite" && strings.Contains(config.SQLitePath, ":memory:") {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn, dbType: config.Type}

	ctx := context.Background()
	if err := db.createTables(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	if err := db.seed(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to seed fixtures: %w", err)
	}

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS mock_results (
		id TEXT PRIMARY KEY,
		reps INTEGER NOT NULL,
		form_score INTEGER NOT NULL,
		confidence DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS mock_result_breakdown (
		result_id TEXT NOT NULL,
		score_key TEXT NOT NULL,
		label TEXT NOT NULL,
		score INTEGER NOT NULL,
		sort_order INTEGER NOT NULL,
		PRIMARY KEY (result_id, score_key)
	)`,
	`CREATE TABLE IF NOT EXISTS mock_result_feedback (
		result_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		sort_order INTEGER NOT NULL,
		body TEXT NOT NULL,
		PRIMARY KEY (result_id, kind, sort_order)
	)`,
	`CREATE TABLE IF NOT EXISTS pending_reviews (
		id TEXT PRIMARY KEY,
		sort_order INTEGER NOT NULL,
		name TEXT NOT NULL,
		exercise TEXT NOT NULL,
		submitted_at TEXT NOT NULL,
		ai_reps INTEGER NOT NULL,
		ai_form_score INTEGER NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		reason TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS corrections (
		id TEXT PRIMARY KEY,
		sort_order INTEGER NOT NULL,
		name TEXT NOT NULL,
		exercise TEXT NOT NULL,
		ai_reps INTEGER NOT NULL,
		corrected_reps INTEGER NOT NULL,
		reviewer TEXT NOT NULL,
		reviewed_at TEXT NOT NULL
	)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Conn() *sql.DB {
	return db.conn
}

func (db *DB) Type() string {
	return db.dbType
}

// rebind rewrites ? placeholders to $n for postgres.
func (db *DB) rebind(query string) string {
	if db.dbType != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
