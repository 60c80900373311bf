package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"swiftci/internal/config"
	"swiftci/internal/domain"
)

// Recorder stores run metadata in a MySQL history table for trend tracking.
type Recorder struct {
	config *config.Config
}

// NewRecorder creates a new Recorder
func NewRecorder(cfg *config.Config) *Recorder {
	return &Recorder{config: cfg}
}

// Record inserts one row into the test_runs table, creating the table first
// if it does not exist. Connection settings come from the project .env file
// or the environment.
func (r *Recorder) Record(meta domain.RunMeta) error {
	db, err := r.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := r.ensureTable(db); err != nil {
		return fmt.Errorf("create history table: %w", err)
	}

	const insert = `INSERT INTO test_runs
		(total_tests, passed_tests, failed_tests, skipped_tests, suites, duration_seconds, run_timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := db.Exec(insert,
		meta.TotalTests, meta.PassedTests, meta.FailedTests, meta.SkippedTests,
		meta.Suites, meta.DurationSeconds, meta.Timestamp); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (r *Recorder) connect() (*sql.DB, error) {
	// Load .env file from project directory
	envPath := filepath.Join(r.config.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_DATABASE")
	if dbName == "" {
		dbName = "ci_history"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPassword, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}
	return db, nil
}

func (r *Recorder) ensureTable(db *sql.DB) error {
	const create = `CREATE TABLE IF NOT EXISTS test_runs (
		id INT AUTO_INCREMENT PRIMARY KEY,
		total_tests INT NOT NULL,
		passed_tests INT NOT NULL,
		failed_tests INT NOT NULL,
		skipped_tests INT NOT NULL,
		suites INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		run_timestamp VARCHAR(64) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	_, err := db.Exec(create)
	return err
}
