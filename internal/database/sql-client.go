package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"odooclient/entity"
	"odooclient/internal/config"
	"odooclient/internal/lib/sl"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// MySql is the optional seed ledger: one row per record created on the
// remote instance, so runs can be audited without querying Odoo.
type MySql struct {
	db         *sql.DB
	prefix     string
	statements map[string]*sql.Stmt
	mu         sync.Mutex
	log        *slog.Logger
}

func NewSQLClient(conf *config.Config, log *slog.Logger) (*MySql, error) {
	if !conf.SQL.Enabled {
		return nil, fmt.Errorf("SQL client is disabled in configuration")
	}
	connectionURI := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		conf.SQL.UserName, conf.SQL.Password, conf.SQL.HostName, conf.SQL.Port, conf.SQL.Database)
	db, err := sql.Open("mysql", connectionURI)
	if err != nil {
		return nil, fmt.Errorf("sql connect: %w", err)
	}

	// try ping three times with 30 seconds interval; wait for database to start
	for i := 0; i < 3; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		if i == 2 {
			return nil, fmt.Errorf("ping database: %w", err)
		}
		time.Sleep(30 * time.Second)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &MySql{
		db:         db,
		prefix:     conf.SQL.Prefix,
		statements: make(map[string]*sql.Stmt),
		log:        log.With(sl.Module("mysql")),
	}

	if err = sdb.createLedgerTable(); err != nil {
		return nil, err
	}

	return sdb, nil
}

func (s *MySql) createLedgerTable() error {
	query := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %sseed_record (
			id BIGINT NOT NULL AUTO_INCREMENT,
			run_id VARCHAR(32) NOT NULL,
			model VARCHAR(64) NOT NULL,
			remote_id BIGINT NOT NULL,
			label VARCHAR(255) NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			PRIMARY KEY (id),
			KEY idx_run (run_id),
			KEY idx_model (model)
		)`,
		s.prefix,
	)
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create ledger table: %w", err)
	}
	return nil
}

func (s *MySql) Close() {
	s.closeStmt()
	if err := s.db.Close(); err != nil {
		s.log.Warn("closing database", sl.Err(err))
	}
}

func (s *MySql) Stats() string {
	stats := s.db.Stats()
	return fmt.Sprintf("open=%d idle=%d in_use=%d", stats.OpenConnections, stats.Idle, stats.InUse)
}

// SaveRecord appends one created record to the ledger.
func (s *MySql) SaveRecord(record entity.SeedRecord) error {
	stmt, err := s.stmtInsertRecord()
	if err != nil {
		return err
	}

	created := record.Created
	if created.IsZero() {
		created = time.Now()
	}

	if _, err := stmt.Exec(record.RunID, record.Model, record.Remote, record.Label, created); err != nil {
		return fmt.Errorf("insert seed record: %w", err)
	}
	return nil
}

// RecordsByRun lists everything a run created, in insertion order.
func (s *MySql) RecordsByRun(runID string) ([]entity.SeedRecord, error) {
	stmt, err := s.stmtSelectByRun()
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(runID)
	if err != nil {
		return nil, fmt.Errorf("select seed records: %w", err)
	}
	defer rows.Close()

	var records []entity.SeedRecord
	for rows.Next() {
		var record entity.SeedRecord
		if err := rows.Scan(&record.RunID, &record.Model, &record.Remote, &record.Label, &record.Created); err != nil {
			return nil, fmt.Errorf("scan seed record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// CountByModel returns how many ledger rows exist per remote model.
func (s *MySql) CountByModel() (map[string]int64, error) {
	stmt, err := s.stmtCountByModel()
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("count seed records: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var model string
		var count int64
		if err := rows.Scan(&model, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[model] = count
	}
	return counts, rows.Err()
}
