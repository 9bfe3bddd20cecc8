package database

import (
	"database/sql"
	"fmt"
)

func (s *MySql) prepareStmt(name, query string) (*sql.Stmt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stmt, ok := s.statements[name]; ok {
		return stmt, nil
	}

	stmt, err := s.db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("prepare statement [%s]: %w", name, err)
	}

	s.statements[name] = stmt
	return stmt, nil
}

func (s *MySql) closeStmt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, stmt := range s.statements {
		_ = stmt.Close()
		delete(s.statements, name)
	}
}

func (s *MySql) stmtInsertRecord() (*sql.Stmt, error) {
	query := fmt.Sprintf(
		`INSERT INTO %sseed_record
			(run_id, model, remote_id, label, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.prefix,
	)
	return s.prepareStmt("insertRecord", query)
}

func (s *MySql) stmtSelectByRun() (*sql.Stmt, error) {
	query := fmt.Sprintf(
		`SELECT
			run_id,
			model,
			remote_id,
			label,
			created_at
		 FROM %sseed_record
		 WHERE run_id = ?
		 ORDER BY id`,
		s.prefix,
	)
	return s.prepareStmt("selectByRun", query)
}

func (s *MySql) stmtCountByModel() (*sql.Stmt, error) {
	query := fmt.Sprintf(
		`SELECT model, COUNT(*)
		 FROM %sseed_record
		 GROUP BY model`,
		s.prefix,
	)
	return s.prepareStmt("countByModel", query)
}
