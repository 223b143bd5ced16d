package storage

import (
	"database/sql"
	"fmt"
	"net"
	"regexp"

	"github.com/go-sql-driver/mysql"
	"kcisum/internal/config"
	"kcisum/internal/domain"
)

// recordColumns lists the boot_results columns in domain.Record field order
const recordColumns = "board, tree, branch, version, arch, config, lab, kci_board, link, status, published"

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)

// ValidIdentifier reports whether name is safe to interpolate as a database or table name
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// DSN builds a go-sql-driver/mysql data source name. When withDatabase is false
// the DSN connects to the server without selecting a database.
func DSN(db config.DatabaseSettings, withDatabase bool) string {
	c := mysql.NewConfig()
	c.User = db.User
	c.Passwd = db.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(db.Host, db.Port)
	if withDatabase {
		c.DBName = db.Name
	}
	return c.FormatDSN()
}

// MySQLStore reads boot results from a MySQL table
type MySQLStore struct {
	db    *sql.DB
	table string
}

// OpenMySQL connects to the configured database and verifies the connection
func OpenMySQL(settings config.DatabaseSettings, table string) (*MySQLStore, error) {
	if !ValidIdentifier(table) {
		return nil, domain.NewConfigError(fmt.Sprintf("invalid table name: %s", table), nil)
	}

	db, err := sql.Open("mysql", DSN(settings, true))
	if err != nil {
		return nil, domain.NewStoreError("failed to connect to database server", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, domain.NewStoreError("failed to ping database server", err)
	}

	return NewMySQLStore(db, table), nil
}

// NewMySQLStore wraps an open connection
func NewMySQLStore(db *sql.DB, table string) *MySQLStore {
	return &MySQLStore{db: db, table: table}
}

// GetStatus returns the records with the given status in insertion order
func (s *MySQLStore) GetStatus(status string) ([]domain.Record, error) {
	query := fmt.Sprintf("SELECT %s FROM `%s` WHERE status = ? ORDER BY id", recordColumns, s.table)
	rows, err := s.db.Query(query, status)
	if err != nil {
		return nil, domain.NewStoreError(fmt.Sprintf("query %s records", status), err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var r domain.Record
		if err := rows.Scan(&r.Board, &r.Tree, &r.Branch, &r.Version, &r.Arch, &r.Config,
			&r.Lab, &r.KCIBoard, &r.Link, &r.Status, &r.Published); err != nil {
			return nil, domain.NewStoreError("scan record", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("read records", err)
	}
	return records, nil
}

// Insert appends records in a single transaction.
// onInserted, when non-nil, is called after each record.
func (s *MySQLStore) Insert(records []domain.Record, onInserted func()) error {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.NewStoreError("begin transaction", err)
	}

	query := fmt.Sprintf("INSERT INTO `%s` (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", s.table, recordColumns)
	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return domain.NewStoreError("prepare insert", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Board, r.Tree, r.Branch, r.Version, r.Arch, r.Config,
			r.Lab, r.KCIBoard, r.Link, r.Status, r.Published); err != nil {
			tx.Rollback()
			return domain.NewStoreError(fmt.Sprintf("insert record for board %s", r.Board), err)
		}
		if onInserted != nil {
			onInserted()
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NewStoreError("commit records", err)
	}
	return nil
}

// Close closes the underlying connection
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
