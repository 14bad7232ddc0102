package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/ErikJBerg/NL2SQLEval/pkg/util"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config tells how to reach the target database.
type Config struct {
	Driver   string // DriverSQLite or DriverMySQL
	Path     string // SQLite database file
	Host     string
	Port     int
	User     string
	Password string
	Database string

	// QueryTimeout bounds a single query execution so one runaway generated
	// query can not stall the whole batch. Zero means no deadline.
	QueryTimeout time.Duration
}

// DB is the database capability the evaluation runs against.
type DB struct {
	handle       *sql.DB
	queryTimeout time.Duration
}

// Open connects to the configured database engine.
func Open(cfg *Config) (*DB, error) {
	var (
		handle *sql.DB
		err    error
	)
	switch cfg.Driver {
	case "", DriverSQLite:
		handle, err = sql.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, errors.Annotatef(err, "open sqlite database %s", cfg.Path)
		}
	case DriverMySQL:
		handle, err = util.ConnectMySQL(cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)
		if err != nil {
			return nil, errors.Trace(err)
		}
	default:
		return nil, errors.Errorf("unsupported database driver: %s", cfg.Driver)
	}
	return Wrap(handle, cfg.QueryTimeout), nil
}

// Wrap builds a DB over an already opened handle.
func Wrap(handle *sql.DB, queryTimeout time.Duration) *DB {
	return &DB{handle: handle, queryTimeout: queryTimeout}
}

func (d *DB) Close() error {
	return errors.Trace(d.handle.Close())
}

// Session is a dedicated connection scope, the cursor of one comparison. It
// must be closed on every exit path.
type Session struct {
	conn         *sql.Conn
	queryTimeout time.Duration
}

// Session acquires a dedicated connection. The failure to acquire one is
// marked so callers can tell it apart from a query execution failure.
func (d *DB) Session(ctx context.Context) (*Session, error) {
	conn, err := d.handle.Conn(ctx)
	if err != nil {
		return nil, util.WrapAcquisitionError(
			errors.Annotate(err, "failed to acquire a database session"))
	}
	return &Session{conn: conn, queryTimeout: d.queryTimeout}, nil
}

func (s *Session) Close() {
	if err := s.conn.Close(); err != nil {
		util.Logger.Warn("failed to close database session", zap.Error(err))
	}
}

// Query executes one query under the configured deadline and reads the full
// result set with every value rendered as a string.
func (s *Session) Query(ctx context.Context, query string) ([][]string, error) {
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}
	rows, err := s.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to execute query: %s", query)
	}
	defer rows.Close()
	return util.ReadStrRows(rows)
}
