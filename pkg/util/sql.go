package util

import (
	"database/sql"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/pkg/parser"
)

// EscapeIdentifier escapes an MySQL identifier.
func EscapeIdentifier(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// ConnectMySQL connects to a MySQL-compatible database.
func ConnectMySQL(
	host string,
	port int,
	user string,
	password string,
	database string,
) (*sql.DB, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Addr = addr
	cfg.DBName = database
	cfg.AllowNativePasswords = true
	cfg.ParseTime = true
	cfg.MaxAllowedPacket = -1
	cfg.Params = map[string]string{
		// relax SQL mode
		"sql_mode": "'IGNORE_SPACE,NO_AUTO_VALUE_ON_ZERO,ALLOW_INVALID_DATES,NO_ENGINE_SUBSTITUTION'",
	}

	c, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, errors.Annotatef(err, "connect to %s as %s", addr, user)
	}
	return sql.OpenDB(c), nil
}

var ParserPool = sync.Pool{
	New: func() any {
		return parser.New()
	},
}

// ReadStrRows reads every column of every row as a string, letting the driver
// convert the scalar types. SQL NULL becomes the literal "NULL". Caller need
// to close rows after it returns.
func ReadStrRows(rows *sql.Rows) ([][]string, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Annotate(err, "failed to get columns")
	}

	vals := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range dest {
		dest[i] = &vals[i]
	}

	ret := make([][]string, 0, 8)
	for rows.Next() {
		if err = rows.Scan(dest...); err != nil {
			return nil, errors.Annotate(err, "failed to scan row")
		}
		oneRow := make([]string, len(columns))
		for i := range vals {
			if vals[i].Valid {
				oneRow[i] = vals[i].String
			} else {
				oneRow[i] = "NULL"
			}
		}
		ret = append(ret, oneRow)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Annotate(err, "failed to get rows")
	}
	return ret, nil
}
