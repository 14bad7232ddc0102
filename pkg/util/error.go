package util

import (
	"github.com/go-sql-driver/mysql"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/pkg/errno"
)

type acquisitionErr interface {
	marker()
}

type acquisitionWrapper struct {
	error
}

func (acquisitionWrapper) marker() {}

// WrapAcquisitionError marks an error as a failure to obtain a database
// session, as opposed to a failure to execute a statement on one.
func WrapAcquisitionError(err error) error {
	return acquisitionWrapper{err}
}

// IsAcquisitionError checks if an error is wrapped by WrapAcquisitionError.
// It supports pingcap/errors package.
func IsAcquisitionError(err error) bool {
	for err != nil {
		if _, ok := err.(acquisitionErr); ok {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// CheckMySQLErrorSyntactic checks whether the MySQL error describes a query
// the engine rejected up front, like a parse error or an unknown table or
// column. Such errors mean the generated query itself is bad, not the
// database state.
func CheckMySQLErrorSyntactic(err *mysql.MySQLError) bool {
	if err == nil {
		return false
	}
	switch err.Number {
	case errno.ErrParse, errno.ErrNoSuchTable, errno.ErrBadDB, errno.ErrBadField:
		return true
	}
	return false
}
