package compare

import (
	"context"
	goerrors "errors"

	"github.com/ErikJBerg/NL2SQLEval/pkg/db"
	"github.com/ErikJBerg/NL2SQLEval/pkg/util"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// Validate executes the query on its own session and reports whether the
// database accepts it. Validity is purely about executability, a valid query
// returning wrong rows is still valid. Database errors are logged and mapped
// to false, they never reach the caller.
func Validate(ctx context.Context, database *db.DB, query string) bool {
	session, err := database.Session(ctx)
	if err != nil {
		util.Logger.Error("failed to acquire a database session", zap.Error(err))
		return false
	}
	defer session.Close()

	if _, err = session.Query(ctx, query); err != nil {
		var myErr *mysql.MySQLError
		if goerrors.As(err, &myErr) && util.CheckMySQLErrorSyntactic(myErr) {
			util.Logger.Info("query rejected by the engine",
				zap.String("query", query), zap.Error(err))
		} else {
			util.Logger.Warn("failed to execute query",
				zap.String("query", query), zap.Error(err))
		}
		return false
	}
	return true
}
