package compare

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ErikJBerg/NL2SQLEval/pkg/db"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	database := db.Wrap(mockDB, 0)

	query := "SELECT name FROM employees"
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(
		sqlmock.NewRows([]string{"name"}),
	)
	require.True(t, Validate(context.Background(), database, query))

	// a query the engine rejects is invalid, the error never escapes
	badQuery := "SELECT no_such_column FROM employees"
	mock.ExpectQuery(regexp.QuoteMeta(badQuery)).
		WillReturnError(fmt.Errorf("Unknown column 'no_such_column' in 'field list'"))
	require.False(t, Validate(context.Background(), database, badQuery))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateEmptyResultIsValid(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	database := db.Wrap(mockDB, 0)

	query := "SELECT name FROM employees WHERE 1 = 0"
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(
		sqlmock.NewRows([]string{"name"}),
	)
	// zero rows is still a valid query, validity is about executability only
	require.True(t, Validate(context.Background(), database, query))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateAcquisitionFailure(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	database := db.Wrap(mockDB, 0)
	_ = mockDB.Close()

	require.False(t, Validate(context.Background(), database, "SELECT 1"))
}
