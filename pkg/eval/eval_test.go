package eval

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ErikJBerg/NL2SQLEval/pkg/compare"
	"github.com/ErikJBerg/NL2SQLEval/pkg/db"
	"github.com/ErikJBerg/NL2SQLEval/pkg/queryset"
	"github.com/stretchr/testify/require"
)

func TestEvalPair(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	database := db.Wrap(mockDB, 0)

	pair := queryset.Pair{
		Question:     "List names of employees older than 30.",
		ExpectedSQL:  "SELECT name FROM employees WHERE age > 30",
		GeneratedSQL: "SELECT name FROM employees WHERE age >= 30",
	}

	// the validator runs the generated query first on its own session
	mock.ExpectQuery(regexp.QuoteMeta(pair.GeneratedSQL)).WillReturnRows(
		sqlmock.NewRows([]string{"name"}).AddRow("A").AddRow("B"),
	)
	// then the comparator runs both queries on one session
	mock.ExpectQuery(regexp.QuoteMeta(pair.ExpectedSQL)).WillReturnRows(
		sqlmock.NewRows([]string{"name"}).AddRow("B"),
	)
	mock.ExpectQuery(regexp.QuoteMeta(pair.GeneratedSQL)).WillReturnRows(
		sqlmock.NewRows([]string{"name"}).AddRow("A").AddRow("B"),
	)

	rec := evalPair(context.Background(), database, pair, false,
		compare.DefaultOptions())
	require.Equal(t, pair.Question, rec.Question)
	require.True(t, rec.Valid)
	require.Equal(t, compare.NoMatch, rec.Outcome)
	require.InDelta(t, 0.875, rec.Similarity, 1e-9)
	require.Len(t, rec.Changes, 1)
	require.NotEmpty(t, rec.DiffString)
	require.Greater(t, rec.ClauseSimilarity, 0.5)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEvalPairParseError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	database := db.Wrap(mockDB, 0)

	pair := queryset.Pair{
		Question:     "q",
		ExpectedSQL:  "SELECT 1",
		GeneratedSQL: "SELEC 1",
	}

	// the generated query still gets executed even though it cannot be
	// parsed, the database has the final word on executability
	mock.ExpectQuery("SELEC 1").WillReturnError(&fakeErr{"syntax error"})
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).WillReturnRows(
		sqlmock.NewRows([]string{"1"}).AddRow(1),
	)
	mock.ExpectQuery("SELEC 1").WillReturnError(&fakeErr{"syntax error"})

	rec := evalPair(context.Background(), database, pair, false,
		compare.DefaultOptions())
	require.NotEmpty(t, rec.ParseErr)
	require.False(t, rec.Valid)
	require.Equal(t, compare.NoMatch, rec.Outcome)
	require.Equal(t, 0.0, rec.Similarity)
	require.Empty(t, rec.Changes)
	require.NoError(t, mock.ExpectationsWereMet())
}

type fakeErr struct {
	msg string
}

func (e *fakeErr) Error() string {
	return e.msg
}
