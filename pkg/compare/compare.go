package compare

import (
	"context"
	"slices"

	"github.com/ErikJBerg/NL2SQLEval/pkg/db"
	"github.com/ErikJBerg/NL2SQLEval/pkg/util"
	"go.uber.org/zap"
)

// CompareResults executes both queries sequentially on one database session
// and classifies the relationship of their result sets. Each query gets an
// isolated attempt, a failure of the expected query does not skip the
// generated one. A session acquisition failure is terminal for the pair and
// carries the same error message on both sides.
func CompareResults(
	ctx context.Context,
	database *db.DB,
	expectedSQL string,
	generatedSQL string,
	opts Options,
) (Outcome, QueryResult, QueryResult) {
	session, err := database.Session(ctx)
	if err != nil {
		util.Logger.Error("failed to acquire a database session", zap.Error(err))
		res := errResult(err)
		return NoMatch, res, res
	}
	defer session.Close()

	var expResult, genResult QueryResult
	if rows, err2 := session.Query(ctx, expectedSQL); err2 != nil {
		expResult = errResult(err2)
	} else {
		expResult = QueryResult{Rows: rows}
	}
	if rows, err2 := session.Query(ctx, generatedSQL); err2 != nil {
		genResult = errResult(err2)
	} else {
		genResult = QueryResult{Rows: rows}
	}

	return classify(expResult, genResult, opts), expResult, genResult
}

// classify implements the match hierarchy over two executed results. An
// unexecutable query on either side forces NoMatch before any row is looked
// at.
func classify(expResult, genResult QueryResult, opts Options) Outcome {
	if expResult.Failed() || genResult.Failed() {
		return NoMatch
	}
	expRows := expResult.Rows
	genRows := genResult.Rows
	if len(expRows) != len(genRows) {
		// a row-count mismatch is a hard failure, never partial
		return NoMatch
	}

	// column normalization must run before the row sort so that rows
	// differing only in column order sort identically on both sides
	if opts.IgnoreColumnOrder {
		expRows = sortValuesPerRow(expRows)
		genRows = sortValuesPerRow(genRows)
	}
	if opts.IgnoreRowOrder {
		expRows = sortRows(expRows)
		genRows = sortRows(genRows)
	}

	sawPartial := false
	sawIncomplete := false
	for i := range expRows {
		if slices.Equal(expRows[i], genRows[i]) {
			continue
		}
		switch contained(expRows[i], genRows[i]) {
		case len(expRows[i]):
			// once partial-incomplete has been seen the outcome may not
			// upgrade back to partial
			if !sawIncomplete {
				sawPartial = true
			}
		case 0:
			// a single row with zero overlap is disqualifying
			return NoMatch
		default:
			sawIncomplete = true
		}
	}

	switch {
	case sawIncomplete:
		return PartialIncomplete
	case sawPartial:
		return Partial
	default:
		return Exact
	}
}

// contained counts how many values of the expected row appear among the
// generated row's values, by membership rather than position.
func contained(expRow, genRow []string) int {
	count := 0
	for _, v := range expRow {
		if slices.Contains(genRow, v) {
			count++
		}
	}
	return count
}

// sortRows orders rows by comparing their value sequences lexicographically
// element by element.
func sortRows(rows [][]string) [][]string {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, slices.Compare)
	return sorted
}

// sortValuesPerRow replaces every row with the sorted sequence of its values,
// making row comparison independent of column order.
func sortValuesPerRow(rows [][]string) [][]string {
	ret := make([][]string, len(rows))
	for i, row := range rows {
		sorted := slices.Clone(row)
		slices.Sort(sorted)
		ret[i] = sorted
	}
	return ret
}
