package report

import (
	"testing"

	"github.com/ErikJBerg/NL2SQLEval/pkg/compare"
	"github.com/ErikJBerg/NL2SQLEval/pkg/sqlcmp"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{
			Question:   "q1",
			Similarity: 1.0,
			Valid:      true,
			Outcome:    compare.Exact,
		},
		{
			Question:   "q2",
			Similarity: 0.4,
			Valid:      false,
			Outcome:    compare.NoMatch,
			Changes: []sqlcmp.ChangeRecord{
				{Text: "`a`>5", Action: sqlcmp.ActionUpdate},
				{Text: "`b`", Action: sqlcmp.ActionRemove},
			},
			GeneratedResult: compare.QueryResult{Err: "no such column: b"},
		},
	}

	stats := Summarize(records, DefaultChangeWeights())
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.ValidCount)
	require.Equal(t, 50.0, stats.ValidPct)
	require.Equal(t, 1, stats.ExactCount)
	require.Equal(t, 50.0, stats.ExactPct)
	require.Equal(t, 1, stats.NoMatchCount)
	// means over valid records only, so only q1 counts
	require.Equal(t, 1.0, stats.MeanSimilarity)
	require.Equal(t, 0.0, stats.MeanChangeCount)
	require.Equal(t, map[sqlcmp.ChangeAction]int{
		sqlcmp.ActionUpdate: 1,
		sqlcmp.ActionRemove: 1,
	}, stats.ChangeHistogram)
	// q1 scores 1, q2 scores 1 - (1.5+2)/(2*2) = 0.125
	require.InDelta(t, 0.5625, stats.MeanChangeSimilarity, 1e-9)
	require.Equal(t, 0.0, stats.ExpectedErrPct)
	require.Equal(t, 50.0, stats.GeneratedErrPct)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil, DefaultChangeWeights())
	require.Equal(t, 0, stats.Total)
	require.Equal(t, 0.0, stats.MeanSimilarity)
}

func TestChangeSimilarityWeights(t *testing.T) {
	weights := DefaultChangeWeights()
	removeOnly := []sqlcmp.ChangeRecord{{Text: "`a`", Action: sqlcmp.ActionRemove}}
	insertOnly := []sqlcmp.ChangeRecord{{Text: "`a`", Action: sqlcmp.ActionInsert}}

	// losing required content costs more than adding extraneous content
	require.Less(t,
		changeSimilarity(removeOnly, weights),
		changeSimilarity(insertOnly, weights))
	require.Equal(t, 1.0, changeSimilarity(nil, weights))

	// the policy is overridable
	flat := ChangeWeights{Insert: 1, Update: 1, Remove: 1}
	require.Equal(t,
		changeSimilarity(removeOnly, flat),
		changeSimilarity(insertOnly, flat))
}
