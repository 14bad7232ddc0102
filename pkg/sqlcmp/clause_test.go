package sqlcmp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractClauses(t *testing.T) {
	stmt, err := parseQuery(
		"SELECT id, name FROM t WHERE id IN (SELECT id FROM u) ORDER BY id LIMIT 5")
	require.NoError(t, err)

	clauses := ExtractClauses(stmt)
	// outer query and subquery both contribute
	require.Len(t, clauses[ClauseSelect], 2)
	require.Len(t, clauses[ClauseFrom], 2)
	require.Len(t, clauses[ClauseWhere], 1)
	require.Len(t, clauses[ClauseOrder], 1)
	require.Len(t, clauses[ClauseLimit], 1)
	// absent clause kinds are omitted, not empty
	require.NotContains(t, clauses, ClauseGroup)
	require.NotContains(t, clauses, ClauseHaving)
}

func TestExtractClausesMinimal(t *testing.T) {
	stmt, err := parseQuery("SELECT 1")
	require.NoError(t, err)

	clauses := ExtractClauses(stmt)
	require.Len(t, clauses, 1)
	require.Contains(t, clauses, ClauseSelect)
}

func TestClauseSimilarityIdentity(t *testing.T) {
	query := "SELECT a FROM t WHERE a > 1 GROUP BY a ORDER BY a"
	scores, overall := ClauseSimilarity(query, query)
	require.Equal(t, 1.0, overall)
	for kind, score := range scores {
		require.Equal(t, 1.0, score, "clause: %s", kind)
	}
}

func TestClauseSimilarityMissingClause(t *testing.T) {
	scores, overall := ClauseSimilarity(
		"SELECT a FROM t WHERE a > 1",
		"SELECT a FROM t",
	)
	require.Equal(t, 0.0, scores[ClauseWhere])
	require.Equal(t, 1.0, scores[ClauseSelect])
	require.Equal(t, 1.0, scores[ClauseFrom])
	require.InDelta(t, 2.0/3.0, overall, 1e-9)
}

func TestClauseSimilarityParseFailure(t *testing.T) {
	scores, overall := ClauseSimilarity("not sql", "SELECT a FROM t")
	require.Empty(t, scores)
	require.Equal(t, 0.0, overall)

	scores, overall = ClauseSimilarity("SELECT a FROM t", "still not sql")
	require.Empty(t, scores)
	require.Equal(t, 0.0, overall)
}
