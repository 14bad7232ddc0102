package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ErikJBerg/NL2SQLEval/pkg/compare"
	"github.com/ErikJBerg/NL2SQLEval/pkg/sqlcmp"
	"github.com/stretchr/testify/require"
)

func testReport() *Report {
	records := []Record{
		{
			Question:         "List all names.",
			ExpectedSQL:      "SELECT name FROM employees",
			GeneratedSQL:     "SELECT name FROM employees",
			Similarity:       1.0,
			ClauseSimilarity: 1.0,
			DiffString:       "  SELECT name FROM employees",
			Valid:            true,
			Outcome:          compare.Exact,
		},
		{
			Question:     "Count employees.",
			ExpectedSQL:  "SELECT COUNT(*) FROM employees",
			GeneratedSQL: "SELECT COUNT(id) FROM employee",
			Similarity:   0.6,
			Changes: []sqlcmp.ChangeRecord{
				{Text: "COUNT(`id`)", Action: sqlcmp.ActionUpdate},
			},
			Valid:           false,
			Outcome:         compare.NoMatch,
			GeneratedResult: compare.QueryResult{Err: "no such table: employee"},
		},
	}
	return &Report{
		Records: records,
		Stats:   Summarize(records, DefaultChangeWeights()),
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(testReport(), &buf))

	out := buf.String()
	require.Contains(t, out, "Question: List all names.")
	require.Contains(t, out, "Result match: exact")
	require.Contains(t, out, "Result match: no match")
	require.Contains(t, out, "Generated error: no such table: employee")
	require.Contains(t, out, "Valid queries: 1/2 (50.0%)")
	// structured diff data stays plain, no terminal escape codes
	require.NotContains(t, out, "\033[")
}

func TestRenderHTML(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, RenderHTML(testReport(), outFile))

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "<title>NL2SQL Evaluation Report</title>")
	require.Contains(t, string(content), "Count employees.")
}
