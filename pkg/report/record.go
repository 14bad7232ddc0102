package report

import (
	"github.com/ErikJBerg/NL2SQLEval/pkg/compare"
	"github.com/ErikJBerg/NL2SQLEval/pkg/sqlcmp"
)

// Record is the full comparison outcome for one question, which is the final
// result unit of the evaluation. It is created once per pair and consumed
// read-only afterwards.
type Record struct {
	Question     string `json:"question"`
	ExpectedSQL  string `json:"expected_sql"`
	GeneratedSQL string `json:"generated_sql"`

	Similarity       float64                       `json:"similarity"`
	DiffString       string                        `json:"diff,omitempty"`
	Changes          []sqlcmp.ChangeRecord         `json:"changes"`
	ClauseScores     map[sqlcmp.ClauseKind]float64 `json:"clause_scores,omitempty"`
	ClauseSimilarity float64                       `json:"clause_similarity"`
	ParseErr         string                        `json:"parse_error,omitempty"`

	Valid           bool                `json:"valid"`
	Outcome         compare.Outcome     `json:"outcome"`
	ExpectedResult  compare.QueryResult `json:"expected_result"`
	GeneratedResult compare.QueryResult `json:"generated_result"`
}

// Report is the rendered unit: all records of one evaluation run plus their
// aggregate statistics.
type Report struct {
	Records []Record
	Stats   Stats
}
