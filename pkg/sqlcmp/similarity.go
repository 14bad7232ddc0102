package sqlcmp

import (
	"github.com/pmezard/go-difflib/difflib"
)

// ClauseSimilarity compares the clause maps of two queries. For every clause
// kind present in the expected query it yields a [0,1] score: 0.0 when the
// generated query lacks the kind, otherwise the mean of positional
// character-level ratios over the paired occurrences (extra occurrences
// beyond the shorter side are ignored). The overall score is the mean across
// the scored kinds. Any parse failure yields an empty mapping and 0.0, this
// metric is diagnostic and must not gate the comparison.
func ClauseSimilarity(expected, generated string) (map[ClauseKind]float64, float64) {
	expStmt, err := parseQuery(expected)
	if err != nil {
		return map[ClauseKind]float64{}, 0
	}
	genStmt, err := parseQuery(generated)
	if err != nil {
		return map[ClauseKind]float64{}, 0
	}
	expClauses := ExtractClauses(expStmt)
	genClauses := ExtractClauses(genStmt)

	scores := make(map[ClauseKind]float64, len(expClauses))
	var total float64
	for kind, expTexts := range expClauses {
		score := 0.0
		if genTexts, ok := genClauses[kind]; ok {
			n := min(len(expTexts), len(genTexts))
			if n > 0 {
				sum := 0.0
				for i := 0; i < n; i++ {
					sum += textRatio(expTexts[i], genTexts[i])
				}
				score = sum / float64(n)
			}
		}
		scores[kind] = score
		total += score
	}
	if len(scores) == 0 {
		return scores, 0
	}
	return scores, total / float64(len(scores))
}

func textRatio(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
