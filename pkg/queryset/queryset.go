package queryset

import (
	"encoding/json"
	"os"

	"github.com/pingcap/errors"
)

// Record pairs a natural-language question with the SQL that answers it.
type Record struct {
	Question string `json:"question"`
	Query    string `json:"query"`
}

// Pair is one evaluation unit: the human-authored and the machine-generated
// query for the same question.
type Pair struct {
	Question     string
	ExpectedSQL  string
	GeneratedSQL string
}

// Load reads a JSON array of records from path.
func Load(path string) ([]Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var records []Record
	if err = json.Unmarshal(content, &records); err != nil {
		return nil, errors.Annotatef(err, "failed to decode query set %s", path)
	}
	return records, nil
}

// Zip pairs the two sets by position. Mismatched lengths silently truncate
// to the shorter set. The question is taken from the expected side.
func Zip(expected, generated []Record) []Pair {
	n := min(len(expected), len(generated))
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{
			Question:     expected[i].Question,
			ExpectedSQL:  expected[i].Query,
			GeneratedSQL: generated[i].Query,
		})
	}
	return pairs
}
