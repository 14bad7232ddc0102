package compare

import "encoding/json"

// Outcome classifies how the generated query's result set relates to the
// expected one. The order is meaningful: a greater outcome retrieved more of
// the expected answer.
type Outcome int

const (
	NoMatch Outcome = iota
	PartialIncomplete
	Partial
	Exact
)

func (o Outcome) String() string {
	switch o {
	case Exact:
		return "exact"
	case Partial:
		return "partial"
	case PartialIncomplete:
		return "partial-incomplete"
	default:
		return "no match"
	}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// QueryResult is the outcome of executing one query: either the rows it
// returned, every value already rendered as a string, or the message of the
// database error that rejected it. Execution failures are data, never
// control flow.
type QueryResult struct {
	Rows [][]string `json:"rows,omitempty"`
	Err  string     `json:"error,omitempty"`
}

// Failed reports whether the execution ended in a database error.
func (r QueryResult) Failed() bool {
	return r.Err != ""
}

func errResult(err error) QueryResult {
	return QueryResult{Err: err.Error()}
}

// Options controls the normalization applied to result sets before they are
// compared.
type Options struct {
	IgnoreRowOrder    bool
	IgnoreColumnOrder bool
}

// DefaultOptions tolerates both row and column reordering.
func DefaultOptions() Options {
	return Options{IgnoreRowOrder: true, IgnoreColumnOrder: true}
}
